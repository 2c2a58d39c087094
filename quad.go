package spinor

import "context"

// enableQuad dispatches to the vendor-specific quad I/O enable
// sequence. Called once during Scan when the negotiated ReadMode or
// WriteMode requires quad lines; a manufacturer with no handshake here
// aborts the scan, since the selected opcodes would never work.
func enableQuad(ctx context.Context, t Transport, cs *ChipState) error {
	switch cs.Vendor {
	case VendorMacronix:
		return macronixQuadEnable(ctx, t, cs)
	case VendorSpansion, VendorWinbond:
		return configRegisterQuadEnable(ctx, t, cs)
	case VendorMicron:
		return micronQuadEnable(ctx, t, cs)
	default:
		return newErr("quad-enable", KindQuadUnsupported, nil)
	}
}

// macronixQuadEnable sets status register bit 6: read-modify-write,
// wait, then re-read to confirm the bit stuck.
func macronixQuadEnable(ctx context.Context, t Transport, cs *ChipState) error {
	r := regs{t}
	sr, err := r.readStatus(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if sr&srQuadEnMX != 0 {
		return nil
	}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := r.writeStatus(ctx, sr|srQuadEnMX); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
		return err
	}
	got, err := r.readStatus(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if got&srQuadEnMX == 0 {
		return newErr("quad-enable", KindQuadUnsupported, nil)
	}
	return nil
}

// configRegisterQuadEnable sets configuration register bit 1, the
// Spansion/Winbond path. The status and config registers are written
// together in a single two-byte opWRSR transaction so the WEL
// write-enable latch isn't lost between them.
func configRegisterQuadEnable(ctx context.Context, t Transport, cs *ChipState) error {
	r := regs{t}
	sr, err := r.readStatus(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	cr, err := r.readConfig(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if cr&crQuadEnSpan != 0 {
		return nil
	}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := r.writeStatusConfig(ctx, sr, cr|crQuadEnSpan); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
		return err
	}
	got, err := r.readConfig(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if got&crQuadEnSpan == 0 {
		return newErr("quad-enable", KindQuadUnsupported, nil)
	}
	return nil
}

// micronQuadEnable clears the Enhanced Volatile Configuration Register's
// quad bit. The EVCR bit is active-low: a set bit 7 means quad I/O is
// disabled, so enabling quad means clearing it, writing the register
// back, and confirming the clear stuck.
func micronQuadEnable(ctx context.Context, t Transport, cs *ChipState) error {
	r := regs{t}
	v, err := r.readEVCR(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if v&evcrQuadEnMicron == 0 {
		return nil
	}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := r.writeEVCR(ctx, v&^byte(evcrQuadEnMicron)); err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
		return err
	}
	got, err := r.readEVCR(ctx)
	if err != nil {
		return newErr("quad-enable", KindIO, err)
	}
	if got&evcrQuadEnMicron != 0 {
		return newErr("quad-enable", KindQuadUnsupported, nil)
	}
	return nil
}
