package spinor

import "context"

// dualRoute translates a logical device offset into a per-die offset and
// the upper-die chip-select flag.
//
//   - DualSingle: passthrough.
//   - DualStacked: addresses in the upper half are folded into the lower
//     half and uPage is set so the transport steers the upper die.
//   - DualParallel: the offset is halved (each die sees half the address
//     space) and uPage is always false (both dies are selected together
//     by the transport).
func dualRoute(cs *ChipState, offset uint64) (routed uint64, uPage bool) {
	switch cs.Dual {
	case DualStacked:
		half := cs.TotalSize / 2
		if offset >= half {
			return offset - half, true
		}
		return offset, false
	case DualParallel:
		return offset >> cs.Shift, false
	default:
		return offset, false
	}
}

// bankWindow returns the bank window size in bytes: 16 MiB, doubled
// under dual-parallel.
func bankWindow(cs *ChipState) uint64 {
	return bank16MiB << cs.Shift
}

// bankOf returns which BAR bank a (post dual-routed) offset falls in.
func bankOf(cs *ChipState, offset uint64) uint8 {
	return uint8(offset / bankWindow(cs))
}

// ensureBank selects the bank the target offset falls in: a no-op when
// already selected, otherwise write-enable, write the bank byte with the
// vendor BAR opcode, wait program-ready, then update bankCurr only after
// success.
func ensureBank(ctx context.Context, t Transport, cs *ChipState, offset uint64) error {
	if !cs.barEnabled {
		return nil
	}
	bank := bankOf(cs, offset)
	if bank == cs.bankCurr {
		return nil
	}
	r := regs{t}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("bar-write", KindIO, err)
	}
	if err := r.writeBAR(ctx, cs.barProgramOpcode, bank); err != nil {
		return newErr("bar-write", KindIO, err)
	}
	if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
		return err
	}
	cs.bankCurr = bank
	return nil
}

// route composes the dual router and the BAR router for a single access,
// returning the wire address (within the current bank, addrWidth bytes
// wide), the upper-die selector, and the number of bytes remaining
// before the access would cross a bank boundary. With bank addressing
// off, offsets past 16 MiB per die are rejected here, at the access
// boundary.
func route(ctx context.Context, t Transport, cs *ChipState, offset uint64) (wireAddr uint32, uPage bool, remainInBank uint64, err error) {
	die, uPage := dualRoute(cs, offset)
	cs.uPage = uPage
	if cs.barEnabled {
		if err := ensureBank(ctx, t, cs, die); err != nil {
			return 0, false, 0, err
		}
		window := bankWindow(cs)
		remainInBank = window*(uint64(cs.bankCurr)+1) - die
		return uint32(die % window), uPage, remainInBank, nil
	}
	if cs.AddrWidth <= 3 && die >= bank16MiB {
		return 0, false, 0, newErr("route", KindInvalidArgument, nil)
	}
	return uint32(die), uPage, cs.TotalSize, nil
}
