package spinor

import (
	"context"
	"log/slog"

	"spinor/config"
)

// Scan identifies the flash attached to t and derives a ChipState ready
// for Read/Program/Erase: identify, clear power-on protection, derive
// geometry and opcodes, negotiate read/write modes, enable quad if
// needed, and initialise bank addressing.
func Scan(ctx context.Context, t Transport) (*ChipState, error) {
	if t == nil {
		return nil, newErr("scan", KindConfig, nil)
	}

	if err := t.Claim(ctx); err != nil {
		return nil, newErr("scan", KindIO, err)
	}
	defer t.Release()

	// Step 1: RDID.
	var id [6]byte
	if err := t.WriteThenRead(ctx, []byte{opRDID}, nil, id[:], FlagBegin|FlagEnd); err != nil {
		return nil, newErr("scan", KindIO, err)
	}

	// Step 2: identity table lookup.
	desc, ok := lookup(id)
	if !ok {
		return nil, newErr("scan", KindUnknownDevice, nil)
	}

	return deriveState(ctx, t, desc)
}

// ScanNamed configures a part that cannot be identified by RDID: the
// CAT25/Pm25LV/-nonjedec catalogue entries answer with nothing usable,
// so the board layer that knows what is soldered down names the entry
// directly.
func ScanNamed(ctx context.Context, t Transport, name string) (*ChipState, error) {
	if t == nil {
		return nil, newErr("scan", KindConfig, nil)
	}
	desc, ok := DescriptorByName(name)
	if !ok {
		return nil, newErr("scan", KindUnknownDevice, nil)
	}

	if err := t.Claim(ctx); err != nil {
		return nil, newErr("scan", KindIO, err)
	}
	defer t.Release()

	return deriveState(ctx, t, desc)
}

// deriveState is steps 3-13 of the scan pipeline, shared by the RDID and
// named entry points.
func deriveState(ctx context.Context, t Transport, desc *Descriptor) (*ChipState, error) {
	cs := &ChipState{
		Descriptor: desc,
		Vendor:     vendorOf(desc.Mfr()),
	}
	r := regs{t}

	// Step 3: power-on protection clear for vendors that boot
	// write-protected (Atmel, Macronix, SST all ship with BP bits set).
	switch cs.Vendor {
	case VendorAtmel, VendorMacronix, VendorSST:
		if err := clearProtection(ctx, t); err != nil {
			return nil, newErr("scan", KindIO, err)
		}
	}

	// Step 4: geometry.
	pageSize := pageSizeFor(desc)
	cs.PageSize = uint32(pageSize)
	cs.TotalSize = uint64(desc.SectorSize) * uint64(desc.NSectors)
	if cs.TotalSize == 0 {
		return nil, newErr("scan", KindUnknownDevice, nil)
	}
	cs.AddrWidth = desc.AddrWidth
	if cs.AddrWidth == 0 {
		cs.AddrWidth = 3
	}
	cs.WriteBufSize = cs.PageSize

	// Step 5: erase opcode/size, preferring 4K uniform erase.
	switch {
	case desc.Flags&FeatureErase4K != 0:
		cs.EraseOpcode = opBE_4K
		cs.EraseSize = 4096
	case desc.Flags&FeatureErase4KPMC != 0:
		cs.EraseOpcode = opBE_4K_PMC
		cs.EraseSize = 4096
	case desc.Flags&FeatureErase32K != 0:
		cs.EraseOpcode = opBE_32K
		cs.EraseSize = 32 * 1024
	case desc.Flags&FeatureNoErase != 0:
		cs.EraseOpcode = 0
		cs.EraseSize = 0
	default:
		cs.EraseOpcode = opSE
		cs.EraseSize = desc.SectorSize
	}

	// Step 6: read mode, intersecting chip capability with host
	// capability, then picking the fastest common mode.
	avail := desc.ReadModes & t.ModeRx()
	if desc.Flags&FeatureNoFastRead != 0 {
		avail &^= ReadModeFast | ReadModeDual | ReadModeQuad | ReadModeDualIO | ReadModeQuadIO
	}
	cs.ReadMode, cs.ReadOpcode, cs.ReadDummy = pickReadMode(avail)

	// Step 7: program opcode/write mode.
	cs.ProgramOpcode = opPP
	cs.WriteMode = WriteModeSingleByte
	if desc.Flags&FeatureQuadProgram != 0 && t.ModeTx()&WriteModeQuad != 0 {
		cs.ProgramOpcode = opQPP
		cs.WriteMode = WriteModeQuad
	}
	if desc.Flags&FeatureSSTWrite != 0 {
		cs.sstWrite = true
		cs.ProgramOpcode = opAAI_WP
	}

	// Step 8: quad-enable dispatch, only when the negotiated modes
	// actually need it.
	needsQuad := cs.ReadMode&(ReadModeQuad|ReadModeQuadIO) != 0 || cs.WriteMode&WriteModeQuad != 0
	if needsQuad {
		if err := enableQuad(ctx, t, cs); err != nil {
			return nil, err
		}
	}

	// Step 9: flag-status readiness quirk.
	cs.useFlagStatus = desc.Flags&FeatureUseFlagStatus != 0

	// Step 10: read_dummy cycles -> bytes handled at the call site
	// (read.go), since byte-addressed command buffers need cycles/8;
	// ReadDummy itself stays in cycles. The XIP path has no dummy phase.

	// Step 11: dual-die topology is set by the caller via Configure, not
	// auto-detected here (topology comes from board wiring, not JEDEC
	// ID). Default to DualSingle until Configure runs.
	cs.Dual = DualSingle
	cs.Shift = 0

	// Step 12: BAR initialization, only meaningful for devices larger
	// than a single 3-byte address space and with a 3-byte AddrWidth
	// (4-byte-address parts never need bank switching). Spansion parts
	// use the bank register opcode pair, everyone else the extended
	// address register pair.
	if cs.AddrWidth == 3 && cs.TotalSize > bank16MiB {
		if config.BankAddressing() {
			cs.barEnabled = true
			if cs.Vendor == VendorSpansion {
				cs.barReadOpcode = opBRRD
				cs.barProgramOpcode = opBRWR
			} else {
				cs.barReadOpcode = opRDEAR
				cs.barProgramOpcode = opWREAR
			}
			bar, err := r.read1(ctx, cs.barReadOpcode)
			if err != nil {
				return nil, newErr("scan", KindIO, err)
			}
			cs.bankCurr = bar
		} else if spinorLogger != nil {
			// Not fatal: everything below the 16 MiB boundary still
			// works, and route() rejects accesses above it.
			spinorLogger.Warn("scan:bank-addressing-off",
				slog.String("name", desc.Name),
				slog.Uint64("size", cs.TotalSize))
		}
	}

	// Step 13: memory-map binding, if the transport exposes one. A
	// window that doesn't cover the device exactly is a wiring error.
	if base, size, ok := t.MemoryMap(); ok {
		if size != cs.TotalSize {
			return nil, newErr("scan", KindConfig, nil)
		}
		cs.MemoryMap = base
	}
	cs.MaxWriteSize = t.MaxWriteSize()

	if spinorLogger != nil {
		spinorLogger.Info("scan:configured",
			slog.String("name", desc.Name),
			slog.Uint64("size", cs.TotalSize),
			slog.String("read", cs.ReadMode.String()),
			slog.Uint64("erasesize", uint64(cs.EraseSize)))
	}
	return cs, nil
}

// Configure applies board-level wiring decisions Scan cannot infer from
// JEDEC ID alone: multi-die topology. It must run before any Read/
// Program/Erase call and recomputes the geometry fields for the chosen
// topology.
func Configure(cs *ChipState, dual DualMode) error {
	if cs == nil {
		return newErr("configure", KindConfig, nil)
	}
	cs.Dual = dual
	switch dual {
	case DualParallel:
		cs.Shift = 1
		cs.PageSize *= 2
		cs.EraseSize *= 2
		cs.TotalSize *= 2
		cs.WriteBufSize = cs.PageSize
	case DualStacked:
		cs.TotalSize *= 2
	case DualSingle:
	default:
		return newErr("configure", KindInvalidArgument, nil)
	}
	return nil
}

// clearProtection issues write-enable then a status register write of 0,
// clearing any BP bits the part powered on with.
func clearProtection(ctx context.Context, t Transport) error {
	r := regs{t}
	if err := r.writeEnable(ctx); err != nil {
		return err
	}
	if err := r.writeStatus(ctx, 0); err != nil {
		return err
	}
	return waitReady(ctx, t, &ChipState{}, deadlineProgram)
}

// pickReadMode chooses the highest set mode bit in avail and returns its
// opcode and dummy cycle count. Preference order: quad I/O, dual I/O,
// quad, dual, fast, normal. Quad I/O reads clock two dummy bytes; every
// other non-plain read clocks one.
func pickReadMode(avail ReadMode) (ReadMode, byte, uint8) {
	switch {
	case avail&ReadModeQuadIO != 0:
		return ReadModeQuadIO, opREAD_1_1_4_IO, 16
	case avail&ReadModeDualIO != 0:
		return ReadModeDualIO, opREAD_1_1_2_IO, 8
	case avail&ReadModeQuad != 0:
		return ReadModeQuad, opREAD_1_1_4, 8
	case avail&ReadModeDual != 0:
		return ReadModeDual, opREAD_1_1_2, 8
	case avail&ReadModeFast != 0:
		return ReadModeFast, opREAD_FAST, 8
	default:
		return ReadModeNormal, opREAD, 0
	}
}
