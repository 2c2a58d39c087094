package spinor

import "context"

// regs wraps the single-opcode register primitives. Every primitive
// sends one opcode with no address phase and a short data phase;
// failures propagate unchanged, wrapped with the calling operation's
// name by the caller.
type regs struct {
	t Transport
}

func (r regs) read1(ctx context.Context, op byte) (byte, error) {
	var rx [1]byte
	if err := r.t.WriteThenRead(ctx, []byte{op}, nil, rx[:], FlagBegin|FlagEnd); err != nil {
		return 0, err
	}
	return rx[0], nil
}

func (r regs) write0(ctx context.Context, op byte) error {
	return r.t.WriteThenRead(ctx, []byte{op}, nil, nil, FlagBegin|FlagEnd)
}

func (r regs) writeN(ctx context.Context, op byte, data []byte) error {
	return r.t.WriteThenRead(ctx, []byte{op}, data, nil, FlagBegin|FlagEnd)
}

func (r regs) readStatus(ctx context.Context) (byte, error)     { return r.read1(ctx, opRDSR) }
func (r regs) readFlagStatus(ctx context.Context) (byte, error) { return r.read1(ctx, opRDFSR) }
func (r regs) readConfig(ctx context.Context) (byte, error)     { return r.read1(ctx, opRDCR) }
func (r regs) readEVCR(ctx context.Context) (byte, error)       { return r.read1(ctx, opRD_EVCR) }
func (r regs) readBAR(ctx context.Context) (byte, error)        { return r.read1(ctx, opBRRD) }
func (r regs) readExtAddr(ctx context.Context) (byte, error)    { return r.read1(ctx, opRDEAR) }

func (r regs) writeEnable(ctx context.Context) error  { return r.write0(ctx, opWREN) }
func (r regs) writeDisable(ctx context.Context) error { return r.write0(ctx, opWRDI) }

func (r regs) writeStatus(ctx context.Context, sr byte) error {
	return r.writeN(ctx, opWRSR, []byte{sr})
}

// writeStatusConfig writes status and config registers in a single
// 2-byte opWRSR transaction (Spansion/Winbond quad-enable path).
func (r regs) writeStatusConfig(ctx context.Context, sr, cr byte) error {
	return r.writeN(ctx, opWRSR, []byte{sr, cr})
}

func (r regs) writeEVCR(ctx context.Context, v byte) error {
	return r.writeN(ctx, opWR_EVCR, []byte{v})
}

func (r regs) writeBAR(ctx context.Context, op, bank byte) error {
	return r.writeN(ctx, op, []byte{bank})
}
