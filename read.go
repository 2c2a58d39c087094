package spinor

import "context"

// ReadAt fills dst starting at offset. It prefers the transport's XIP
// memory-map window when one is bound; otherwise it issues command-path
// reads, chunked so no single transaction crosses a bank boundary.
func ReadAt(ctx context.Context, t Transport, cs *ChipState, offset uint64, dst []byte) error {
	if cs == nil {
		return newErr("read", KindConfig, nil)
	}
	if len(dst) == 0 {
		return nil
	}
	if offset+uint64(len(dst)) > cs.TotalSize {
		return newErr("read", KindInvalidArgument, nil)
	}

	if err := t.Claim(ctx); err != nil {
		return newErr("read", KindIO, err)
	}
	defer t.Release()

	if cs.MemoryMap != 0 {
		return readMMAP(ctx, t, cs, offset, dst)
	}
	return readCommand(ctx, t, cs, offset, dst)
}

func readMMAP(ctx context.Context, t Transport, cs *ChipState, offset uint64, dst []byte) error {
	if err := t.ReadMMAP(ctx, offset, dst); err != nil {
		return newErr("read", KindIO, err)
	}
	return nil
}

func readCommand(ctx context.Context, t Transport, cs *ChipState, offset uint64, dst []byte) error {
	remaining := dst
	cur := offset
	dummyBytes := uint8(cs.ReadDummy / 8)
	for len(remaining) > 0 {
		wireAddr, uPage, remainInBank, err := route(ctx, t, cs, cur)
		if err != nil {
			return err
		}
		n := clampMin(uint64(len(remaining)), remainInBank)
		cmd := buildCommand(cs.ReadOpcode, wireAddr, cs.AddrWidth, dummyBytes)
		flags := FlagBegin | FlagEnd
		if uPage {
			flags |= FlagUPage
		}
		if err := t.WriteThenRead(ctx, cmd, nil, remaining[:n], flags); err != nil {
			return newErr("read", KindIO, err)
		}
		remaining = remaining[n:]
		cur += n
	}
	return nil
}
