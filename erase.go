package spinor

import "context"

// Erase clears [offset, offset+length) to all-ones. Offset and length
// must both be multiples of cs.EraseSize; a whole-chip erase (offset 0,
// length == cs.TotalSize) uses opCHIP_ERASE instead of looping the
// sector opcode.
func Erase(ctx context.Context, t Transport, cs *ChipState, req *EraseRequest) error {
	if cs == nil || req == nil {
		return newErr("erase", KindConfig, nil)
	}
	if cs.EraseSize == 0 {
		req.State = EraseFailed
		return newErr("erase", KindReadOnly, nil)
	}
	if req.Length == 0 || req.Offset%uint64(cs.EraseSize) != 0 || req.Length%uint64(cs.EraseSize) != 0 {
		req.State = EraseFailed
		return newErr("erase", KindInvalidArgument, nil)
	}
	if req.Offset+req.Length > cs.TotalSize {
		req.State = EraseFailed
		return newErr("erase", KindInvalidArgument, nil)
	}

	err := doErase(ctx, t, cs, req)
	if err != nil {
		req.State = EraseFailed
	} else {
		req.State = EraseDone
	}
	if req.Callback != nil {
		req.Callback(req)
	}
	return err
}

func doErase(ctx context.Context, t Transport, cs *ChipState, req *EraseRequest) error {
	if err := t.Claim(ctx); err != nil {
		return newErr("erase", KindIO, err)
	}
	defer t.Release()

	r := regs{t}

	if hasLock(cs) {
		locked, err := IsLocked(ctx, t, cs, req.Offset, req.Length)
		if err != nil {
			return err
		}
		if locked {
			return newErr("erase", KindProtected, nil)
		}
	}

	if req.Offset == 0 && req.Length == cs.TotalSize {
		if err := r.writeEnable(ctx); err != nil {
			return newErr("erase", KindIO, err)
		}
		if err := r.write0(ctx, opCHIP_ERASE); err != nil {
			return newErr("erase", KindIO, err)
		}
		if err := waitReady(ctx, t, cs, deadlineErase); err != nil {
			return err
		}
		if err := r.writeDisable(ctx); err != nil {
			return newErr("erase", KindIO, err)
		}
		return nil
	}

	cur := req.Offset
	end := req.Offset + req.Length
	for cur < end {
		// A single erase block never straddles a bank: bank windows are
		// erase-size aligned.
		wireAddr, uPage, _, err := route(ctx, t, cs, cur)
		if err != nil {
			return err
		}

		if err := r.writeEnable(ctx); err != nil {
			return newErr("erase", KindIO, err)
		}
		cmd := buildCommand(cs.EraseOpcode, wireAddr, cs.AddrWidth, 0)
		flags := FlagBegin | FlagEnd
		if uPage {
			flags |= FlagUPage
		}
		if err := t.WriteThenRead(ctx, cmd, nil, nil, flags); err != nil {
			return newErr("erase", KindIO, err)
		}
		if err := waitReady(ctx, t, cs, deadlineErase); err != nil {
			return err
		}
		cur += uint64(cs.EraseSize)
	}
	if err := r.writeDisable(ctx); err != nil {
		return newErr("erase", KindIO, err)
	}
	return nil
}
