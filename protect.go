package spinor

import "context"

// Software write-protection, STMicro-style: status register bits BP0-BP2
// encode a power-of-two region, anchored at the top of the array, that is
// protected from program/erase. The bit encoding follows the scheme
// common to the M25P/N25Q/W25Q status register layout (srBP0/srBP1/srBP2
// in opcodes.go).
//
//	BP value  protected fraction (from top of array)
//	0         none
//	1         1/64
//	2         1/32
//	3         1/16
//	4         1/8
//	5         1/4
//	6         1/2
//	7         all

func bpToFraction(bp byte) (num, den uint64) {
	if bp == 0 {
		return 0, 1
	}
	if bp >= 7 {
		return 1, 1
	}
	return 1, 1 << (7 - bp)
}

func fractionToBP(protectedLen, total uint64) byte {
	if protectedLen == 0 {
		return 0
	}
	if protectedLen >= total {
		return 7
	}
	for bp := byte(1); bp < 7; bp++ {
		_, den := bpToFraction(bp)
		if total/den >= protectedLen {
			return bp
		}
	}
	return 7
}

func bpBits(sr byte) byte {
	var bp byte
	if sr&srBP0 != 0 {
		bp |= 1
	}
	if sr&srBP1 != 0 {
		bp |= 2
	}
	if sr&srBP2 != 0 {
		bp |= 4
	}
	return bp
}

func bpToSR(sr, bp byte) byte {
	sr &^= srBP0 | srBP1 | srBP2
	if bp&1 != 0 {
		sr |= srBP0
	}
	if bp&2 != 0 {
		sr |= srBP1
	}
	if bp&4 != 0 {
		sr |= srBP2
	}
	return sr
}

// protectedRange reports the byte range currently locked, as an offset
// from the top of the array downward.
func protectedRange(bp byte, total uint64) (offset, length uint64) {
	num, den := bpToFraction(bp)
	length = total * num / den
	return total - length, length
}

// Lock extends the protected region, if necessary, to cover
// [offset, offset+length). It never shrinks protection already in
// place.
func Lock(ctx context.Context, t Transport, cs *ChipState, offset, length uint64) error {
	if cs == nil {
		return newErr("lock", KindConfig, nil)
	}
	if offset+length > cs.TotalSize {
		return newErr("lock", KindInvalidArgument, nil)
	}
	wantProtected := cs.TotalSize - offset
	return setProtection(ctx, t, cs, wantProtected, true)
}

// Unlock narrows the protected region so [offset, offset+length) is no
// longer covered. The BP scheme anchors protection at the top of the
// array, so after unlocking, whatever lies above offset+length stays
// locked. A request starting above the current lock base is rejected:
// honouring it would also free [base, offset), which was not asked for.
// The region left locked is rounded up to the next BP fraction, so when
// [offset+length, size) is not exactly one, the top of the requested
// range stays locked; if that rounding leaves the BP value unchanged,
// Unlock writes nothing and returns nil.
func Unlock(ctx context.Context, t Transport, cs *ChipState, offset, length uint64) error {
	if cs == nil {
		return newErr("unlock", KindConfig, nil)
	}
	if offset+length > cs.TotalSize {
		return newErr("unlock", KindInvalidArgument, nil)
	}
	r := regs{t}
	sr, err := r.readStatus(ctx)
	if err != nil {
		return newErr("unlock", KindIO, err)
	}
	curBP := bpBits(sr)
	lockOfs, lockLen := protectedRange(curBP, cs.TotalSize)
	if lockLen == 0 || offset+length <= lockOfs {
		return nil
	}
	if offset > lockOfs {
		return newErr("unlock", KindInvalidArgument, nil)
	}
	var newBP byte
	if remain := cs.TotalSize - (offset + length); remain > 0 {
		newBP = fractionToBP(remain, cs.TotalSize)
	}
	if newBP > curBP {
		return newErr("unlock", KindInvalidArgument, nil)
	}
	if newBP == curBP {
		return nil
	}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("unlock", KindIO, err)
	}
	if err := r.writeStatus(ctx, bpToSR(sr, newBP)); err != nil {
		return newErr("unlock", KindIO, err)
	}
	return waitReady(ctx, t, cs, deadlineProgram)
}

// IsLocked reports whether [offset, offset+length) lies entirely inside
// the currently protected region.
func IsLocked(ctx context.Context, t Transport, cs *ChipState, offset, length uint64) (bool, error) {
	if cs == nil {
		return false, newErr("is-locked", KindConfig, nil)
	}
	r := regs{t}
	sr, err := r.readStatus(ctx)
	if err != nil {
		return false, newErr("is-locked", KindIO, err)
	}
	protOffset, protLen := protectedRange(bpBits(sr), cs.TotalSize)
	if protLen == 0 {
		return false, nil
	}
	return offset >= protOffset && offset+length <= protOffset+protLen, nil
}

// hasLock reports whether the part carries the BP-style software
// protection the engines must honour before mutating the array.
func hasLock(cs *ChipState) bool {
	switch cs.Vendor {
	case VendorMicron, VendorSST:
		return true
	}
	return false
}

func setProtection(ctx context.Context, t Transport, cs *ChipState, wantProtectedFromTop uint64, growOnly bool) error {
	r := regs{t}
	sr, err := r.readStatus(ctx)
	if err != nil {
		return newErr("protect", KindIO, err)
	}
	curBP := bpBits(sr)
	newBP := fractionToBP(wantProtectedFromTop, cs.TotalSize)
	if growOnly && newBP < curBP {
		newBP = curBP
	}
	if newBP == curBP {
		return nil
	}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("protect", KindIO, err)
	}
	if err := r.writeStatus(ctx, bpToSR(sr, newBP)); err != nil {
		return newErr("protect", KindIO, err)
	}
	return waitReady(ctx, t, cs, deadlineProgram)
}
