package spinor

import (
	"context"
	"testing"

	"spinor/internal/simflash"
)

func m25p16Part() simflash.Part {
	return simflash.Part{
		ID: [6]byte{0x20, 0x20, 0x15}, IDLen: 3,
		SectorSize: 64 * 1024, NSectors: 32, PageSize: 256,
		ReadModes: ReadModeBase,
	}
}

// TestLockUnlockRoundTrip: locking then unlocking the same range
// returns the status register to its starting value.
func TestLockUnlockRoundTrip(t *testing.T) {
	f := simflash.New(m25p16Part())
	defer f.Close()
	ctx := context.Background()

	cs, err := Scan(ctx, f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	before, err := regs{f}.readStatus(ctx)
	if err != nil {
		t.Fatalf("readStatus: %v", err)
	}

	quarter := cs.TotalSize / 4
	if err := Lock(ctx, f, cs, cs.TotalSize-quarter, quarter); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	locked, err := IsLocked(ctx, f, cs, cs.TotalSize-quarter, quarter)
	if err != nil {
		t.Fatalf("IsLocked: %v", err)
	}
	if !locked {
		t.Fatal("IsLocked = false after Lock")
	}

	if err := Unlock(ctx, f, cs, cs.TotalSize-quarter, quarter); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	after, err := regs{f}.readStatus(ctx)
	if err != nil {
		t.Fatalf("readStatus: %v", err)
	}
	if before != after {
		t.Fatalf("status register = 0x%02x after lock/unlock, want 0x%02x", after, before)
	}
}

func TestUnlockAboveLockBaseRejected(t *testing.T) {
	f := simflash.New(m25p16Part())
	defer f.Close()
	ctx := context.Background()
	cs, err := Scan(ctx, f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	half := cs.TotalSize / 2
	quarter := cs.TotalSize / 4
	if err := Lock(ctx, f, cs, cs.TotalSize-half, half); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	// Unlocking only the top quarter would also free [base, offset),
	// which was not requested: the BP scheme cannot keep a region locked
	// below an unlocked one.
	if err := Unlock(ctx, f, cs, cs.TotalSize-quarter, quarter); err == nil {
		t.Fatal("Unlock starting above the lock base should fail")
	}
}

func TestUnlockShrinksFromBottom(t *testing.T) {
	f := simflash.New(m25p16Part())
	defer f.Close()
	ctx := context.Background()
	cs, err := Scan(ctx, f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	half := cs.TotalSize / 2
	quarter := cs.TotalSize / 4
	if err := Lock(ctx, f, cs, cs.TotalSize-half, half); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	// Freeing the bottom quarter of the locked region keeps the top
	// quarter locked.
	if err := Unlock(ctx, f, cs, cs.TotalSize-half, quarter); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	top, err := IsLocked(ctx, f, cs, cs.TotalSize-quarter, quarter)
	if err != nil {
		t.Fatalf("IsLocked: %v", err)
	}
	if !top {
		t.Error("top quarter should remain locked")
	}
	freed, err := IsLocked(ctx, f, cs, cs.TotalSize-half, quarter)
	if err != nil {
		t.Fatalf("IsLocked: %v", err)
	}
	if freed {
		t.Error("freed quarter should no longer be locked")
	}
}

// TestProgramLockedRangeProtected: a program into a locked range fails
// with the protected error kind before any data phase is issued.
func TestProgramLockedRangeProtected(t *testing.T) {
	f := simflash.New(m25p16Part())
	defer f.Close()
	ctx := context.Background()
	cs, err := Scan(ctx, f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if err := Lock(ctx, f, cs, 0, cs.TotalSize); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	err = ProgramAt(ctx, f, cs, 0, []byte{0x00})
	if !errorsIsKind(err, KindProtected) {
		t.Fatalf("err = %v, want KindProtected", err)
	}
	req := &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}
	err = Erase(ctx, f, cs, req)
	if !errorsIsKind(err, KindProtected) {
		t.Fatalf("err = %v, want KindProtected", err)
	}
	if req.State != EraseFailed {
		t.Fatalf("state = %v, want EraseFailed", req.State)
	}
}

func TestBPFractionRoundTrip(t *testing.T) {
	for bp := byte(0); bp <= 7; bp++ {
		num, den := bpToFraction(bp)
		total := uint64(8 * 1024 * 1024)
		protected := total * num / den
		got := fractionToBP(protected, total)
		if bp != 0 && bp != 7 && got != bp {
			t.Errorf("fractionToBP(bpToFraction(%d)) = %d, want %d", bp, got, bp)
		}
	}
}
