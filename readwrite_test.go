package spinor

import (
	"bytes"
	"context"
	"testing"
	"time"

	"spinor/internal/simflash"
)

func probeSim(t *testing.T, part simflash.Part) (*simflash.Flash, *ChipState) {
	t.Helper()
	f := simflash.New(part)
	t.Cleanup(func() { f.Close() })
	cs, err := Scan(scanCtx(), f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return f, cs
}

// TestEraseProgramReadRoundTrip checks the basic round-trip law:
// erase(s); program(s, data); read(s, len(data)) == data.
func TestEraseProgramReadRoundTrip(t *testing.T) {
	f, cs := probeSim(t, w25q64Part())
	ctx := scanCtx()

	data := bytes.Repeat([]byte{0x5a}, 300)
	if err := Erase(ctx, f, cs, &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if err := ProgramAt(ctx, f, cs, 0, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}
	got := make([]byte, len(data))
	if err := ReadAt(ctx, f, cs, 0, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %x want %x", got[:16], data[:16])
	}
}

// TestProgramUnalignedSplitsOnPageBoundary: program(offset=0x000102,
// buf=400 bytes) on a 256-byte page device must not cross a page
// boundary in a single transaction. We verify this indirectly: the two
// halves land correctly even though they fall in different pages.
func TestProgramUnalignedSplitsOnPageBoundary(t *testing.T) {
	f, cs := probeSim(t, w25q64Part())
	ctx := scanCtx()

	if err := Erase(ctx, f, cs, &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	data := bytes.Repeat([]byte{0x11}, 400)
	const offset = 0x102
	if err := ProgramAt(ctx, f, cs, offset, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}
	got := make([]byte, len(data))
	if err := ReadAt(ctx, f, cs, offset, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("unaligned program/read mismatch")
	}
}

// TestFourKErase: erasing two 4K sectors issues two independent erase
// passes, each leaving its region all-0xFF.
func TestFourKErase(t *testing.T) {
	f, cs := probeSim(t, w25q64Part())
	ctx := scanCtx()

	data := bytes.Repeat([]byte{0x00}, 0x2000)
	if err := Erase(ctx, f, cs, &EraseRequest{Offset: 0x010000, Length: uint64(len(data))}); err != nil {
		t.Fatalf("pre-erase: %v", err)
	}
	if err := ProgramAt(ctx, f, cs, 0x010000, data); err != nil {
		t.Fatalf("program: %v", err)
	}
	req := &EraseRequest{Offset: 0x010000, Length: 0x2000}
	if err := Erase(ctx, f, cs, req); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if req.State != EraseDone {
		t.Fatalf("state = %v, want EraseDone", req.State)
	}
	got := make([]byte, 0x2000)
	if err := ReadAt(ctx, f, cs, 0x010000, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	for i, b := range got {
		if b != 0xff {
			t.Fatalf("byte %d = 0x%02x, want 0xff after erase", i, b)
		}
	}
}

func TestEraseRejectsMisalignment(t *testing.T) {
	f, cs := probeSim(t, w25q64Part())
	ctx := scanCtx()
	req := &EraseRequest{Offset: 1, Length: uint64(cs.EraseSize)}
	err := Erase(ctx, f, cs, req)
	if !errorsIsKind(err, KindInvalidArgument) {
		t.Fatalf("err = %v, want KindInvalidArgument", err)
	}
	if req.State != EraseFailed {
		t.Fatalf("state = %v, want EraseFailed", req.State)
	}
}

func TestReadBeyondDeviceRejected(t *testing.T) {
	f, cs := probeSim(t, w25q64Part())
	ctx := scanCtx()
	buf := make([]byte, 16)
	err := ReadAt(ctx, f, cs, cs.TotalSize-8, buf)
	if !errorsIsKind(err, KindInvalidArgument) {
		t.Fatalf("err = %v, want KindInvalidArgument", err)
	}
}

// TestProgramNoEraseSupportIsReadOnly covers a FeatureNoErase part
// (FRAM-style, mb85rs1mt): program must work without an erase size, and
// a caller-issued Erase should fail KindReadOnly.
func TestProgramNoEraseSupportIsReadOnly(t *testing.T) {
	f, cs := probeSim(t, simflash.Part{
		ID: [6]byte{0x04, 0x7f, 0x27}, IDLen: 3,
		SectorSize: 128 * 1024, NSectors: 1, PageSize: 256,
		ReadModes: ReadModeBase,
	})
	ctx := scanCtx()
	err := Erase(ctx, f, cs, &EraseRequest{Offset: 0, Length: 4096})
	if !errorsIsKind(err, KindReadOnly) {
		t.Fatalf("err = %v, want KindReadOnly", err)
	}
	// Programming still works: these parts simply don't need an erase
	// cycle first.
	data := []byte{0xde, 0xad}
	if err := ProgramAt(ctx, f, cs, 64, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}
	got := make([]byte, 2)
	if err := ReadAt(ctx, f, cs, 64, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %x, want %x", got, data)
	}
}

// TestReadViaXIPWindow covers the memory-mapped fast path: with an XIP
// window bound, reads bypass the opcode path entirely and still observe
// programmed data.
func TestReadViaXIPWindow(t *testing.T) {
	part := w25q64Part()
	part.XIP = true
	rec := &recorder{Flash: simflash.New(part)}
	t.Cleanup(func() { rec.Close() })
	ctx := mustContext(t)

	cs, err := Scan(ctx, rec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if cs.MemoryMap == 0 {
		t.Skip("no mmap window available on this host")
	}

	if err := Erase(ctx, rec, cs, &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	data := bytes.Repeat([]byte{0xa5}, 64)
	if err := ProgramAt(ctx, rec, cs, 16, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}

	rec.txns = nil
	got := make([]byte, 64)
	if err := ReadAt(ctx, rec, cs, 16, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("XIP read mismatch")
	}
	if reads := rec.opTxns(cs.ReadOpcode); len(reads) != 0 {
		t.Errorf("XIP read issued %d opcode transactions, want 0", len(reads))
	}
}

func mustContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// recorder wraps the simulator and keeps every command issued, so
// transaction-level properties (page splitting, bank crossings, SST
// sequencing) can be asserted directly instead of only via round trips.
type recorder struct {
	*simflash.Flash
	txns []txn
}

type txn struct {
	cmd []byte
	out []byte
}

func (r *recorder) WriteThenRead(ctx context.Context, cmd []byte, dataOut, dataIn []byte, flags TransferFlag) error {
	r.txns = append(r.txns, txn{
		cmd: append([]byte(nil), cmd...),
		out: append([]byte(nil), dataOut...),
	})
	return r.Flash.WriteThenRead(ctx, cmd, dataOut, dataIn, flags)
}

func (r *recorder) opTxns(op byte) []txn {
	var out []txn
	for _, tx := range r.txns {
		if tx.cmd[0] == op {
			out = append(out, tx)
		}
	}
	return out
}

func addr24(cmd []byte) uint32 {
	return uint32(cmd[1])<<16 | uint32(cmd[2])<<8 | uint32(cmd[3])
}

// TestProgramChunkBoundaries checks page splitting at the transaction
// level: program(0x102, 400 bytes) on a 256-byte-page device issues
// exactly two program commands, 254 bytes at 0x102 and 146 at 0x200.
func TestProgramChunkBoundaries(t *testing.T) {
	rec := &recorder{Flash: simflash.New(w25q64Part())}
	t.Cleanup(func() { rec.Close() })
	ctx := mustContext(t)

	cs, err := Scan(ctx, rec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if err := Erase(ctx, rec, cs, &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}); err != nil {
		t.Fatalf("Erase: %v", err)
	}

	rec.txns = nil
	if err := ProgramAt(ctx, rec, cs, 0x102, make([]byte, 400)); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}

	progs := rec.opTxns(cs.ProgramOpcode)
	if len(progs) != 2 {
		t.Fatalf("issued %d program commands, want 2", len(progs))
	}
	if a := addr24(progs[0].cmd); a != 0x102 {
		t.Errorf("first chunk at %#x, want 0x102", a)
	}
	if n := len(progs[0].out); n != 254 {
		t.Errorf("first chunk %d bytes, want 254", n)
	}
	if a := addr24(progs[1].cmd); a != 0x200 {
		t.Errorf("second chunk at %#x, want 0x200", a)
	}
	if n := len(progs[1].out); n != 146 {
		t.Errorf("second chunk %d bytes, want 146", n)
	}
}

// TestReadAcrossBankBoundary: a read spanning the 16 MiB boundary on a
// bank-addressed device splits into one transaction per bank with a
// bank register write in between.
func TestReadAcrossBankBoundary(t *testing.T) {
	rec := &recorder{Flash: simflash.New(n25q512Part())}
	t.Cleanup(func() { rec.Close() })
	ctx := mustContext(t)

	cs, err := Scan(ctx, rec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !cs.barEnabled {
		t.Fatal("expected BAR routing on a 64 MiB 3-byte-address part")
	}

	const boundary = 1 << 24
	for _, sector := range []uint64{boundary - 0x1000, boundary} {
		if err := Erase(ctx, rec, cs, &EraseRequest{Offset: sector, Length: 0x1000}); err != nil {
			t.Fatalf("Erase(%#x): %v", sector, err)
		}
	}
	pattern := make([]byte, 0x20)
	for i := range pattern {
		pattern[i] = byte(i + 1)
	}
	if err := ProgramAt(ctx, rec, cs, boundary-0x10, pattern); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}

	rec.txns = nil
	got := make([]byte, 0x20)
	if err := ReadAt(ctx, rec, cs, boundary-0x10, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, pattern) {
		t.Fatalf("data mismatch across bank boundary: got %x want %x", got, pattern)
	}

	reads := rec.opTxns(cs.ReadOpcode)
	if len(reads) != 2 {
		t.Fatalf("issued %d read commands, want 2", len(reads))
	}
	if a := addr24(reads[0].cmd); a != boundary-0x10 {
		t.Errorf("first read at %#x, want %#x", a, boundary-0x10)
	}
	if a := addr24(reads[1].cmd); a != 0 {
		t.Errorf("second read at %#x, want 0x0", a)
	}
	bars := rec.opTxns(cs.barProgramOpcode)
	if len(bars) == 0 {
		t.Fatal("no bank register write between the two reads")
	}
	last := bars[len(bars)-1]
	if len(last.out) != 1 || last.out[0] != 1 {
		t.Errorf("final bank write = %v, want [1]", last.out)
	}
	if cs.bankCurr != 1 {
		t.Errorf("bankCurr = %d after crossing, want 1", cs.bankCurr)
	}
}
