package spinor

import (
	"bytes"
	"testing"

	"spinor/internal/simflash"
)

func sst25Part() simflash.Part {
	return simflash.Part{
		ID: [6]byte{0xbf, 0x25, 0x8d}, IDLen: 3,
		SectorSize: 4096, NSectors: 128, PageSize: 1,
		ReadModes: ReadModeBase,
	}
}

// TestSSTWordProgramOddOffset: programming 5 bytes at offset 1 issues a
// leading single-byte write at 1, an auto-increment word command
// carrying address 2, and an address-less word command for the final
// pair. The odd lead plus two words covers all five bytes, so no
// trailing byte write fires.
func TestSSTWordProgramOddOffset(t *testing.T) {
	rec := &recorder{Flash: simflash.New(sst25Part())}
	t.Cleanup(func() { rec.Close() })
	ctx := mustContext(t)

	cs, err := Scan(ctx, rec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !cs.sstWrite {
		t.Fatal("expected sstWrite=true for an SST part")
	}

	if err := Erase(ctx, rec, cs, &EraseRequest{Offset: 0, Length: uint64(cs.EraseSize)}); err != nil {
		t.Fatalf("Erase: %v", err)
	}

	rec.txns = nil
	data := []byte{1, 2, 3, 4, 5}
	if err := ProgramAt(ctx, rec, cs, 1, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}

	bps := rec.opTxns(opBP)
	if len(bps) != 1 {
		t.Fatalf("issued %d byte-program commands, want 1", len(bps))
	}
	if a := addr24(bps[0].cmd); a != 1 {
		t.Errorf("leading byte at %#x, want 0x1", a)
	}
	aais := rec.opTxns(opAAI_WP)
	if len(aais) != 2 {
		t.Fatalf("issued %d AAI commands, want 2", len(aais))
	}
	if len(aais[0].cmd) != 4 || addr24(aais[0].cmd) != 2 {
		t.Errorf("first AAI cmd = %x, want opcode plus address 0x2", aais[0].cmd)
	}
	if len(aais[1].cmd) != 1 {
		t.Errorf("second AAI cmd = %x, want a bare opcode with no address", aais[1].cmd)
	}
	for i, a := range aais {
		if len(a.out) != 2 {
			t.Errorf("AAI word %d carried %d bytes, want 2", i, len(a.out))
		}
	}

	got := make([]byte, len(data))
	if err := ReadAt(ctx, rec, cs, 1, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %v, want %v", got, data)
	}
}
