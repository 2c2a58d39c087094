package spinor

import (
	"context"
	"testing"

	"spinor/internal/simflash"
)

func w25q64Part() simflash.Part {
	return simflash.Part{
		ID: [6]byte{0xef, 0x40, 0x17}, IDLen: 3,
		SectorSize: 64 * 1024, NSectors: 128, PageSize: 256,
		ReadModes: ReadModeFull, WriteModes: WriteModeSingleByte | WriteModeQuad,
	}
}

func n25q512Part() simflash.Part {
	return simflash.Part{
		ID: [6]byte{0x20, 0xba, 0x20}, IDLen: 3,
		SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256,
		ReadModes: ReadModeFull, WriteModes: WriteModeSingleByte | WriteModeQuad,
	}
}

func scanCtx() context.Context {
	return context.Background()
}

// TestScanW25Q64: probing a Winbond w25q64 should pick the fastest
// common read mode, 4K erase, and the expected geometry.
func TestScanW25Q64(t *testing.T) {
	f := simflash.New(w25q64Part())
	defer f.Close()

	cs, err := Scan(scanCtx(), f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if cs.Descriptor.Name != "w25q64" {
		t.Errorf("name = %q, want w25q64", cs.Descriptor.Name)
	}
	if cs.ReadOpcode != opREAD_1_1_4_IO && cs.ReadOpcode != opREAD_1_1_4 {
		t.Errorf("read opcode = 0x%02x, want a quad mode (host advertises full read modes)", cs.ReadOpcode)
	}
	if cs.EraseOpcode != opBE_4K {
		t.Errorf("erase opcode = 0x%02x, want opBE_4K", cs.EraseOpcode)
	}
	if cs.EraseSize != 4096 {
		t.Errorf("erase size = %d, want 4096", cs.EraseSize)
	}
	if cs.TotalSize != 8*1024*1024 {
		t.Errorf("total size = %d, want 8 MiB", cs.TotalSize)
	}
	if cs.PageSize != 256 {
		t.Errorf("page size = %d, want 256", cs.PageSize)
	}
}

// TestScanN25Q512 exercises scenario 2: a Micron part over 16 MiB uses
// flag-status readiness and needs BAR routing for its upper half.
func TestScanN25Q512(t *testing.T) {
	f := simflash.New(n25q512Part())
	defer f.Close()

	cs, err := Scan(scanCtx(), f)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !cs.useFlagStatus {
		t.Error("useFlagStatus = false, want true for n25q512")
	}
	if cs.TotalSize != 64*1024*1024 {
		t.Errorf("total size = %d, want 64 MiB", cs.TotalSize)
	}
	if !cs.barEnabled {
		t.Error("barEnabled = false, want true for a >16MiB 3-byte-address part")
	}
}

func TestScanUnknownDevice(t *testing.T) {
	f := simflash.New(simflash.Part{ID: [6]byte{0xaa, 0xbb, 0xcc}, IDLen: 3, SectorSize: 4096, NSectors: 16, PageSize: 256})
	defer f.Close()

	_, err := Scan(scanCtx(), f)
	if !errorsIsKind(err, KindUnknownDevice) {
		t.Fatalf("err = %v, want KindUnknownDevice", err)
	}
}

func TestScanNilTransport(t *testing.T) {
	_, err := Scan(scanCtx(), nil)
	if !errorsIsKind(err, KindConfig) {
		t.Fatalf("err = %v, want KindConfig", err)
	}
}

func errorsIsKind(err error, k Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == k
}

// TestScanNamedCat25 binds a non-JEDEC part by catalogue name and drives
// a program/read cycle through its 1-byte addressing.
func TestScanNamedCat25(t *testing.T) {
	f := simflash.New(simflash.Part{
		SectorSize: 16, NSectors: 8, PageSize: 16, AddrWidth: 1,
		ReadModes: ReadModeBase,
	})
	defer f.Close()
	ctx := scanCtx()

	cs, err := ScanNamed(ctx, f, "cat25c11")
	if err != nil {
		t.Fatalf("ScanNamed: %v", err)
	}
	if cs.AddrWidth != 1 {
		t.Errorf("addr width = %d, want 1", cs.AddrWidth)
	}
	if cs.TotalSize != 128 {
		t.Errorf("total size = %d, want 128", cs.TotalSize)
	}

	data := []byte{1, 2, 3, 4}
	if err := ProgramAt(ctx, f, cs, 3, data); err != nil {
		t.Fatalf("ProgramAt: %v", err)
	}
	got := make([]byte, len(data))
	if err := ReadAt(ctx, f, cs, 3, got); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], data[i])
		}
	}

	if _, err := ScanNamed(ctx, f, "no-such-part"); !errorsIsKind(err, KindUnknownDevice) {
		t.Fatalf("err = %v, want KindUnknownDevice", err)
	}
}
