package spinor

import "testing"

// TestLookupMatchesFirstIDLenBytes: lookup matches an entry
// byte-for-byte on its first id_len bytes and ignores whatever the chip
// clocks out after them.
func TestLookupMatchesFirstIDLenBytes(t *testing.T) {
	d, ok := lookup([6]byte{0xef, 0x40, 0x17, 0xaa, 0xbb, 0xcc})
	if !ok {
		t.Fatal("expected w25q64 to match despite trailing garbage bytes past id_len")
	}
	if d.Name != "w25q64" {
		t.Errorf("matched %q, want w25q64", d.Name)
	}
}

func TestLookupUnknownID(t *testing.T) {
	if _, ok := lookup([6]byte{0xff, 0xff, 0xff}); ok {
		t.Fatal("expected no match for an unregistered JEDEC ID")
	}
}

// TestSpansionPageSizeTiebreak: 0x4d00 extended parts use 512-byte
// pages except base IDs 0x0215/0x0216.
func TestSpansionPageSizeTiebreak(t *testing.T) {
	generic := &Descriptor{ID: [6]byte{0x01, 0x02, 0x20, 0x4d, 0x00}, IDLen: 5}
	if got := pageSizeFor(generic); got != 512 {
		t.Errorf("pageSizeFor(generic 0x4d00) = %d, want 512", got)
	}
	excluded := &Descriptor{ID: [6]byte{0x01, 0x02, 0x15, 0x4d, 0x00}, IDLen: 5}
	if got := pageSizeFor(excluded); got != 256 {
		t.Errorf("pageSizeFor(0x0215 0x4d00) = %d, want 256", got)
	}
}

func TestVendorOf(t *testing.T) {
	cases := map[byte]Vendor{
		mfrAtmel:      VendorAtmel,
		mfrMacronix:   VendorMacronix,
		mfrMicron:     VendorMicron,
		mfrSpansion:   VendorSpansion,
		mfrSST:        VendorSST,
		mfrWinbond:    VendorWinbond,
		mfrGigaDevice: VendorWinbond,
		mfrEon:        VendorWinbond,
		0x77:          VendorUnknown,
	}
	for mfr, want := range cases {
		if got := vendorOf(mfr); got != want {
			t.Errorf("vendorOf(0x%02x) = %v, want %v", mfr, got, want)
		}
	}
}
