package spinor

import "testing"

// TestDualRouteStacked: the upper-die select tracks
// offset >= total_size/2 under stacked, and the routed offset folds the
// upper half down into the lower half.
func TestDualRouteStacked(t *testing.T) {
	cs := &ChipState{Dual: DualStacked, TotalSize: 16 * 1024 * 1024}
	cases := []struct {
		offset       uint64
		wantRouted   uint64
		wantUPage    bool
	}{
		{0, 0, false},
		{8*1024*1024 - 1, 8*1024*1024 - 1, false},
		{8 * 1024 * 1024, 0, true},
		{8*1024*1024 + 100, 100, true},
	}
	for _, tc := range cases {
		routed, uPage := dualRoute(cs, tc.offset)
		if routed != tc.wantRouted || uPage != tc.wantUPage {
			t.Errorf("dualRoute(%#x) = (%#x, %v), want (%#x, %v)", tc.offset, routed, uPage, tc.wantRouted, tc.wantUPage)
		}
	}
}

// TestDualRouteParallel checks routed_offset == offset >> 1.
func TestDualRouteParallel(t *testing.T) {
	cs := &ChipState{Dual: DualParallel, Shift: 1, TotalSize: 16 * 1024 * 1024}
	routed, uPage := dualRoute(cs, 0x1000)
	if routed != 0x800 || uPage {
		t.Errorf("dualRoute(0x1000) = (%#x, %v), want (0x800, false)", routed, uPage)
	}
}

func TestDualRouteSingle(t *testing.T) {
	cs := &ChipState{Dual: DualSingle, TotalSize: 16 * 1024 * 1024}
	routed, uPage := dualRoute(cs, 0x1234)
	if routed != 0x1234 || uPage {
		t.Errorf("dualRoute passthrough failed: got (%#x, %v)", routed, uPage)
	}
}

func TestBankOf(t *testing.T) {
	cs := &ChipState{Shift: 0}
	if got := bankOf(cs, 0x00ffffff); got != 0 {
		t.Errorf("bankOf(0x00ffffff) = %d, want 0", got)
	}
	if got := bankOf(cs, 0x01000000); got != 1 {
		t.Errorf("bankOf(0x01000000) = %d, want 1", got)
	}
}
