//go:build !no_issi

package spinor

// ISSI IS25 series. is25cd512 carries a continuation-code-prefixed ID
// (0x7f), so its first byte is not the usual manufacturer byte.
func init() {
	registerVendor(40, []Descriptor{
		{Name: "is25cd512", ID: [6]byte{0x7f, mfrISSI, 0x20}, IDLen: 3,
			SectorSize: 32 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "is25lp032", ID: [6]byte{mfrISSI, 0x60, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "is25lp064", ID: [6]byte{mfrISSI, 0x60, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "is25lp128", ID: [6]byte{mfrISSI, 0x60, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeBase},
	})
}
