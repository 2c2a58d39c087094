//go:build !no_eon

package spinor

// EON -- en25xxx.
func init() {
	registerVendor(20, []Descriptor{
		{Name: "en25f32", ID: [6]byte{mfrEon, 0x31, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "en25p32", ID: [6]byte{mfrEon, 0x20, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25q32b", ID: [6]byte{mfrEon, 0x30, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25p64", ID: [6]byte{mfrEon, 0x20, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25q64", ID: [6]byte{mfrEon, 0x30, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "en25q128b", ID: [6]byte{mfrEon, 0x30, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25qh128", ID: [6]byte{mfrEon, 0x70, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25qh256", ID: [6]byte{mfrEon, 0x70, 0x19}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "en25s64", ID: [6]byte{mfrEon, 0x38, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
}
