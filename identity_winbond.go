//go:build !no_winbond

package spinor

// Winbond -- w25x "blocks" are 64K, "sectors" are 4KiB. Registered ahead
// of the Spansion block so the native names win for the w25q IDs the
// s25fl-k second sources share.
func init() {
	registerVendor(70, []Descriptor{
		{Name: "w25p80", ID: [6]byte{mfrWinbond, 0x20, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "w25p16", ID: [6]byte{mfrWinbond, 0x20, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "w25p32", ID: [6]byte{mfrWinbond, 0x20, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "w25x05", ID: [6]byte{mfrWinbond, 0x30, 0x10}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x10", ID: [6]byte{mfrWinbond, 0x30, 0x11}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x20", ID: [6]byte{mfrWinbond, 0x30, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x40", ID: [6]byte{mfrWinbond, 0x30, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x80", ID: [6]byte{mfrWinbond, 0x30, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x16", ID: [6]byte{mfrWinbond, 0x30, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x32", ID: [6]byte{mfrWinbond, 0x30, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25x64", ID: [6]byte{mfrWinbond, 0x30, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "w25q80bl", ID: [6]byte{mfrWinbond, 0x40, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q16cl", ID: [6]byte{mfrWinbond, 0x40, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q32", ID: [6]byte{mfrWinbond, 0x40, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q64", ID: [6]byte{mfrWinbond, 0x40, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q128", ID: [6]byte{mfrWinbond, 0x40, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q256", ID: [6]byte{mfrWinbond, 0x40, 0x19}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q80", ID: [6]byte{mfrWinbond, 0x50, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q16dw", ID: [6]byte{mfrWinbond, 0x60, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q32dw", ID: [6]byte{mfrWinbond, 0x60, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q64dw", ID: [6]byte{mfrWinbond, 0x60, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "w25q128fw", ID: [6]byte{mfrWinbond, 0x60, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K},
	})
}
