//go:build !no_stmicro

package spinor

// ST Microelectronics M25P/M45PE/M25PE/M25PX families, sharing Micron's
// manufacturer byte. These are the parts protect.go's BP0-BP2 block
// protect was written for; they predate the quad/FSR additions and stick
// to the plain status register. The -nonjedec variants answer RDID with
// nothing useful and are matched out of band (IDLen 0).
func init() {
	registerVendor(61, []Descriptor{
		{Name: "m25p05", ID: [6]byte{mfrMicron, 0x20, 0x10}, IDLen: 3,
			SectorSize: 32 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p10", ID: [6]byte{mfrMicron, 0x20, 0x11}, IDLen: 3,
			SectorSize: 32 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p20", ID: [6]byte{mfrMicron, 0x20, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p40", ID: [6]byte{mfrMicron, 0x20, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p80", ID: [6]byte{mfrMicron, 0x20, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p16", ID: [6]byte{mfrMicron, 0x20, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p32", ID: [6]byte{mfrMicron, 0x20, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p64", ID: [6]byte{mfrMicron, 0x20, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p128", ID: [6]byte{mfrMicron, 0x20, 0x18}, IDLen: 3,
			SectorSize: 256 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},

		{Name: "m25p05-nonjedec", IDLen: 0,
			SectorSize: 32 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p10-nonjedec", IDLen: 0,
			SectorSize: 32 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p20-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p40-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p80-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p16-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p32-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p64-nonjedec", IDLen: 0,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25p128-nonjedec", IDLen: 0,
			SectorSize: 256 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},

		{Name: "m45pe10", ID: [6]byte{mfrMicron, 0x40, 0x11}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m45pe80", ID: [6]byte{mfrMicron, 0x40, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m45pe16", ID: [6]byte{mfrMicron, 0x40, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},

		{Name: "m25pe20", ID: [6]byte{mfrMicron, 0x80, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25pe80", ID: [6]byte{mfrMicron, 0x80, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25pe16", ID: [6]byte{mfrMicron, 0x80, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},

		{Name: "m25px16", ID: [6]byte{mfrMicron, 0x71, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "m25px32", ID: [6]byte{mfrMicron, 0x71, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "m25px32-s0", ID: [6]byte{mfrMicron, 0x73, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "m25px32-s1", ID: [6]byte{mfrMicron, 0x63, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "m25px64", ID: [6]byte{mfrMicron, 0x71, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "m25px80", ID: [6]byte{mfrMicron, 0x71, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
	})
}
