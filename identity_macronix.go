//go:build !no_macronix

package spinor

// Macronix MX25 series. Macronix also gets the power-on protection clear
// in Scan and uses the status register bit6 quad-enable handshake
// (quad.go).
func init() {
	registerVendor(50, []Descriptor{
		{Name: "mx25l512e", ID: [6]byte{mfrMacronix, 0x20, 0x10}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l2005a", ID: [6]byte{mfrMacronix, 0x20, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l4005a", ID: [6]byte{mfrMacronix, 0x20, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l8005", ID: [6]byte{mfrMacronix, 0x20, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "mx25l1606e", ID: [6]byte{mfrMacronix, 0x20, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l3205d", ID: [6]byte{mfrMacronix, 0x20, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "mx25l3255e", ID: [6]byte{mfrMacronix, 0x9e, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l6405d", ID: [6]byte{mfrMacronix, 0x20, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "mx25u6435f", ID: [6]byte{mfrMacronix, 0x25, 0x37}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "mx25l12805d", ID: [6]byte{mfrMacronix, 0x20, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "mx25l12855e", ID: [6]byte{mfrMacronix, 0x26, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "mx25l25635e", ID: [6]byte{mfrMacronix, 0x20, 0x19}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "mx25l25655e", ID: [6]byte{mfrMacronix, 0x26, 0x19}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "mx66l51235l", ID: [6]byte{mfrMacronix, 0x20, 0x1a}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "mx66l1g55g", ID: [6]byte{mfrMacronix, 0x26, 0x1b}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 2048, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
	})
}
