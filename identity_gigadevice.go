//go:build !no_gigadevice

package spinor

// GigaDevice GD25 series.
func init() {
	registerVendor(30, []Descriptor{
		{Name: "gd25q32", ID: [6]byte{mfrGigaDevice, 0x40, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "gd25q64", ID: [6]byte{mfrGigaDevice, 0x40, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "gd25q128", ID: [6]byte{mfrGigaDevice, 0x40, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "gd25lq32", ID: [6]byte{mfrGigaDevice, 0x60, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
}
