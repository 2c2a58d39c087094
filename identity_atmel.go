//go:build !no_atmel

package spinor

// Atmel (later Adesto) parts -- some are (confusingly) marketed as
// "DataFlash". All boot write-protected, so Scan clears the status
// register for VendorAtmel before touching the array.
func init() {
	registerVendor(10, []Descriptor{
		{Name: "at25fs010", ID: [6]byte{mfrAtmel, 0x66, 0x01}, IDLen: 3,
			SectorSize: 32 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at25fs040", ID: [6]byte{mfrAtmel, 0x66, 0x04}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},

		{Name: "at25df041a", ID: [6]byte{mfrAtmel, 0x44, 0x01}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at25df321a", ID: [6]byte{mfrAtmel, 0x47, 0x01}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at25df641", ID: [6]byte{mfrAtmel, 0x48, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},

		{Name: "at26f004", ID: [6]byte{mfrAtmel, 0x04, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at26df081a", ID: [6]byte{mfrAtmel, 0x45, 0x01}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at26df161a", ID: [6]byte{mfrAtmel, 0x46, 0x01}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at26df321", ID: [6]byte{mfrAtmel, 0x47, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},

		{Name: "at45db011d", ID: [6]byte{mfrAtmel, 0x22, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db021d", ID: [6]byte{mfrAtmel, 0x23, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db041d", ID: [6]byte{mfrAtmel, 0x24, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db081d", ID: [6]byte{mfrAtmel, 0x25, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db161d", ID: [6]byte{mfrAtmel, 0x26, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db321d", ID: [6]byte{mfrAtmel, 0x27, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "at45db641d", ID: [6]byte{mfrAtmel, 0x28, 0x00}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
}
