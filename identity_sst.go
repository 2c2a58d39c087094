//go:build !no_sst

package spinor

// SST -- large erase sizes are "overlays", "sectors" are 4K.
// FeatureSSTWrite routes program.go to the byte/word auto-increment
// sequence (opAAI_WP) instead of page program. The sst25wf-a/-b second
// sources answer with a Sanyo manufacturer byte and program normally.
func init() {
	registerVendor(80, []Descriptor{
		{Name: "sst25vf040b", ID: [6]byte{mfrSST, 0x25, 0x8d}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25vf080b", ID: [6]byte{mfrSST, 0x25, 0x8e}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25vf016b", ID: [6]byte{mfrSST, 0x25, 0x41}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25vf032b", ID: [6]byte{mfrSST, 0x25, 0x4a}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25vf064c", ID: [6]byte{mfrSST, 0x25, 0x4b}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "sst25wf512", ID: [6]byte{mfrSST, 0x25, 0x01}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25wf010", ID: [6]byte{mfrSST, 0x25, 0x02}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25wf020", ID: [6]byte{mfrSST, 0x25, 0x03}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25wf040", ID: [6]byte{mfrSST, 0x25, 0x04}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
		{Name: "sst25wf020a", ID: [6]byte{mfrSanyo, 0x16, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "sst25wf040b", ID: [6]byte{mfrSanyo, 0x16, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "sst25wf080", ID: [6]byte{mfrSST, 0x25, 0x05}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase,
			Flags: FeatureErase4K | FeatureSSTWrite},
	})
}
