//go:build !no_misc

package spinor

// Manufacturers with no vendor gate of their own: they share the no_misc
// tag and are compiled in unless it is set.
func init() {
	// ESMT.
	registerVendor(25, []Descriptor{
		{Name: "f25l32pa", ID: [6]byte{mfrESMT, 0x20, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
	// Everspin MRAM: no ID, no erase cycle, no fast read.
	registerVendor(26, []Descriptor{
		{Name: "mr25h256", IDLen: 0,
			SectorSize: 32 * 1024, NSectors: 1, PageSize: 256, AddrWidth: 2, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
		{Name: "mr25h10", IDLen: 0,
			SectorSize: 128 * 1024, NSectors: 1, PageSize: 256, AddrWidth: 3, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
	})
	// Fujitsu FRAM.
	registerVendor(27, []Descriptor{
		{Name: "mb85rs1mt", ID: [6]byte{mfrFujitsu, 0x7f, 0x27}, IDLen: 3,
			SectorSize: 128 * 1024, NSectors: 1, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureNoErase},
	})
	// Intel/Numonyx -- xxxs33b.
	registerVendor(35, []Descriptor{
		{Name: "160s33b", ID: [6]byte{mfrIntel, 0x89, 0x11}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "320s33b", ID: [6]byte{mfrIntel, 0x89, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "640s33b", ID: [6]byte{mfrIntel, 0x89, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
	})
	// PMC. The Pm25LV parts predate JEDEC IDs and use their own 4K erase
	// opcode; Pm25LQ032 is a JEDEC part behind the 0x7f continuation code.
	registerVendor(65, []Descriptor{
		{Name: "pm25lv512", IDLen: 0,
			SectorSize: 32 * 1024, NSectors: 2, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4KPMC},
		{Name: "pm25lv010", IDLen: 0,
			SectorSize: 32 * 1024, NSectors: 4, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4KPMC},
		{Name: "pm25lq032", ID: [6]byte{0x7f, mfrISSI, 0x46}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
	// Catalyst / On Semiconductor -- non-JEDEC.
	registerVendor(110, []Descriptor{
		{Name: "cat25c11", IDLen: 0,
			SectorSize: 16, NSectors: 8, PageSize: 16, AddrWidth: 1, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
		{Name: "cat25c03", IDLen: 0,
			SectorSize: 32, NSectors: 8, PageSize: 16, AddrWidth: 2, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
		{Name: "cat25c09", IDLen: 0,
			SectorSize: 128, NSectors: 8, PageSize: 32, AddrWidth: 2, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
		{Name: "cat25c17", IDLen: 0,
			SectorSize: 256, NSectors: 8, PageSize: 32, AddrWidth: 2, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
		{Name: "cat25128", IDLen: 0,
			SectorSize: 2048, NSectors: 8, PageSize: 64, AddrWidth: 2, ReadModes: ReadModeBase,
			Flags: FeatureNoErase | FeatureNoFastRead},
	})
}
