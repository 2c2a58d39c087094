//go:build !no_spansion

package spinor

// Spansion/Cypress -- single (large) sector size only, at least for the
// chips listed here (without boot sectors).
//
// Extended-JEDEC parts with ext ID 0x4d00 use 512-byte pages except base
// IDs 0x0215/0x0216; identity.go's pageSizeFor applies that tie-break
// over the 256 recorded here. The s25fl-k parts at the bottom are
// Winbond second sources and answer with Winbond IDs; the Winbond block
// walks first, so its names win for those IDs.
func init() {
	registerVendor(75, []Descriptor{
		{Name: "s25sl032p", ID: [6]byte{mfrSpansion, 0x02, 0x15, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull},
		{Name: "s25sl064p", ID: [6]byte{mfrSpansion, 0x02, 0x16, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull},
		{Name: "s25fl256s0", ID: [6]byte{mfrSpansion, 0x02, 0x19, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25fl256s1", ID: [6]byte{mfrSpansion, 0x02, 0x19, 0x4d, 0x01}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeFull},
		{Name: "s25fl512s", ID: [6]byte{mfrSpansion, 0x02, 0x20, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull},
		{Name: "s25fl512s1", ID: [6]byte{mfrSpansion, 0x02, 0x20, 0x4d, 0x01}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25fl512s2", ID: [6]byte{mfrSpansion, 0x02, 0x20, 0x4f, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s70fl01gs", ID: [6]byte{mfrSpansion, 0x02, 0x21, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25sl12800", ID: [6]byte{mfrSpansion, 0x20, 0x18, 0x03, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25sl12801", ID: [6]byte{mfrSpansion, 0x20, 0x18, 0x03, 0x01}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25fl128s", ID: [6]byte{mfrSpansion, 0x20, 0x18, 0x4d, 0x01, 0x80}, IDLen: 6,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25fl129p0", ID: [6]byte{mfrSpansion, 0x20, 0x18, 0x4d, 0x00}, IDLen: 5,
			SectorSize: 256 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25fl129p1", ID: [6]byte{mfrSpansion, 0x20, 0x18, 0x4d, 0x01}, IDLen: 5,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "s25sl004a", ID: [6]byte{mfrSpansion, 0x02, 0x12}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "s25sl008a", ID: [6]byte{mfrSpansion, 0x02, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "s25sl016a", ID: [6]byte{mfrSpansion, 0x02, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "s25sl032a", ID: [6]byte{mfrSpansion, 0x02, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "s25sl064a", ID: [6]byte{mfrSpansion, 0x02, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase},
		{Name: "s25fl008k", ID: [6]byte{mfrWinbond, 0x40, 0x14}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 16, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "s25fl016k", ID: [6]byte{mfrWinbond, 0x40, 0x15}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 32, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "s25fl064k", ID: [6]byte{mfrWinbond, 0x40, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "s25fl132k", ID: [6]byte{mfrSpansion, 0x40, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "s25fl164k", ID: [6]byte{mfrSpansion, 0x40, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
		{Name: "s25fl204k", ID: [6]byte{mfrSpansion, 0x40, 0x13}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 8, PageSize: 256, ReadModes: ReadModeBase, Flags: FeatureErase4K},
	})
}
