//go:build !no_stmicro

package spinor

// Micron N25Q series (Micron absorbed Numonyx, which had absorbed ST's
// flash line -- all share manufacturer byte 0x20). The 512 Mbit and
// larger parts report readiness through the flag status register rather
// than status register WIP alone. They also speak the EVCR quad-enable
// handshake (quad.go).
func init() {
	registerVendor(60, []Descriptor{
		{Name: "n25q032", ID: [6]byte{mfrMicron, 0xba, 0x16}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 64, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "n25q064", ID: [6]byte{mfrMicron, 0xba, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "n25q064a", ID: [6]byte{mfrMicron, 0xbb, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "n25q128a11", ID: [6]byte{mfrMicron, 0xbb, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "n25q128a13", ID: [6]byte{mfrMicron, 0xba, 0x18}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 256, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram},
		{Name: "n25q256a", ID: [6]byte{mfrMicron, 0xba, 0x19}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 512, PageSize: 256, ReadModes: ReadModeFull, Flags: FeatureQuadProgram | FeatureErase4K},
		{Name: "n25q512a", ID: [6]byte{mfrMicron, 0xbb, 0x20}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K | FeatureUseFlagStatus},
		{Name: "n25q512ax3", ID: [6]byte{mfrMicron, 0xba, 0x20}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K | FeatureUseFlagStatus},
		{Name: "n25q00", ID: [6]byte{mfrMicron, 0xba, 0x21}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 2048, PageSize: 256, ReadModes: ReadModeFull,
			Flags: FeatureQuadProgram | FeatureErase4K | FeatureUseFlagStatus},
	})
}
