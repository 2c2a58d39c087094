package spinor

// Manufacturer IDs: the first byte of the RDID response.
const (
	mfrAtmel      = 0x1f
	mfrMacronix   = 0xc2
	mfrMicron     = 0x20 // ST Micro <-> Micron
	mfrSpansion   = 0x01
	mfrSST        = 0xbf
	mfrWinbond    = 0xef
	mfrEon        = 0x1c
	mfrGigaDevice = 0xc8
	mfrISSI       = 0x9d // shared with PMC's Pm25LQ parts (0x7f continuation prefix)
	mfrFujitsu    = 0x04
	mfrESMT       = 0x8c
	mfrIntel      = 0x89 // Intel/Numonyx xxxs33b
	mfrSanyo      = 0x62 // second-source sst25wf-a/-b parts
)

// Opcodes. Nomenclature: opFunction_x_y_z names the number of I/O lines
// used for opcode/address/data respectively, where it matters.
const (
	opWRDI          = 0x04 // Write disable
	opWREN          = 0x06 // Write enable
	opRDSR          = 0x05 // Read status register
	opWRSR          = 0x01 // Write status register (1 or 2 bytes)
	opREAD          = 0x03 // Read data bytes (low frequency)
	opREAD_FAST     = 0x0b // Read data bytes (high frequency)
	opREAD_1_1_2    = 0x3b // Read data bytes (dual SPI)
	opREAD_1_1_2_IO = 0xbb
	opREAD_1_1_4    = 0x6b // Read data bytes (quad SPI)
	opREAD_1_1_4_IO = 0xeb
	opBRWR          = 0x17 // Bank register write (Spansion)
	opBRRD          = 0x16 // Bank register read (Spansion)
	opWREAR         = 0xc5 // Write extended address register
	opRDEAR         = 0xc8 // Read extended address register
	opPP            = 0x02 // Page program (up to 256 bytes)
	opQPP           = 0x32 // Quad page program
	opBE_4K         = 0x20 // Erase 4KiB block
	opBE_4K_PMC     = 0xd7 // Erase 4KiB block on PMC chips
	opBE_32K        = 0x52 // Erase 32KiB block
	opCHIP_ERASE    = 0xc7 // Erase whole flash chip
	opSE            = 0xd8 // Sector erase (usually 64KiB)
	opRDID          = 0x9f // Read JEDEC ID
	opRDCR          = 0x35 // Read configuration register
	opRDFSR         = 0x70 // Read flag status register

	// SST only.
	opBP     = 0x02 // Byte program (same encoding as PP)
	opAAI_WP = 0xad // Auto address-increment word program

	// Micron only.
	opRD_EVCR = 0x65
	opWR_EVCR = 0x61
)

// Status register bits.
const (
	srWIP  = 1 << 0 // Write in progress
	srWEL  = 1 << 1 // Write enable latch
	srBP0  = 1 << 2 // Block protect 0
	srBP1  = 1 << 3 // Block protect 1
	srBP2  = 1 << 4 // Block protect 2
	srSRWD = 1 << 7 // SR write protect

	srQuadEnMX = 1 << 6 // Macronix quad I/O enable
)

// Enhanced Volatile Configuration Register bits (Micron). The quad bit
// is active-low: set means quad I/O disabled.
const evcrQuadEnMicron = 1 << 7

// Flag Status Register bits.
const fsrReady = 1 << 7

// Configuration register bits.
const crQuadEnSpan = 1 << 1 // Spansion / Winbond quad I/O enable

// 16 MiB is the reach of a 3-byte address.
const bank16MiB = 1 << 24

// Max command buffer size for a register write: opcode + up to 3 address
// bytes used by BAR-style register sequences.
const maxCmdSize = 4
