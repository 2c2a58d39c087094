package spinor

import "context"

// TransferFlag marks framing/capability bits on a single Transport
// transaction: operation bracketing, memory-mapped mode switches, and
// the stacked-die select.
type TransferFlag uint8

const (
	// FlagBegin marks the first phase of a logical operation; the
	// transport should assert chip-select / claim the bus.
	FlagBegin TransferFlag = 1 << iota
	// FlagEnd marks the last phase; the transport should release the
	// bus after this transfer.
	FlagEnd
	// FlagMMAP requests memory-mapped (XIP) mode instead of an opcode
	// transaction.
	FlagMMAP
	// FlagMMAPEnd leaves memory-mapped mode.
	FlagMMAPEnd
	// FlagUPage selects the upper die under DualStacked topology.
	FlagUPage
)

// Transport is the host-controller contract the core consumes. It is
// specified, not implemented, by this module: implementations live in a
// driver-framework layer (see internal/gobotspi and internal/simflash for
// two concrete bindings used by tests, the CLI, and real Gobot-backed SPI
// adaptors).
type Transport interface {
	// Claim acquires exclusive ownership of the bus for the duration of
	// a logical operation.
	Claim(ctx context.Context) error
	// Release returns the bus.
	Release()

	// WriteThenRead issues a single transaction: opcode (and any
	// address/dummy bytes already encoded into it) is clocked out from
	// cmd, then dataOut is clocked out (if non-nil) or dataIn is clocked
	// in (if non-nil). Exactly one of dataOut/dataIn should be non-nil
	// for any given call; both nil is a register probe with no data
	// phase. flags carries FlagBegin/FlagEnd framing and FlagUPage die
	// selection.
	WriteThenRead(ctx context.Context, cmd []byte, dataOut, dataIn []byte, flags TransferFlag) error

	// ModeRx/ModeTx report the read/write lane widths the host
	// controller supports, as ReadMode/WriteMode bitmasks respectively
	// (ModeTx uses the low two WriteMode bits only).
	ModeRx() ReadMode
	ModeTx() WriteMode

	// MemoryMap returns the virtual base address and size of an XIP read
	// window and true if one is configured, else (0, 0, false). Scan
	// rejects a window whose size differs from the device size.
	MemoryMap() (base uintptr, size uint64, ok bool)
	// MaxWriteSize returns a host-imposed cap on bytes per program
	// transaction (0 means unbounded).
	MaxWriteSize() uint32

	// ReadMMAP copies len(dst) bytes from the memory-mapped window
	// starting at the given byte offset into dst. The core calls it with
	// the bus claimed and issues no FlagMMAP/FlagMMAPEnd transactions
	// around it; entering and leaving memory-mapped mode is up to the
	// implementation.
	ReadMMAP(ctx context.Context, offset uint64, dst []byte) error
}
