// Package simflash is an in-memory JEDEC SPI NOR simulator implementing
// spinor.Transport. It exists so the core and cmd/spinorsh can be
// exercised without real hardware. XIP reads are served from a real
// anonymous mmap region (golang.org/x/sys/unix.Mmap), kept in sync with
// the backing array, so ReadMMAP callers see genuine memory-mapped
// semantics rather than a plain slice copy.
package simflash

import (
	"context"
	"sync"

	"golang.org/x/sys/unix"

	"spinor"
)

// Part describes the simulated device's identity and geometry: enough
// of spinor.Descriptor's fields for Scan to recognize it via a real
// RDID round trip.
type Part struct {
	ID         [6]byte
	IDLen      int
	SectorSize uint32
	NSectors   uint16
	PageSize   uint16
	AddrWidth  int // address bytes per array command; 0 means 3
	ReadModes  spinor.ReadMode
	WriteModes spinor.WriteMode
	MaxWrite   uint32
	XIP        bool
}

// Flash is a simulated flash chip plus its register file.
type Flash struct {
	mu sync.Mutex

	part Part
	data []byte

	mmap []byte

	sr   byte
	cr   byte
	evcr byte
	bar  byte // extended address / bank register, shared by both opcode pairs

	wel       bool
	busyTicks int
	claimed   bool

	aaiAddr uint64 // SST auto-address-increment pointer, set by the first AAI_WP of a run
}

// New allocates a Flash of part.SectorSize*part.NSectors bytes, erased
// (all 0xFF) as real NOR powers up.
func New(part Part) *Flash {
	size := uint64(part.SectorSize) * uint64(part.NSectors)
	f := &Flash{part: part, data: make([]byte, size)}
	for i := range f.data {
		f.data[i] = 0xff
	}
	if part.XIP {
		m, err := unix.Mmap(-1, 0, len(f.data), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
		if err == nil {
			copy(m, f.data)
			f.mmap = m
		}
	}
	return f
}

// Close releases the mmap region, if one was allocated.
func (f *Flash) Close() error {
	if f.mmap != nil {
		err := unix.Munmap(f.mmap)
		f.mmap = nil
		return err
	}
	return nil
}

func (f *Flash) Claim(ctx context.Context) error {
	f.mu.Lock()
	f.claimed = true
	return nil
}

func (f *Flash) Release() {
	f.claimed = false
	f.mu.Unlock()
}

func (f *Flash) ModeRx() spinor.ReadMode  { return f.part.ReadModes }
func (f *Flash) ModeTx() spinor.WriteMode { return f.part.WriteModes }
func (f *Flash) MaxWriteSize() uint32     { return f.part.MaxWrite }

func (f *Flash) MemoryMap() (uintptr, uint64, bool) {
	if f.mmap == nil {
		return 0, 0, false
	}
	// A nonzero sentinel base; ReadMMAP ignores it and reads the region
	// directly.
	return uintptr(1), uint64(len(f.mmap)), true
}

// ReadMMAP runs with the bus already claimed, so it must not retake the
// claim mutex.
func (f *Flash) ReadMMAP(ctx context.Context, offset uint64, dst []byte) error {
	if offset+uint64(len(dst)) > uint64(len(f.mmap)) {
		return spinor.ErrInvalidArgument
	}
	copy(dst, f.mmap[offset:offset+uint64(len(dst))])
	return nil
}

// addrFromCmd decodes a big-endian address of the given width starting
// at cmd[1], mirroring address.go's encodeAddress.
func addrFromCmd(cmd []byte, width int) uint32 {
	var a uint32
	for i := 0; i < width; i++ {
		a = a<<8 | uint32(cmd[1+i])
	}
	return a
}

func (f *Flash) WriteThenRead(ctx context.Context, cmd []byte, dataOut, dataIn []byte, flags spinor.TransferFlag) error {
	if len(cmd) == 0 {
		return spinor.ErrInvalidArgument
	}
	op := cmd[0]

	switch op {
	case 0x9f: // RDID
		n := copy(dataIn, f.part.ID[:])
		for i := n; i < len(dataIn); i++ {
			dataIn[i] = 0
		}
		return nil
	case 0x05: // RDSR
		if f.busyTicks > 0 {
			f.busyTicks--
		}
		sr := f.sr
		if f.busyTicks > 0 {
			sr |= 1 // WIP
		}
		if len(dataIn) > 0 {
			dataIn[0] = sr
		}
		return nil
	case 0x70: // RDFSR
		if len(dataIn) > 0 {
			dataIn[0] = 0x80 // always ready once WIP clears
		}
		return nil
	case 0x06: // WREN
		f.wel = true
		return nil
	case 0x04: // WRDI
		f.wel = false
		return nil
	case 0x01: // WRSR
		if len(dataOut) > 0 {
			f.sr = dataOut[0]
		}
		if len(dataOut) > 1 {
			f.cr = dataOut[1]
		}
		f.wel = false
		return nil
	case 0x35: // RDCR
		if len(dataIn) > 0 {
			dataIn[0] = f.cr
		}
		return nil
	case 0x65: // RD_EVCR
		if len(dataIn) > 0 {
			dataIn[0] = f.evcr
		}
		return nil
	case 0x61: // WR_EVCR
		if len(dataOut) > 0 {
			f.evcr = dataOut[0]
		}
		return nil
	case 0x16, 0xc8: // BRRD, RDEAR
		if len(dataIn) > 0 {
			dataIn[0] = f.bar
		}
		return nil
	case 0x17, 0xc5: // BRWR, WREAR
		if len(dataOut) > 0 {
			f.bar = dataOut[0]
		}
		return nil
	}

	// Array commands: the address occupies the part's address width;
	// anything after it in cmd is dummy bytes and is ignored.
	addrWidth := f.part.AddrWidth
	if addrWidth == 0 {
		addrWidth = 3
	}
	if len(cmd) < 1+addrWidth {
		addrWidth = len(cmd) - 1
	}

	switch op {
	case 0x03, 0x0b, 0x3b, 0xbb, 0x6b, 0xeb: // the READ family
		base := uint64(addrFromCmd(cmd, addrWidth)) + uint64(f.bar)<<24
		if base+uint64(len(dataIn)) > uint64(len(f.data)) {
			return spinor.ErrInvalidArgument
		}
		copy(dataIn, f.data[base:base+uint64(len(dataIn))])
		return nil
	case 0xad: // AAI_WP: address phase only on the first word of a run
		if !f.wel {
			return spinor.ErrIO
		}
		var base uint64
		if len(cmd) > 1 {
			base = uint64(addrFromCmd(cmd, addrWidth)) + uint64(f.bar)<<24
		} else {
			base = f.aaiAddr
		}
		if base+uint64(len(dataOut)) > uint64(len(f.data)) {
			return spinor.ErrInvalidArgument
		}
		for i, b := range dataOut {
			f.data[int(base)+i] &= b
		}
		if f.mmap != nil {
			copy(f.mmap[base:], f.data[base:base+uint64(len(dataOut))])
		}
		f.aaiAddr = base + uint64(len(dataOut))
		f.busyTicks = 2
		return nil
	case 0x02, 0x32: // PP, QPP
		if !f.wel {
			return spinor.ErrIO
		}
		base := uint64(addrFromCmd(cmd, addrWidth)) + uint64(f.bar)<<24
		if base+uint64(len(dataOut)) > uint64(len(f.data)) {
			return spinor.ErrInvalidArgument
		}
		for i, b := range dataOut {
			f.data[int(base)+i] &= b
		}
		if f.mmap != nil {
			copy(f.mmap[base:], f.data[base:base+uint64(len(dataOut))])
		}
		f.busyTicks = 2
		return nil
	case 0x20, 0xd7, 0x52, 0xd8: // BE_4K, BE_4K_PMC, BE_32K, SE
		if !f.wel {
			return spinor.ErrIO
		}
		size := eraseSizeForOpcode(op)
		base := uint64(addrFromCmd(cmd, addrWidth)) + uint64(f.bar)<<24
		if base+size > uint64(len(f.data)) {
			return spinor.ErrInvalidArgument
		}
		for i := uint64(0); i < size; i++ {
			f.data[base+i] = 0xff
		}
		if f.mmap != nil {
			copy(f.mmap[base:base+size], f.data[base:base+size])
		}
		f.busyTicks = 2
		return nil
	case 0xc7: // CHIP_ERASE
		if !f.wel {
			return spinor.ErrIO
		}
		for i := range f.data {
			f.data[i] = 0xff
		}
		if f.mmap != nil {
			copy(f.mmap, f.data)
		}
		f.busyTicks = 3
		return nil
	}
	return spinor.ErrInvalidArgument
}

func eraseSizeForOpcode(op byte) uint64 {
	switch op {
	case 0x20, 0xd7:
		return 4 * 1024
	case 0x52:
		return 32 * 1024
	default:
		return 64 * 1024
	}
}
