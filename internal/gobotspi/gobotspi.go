// Package gobotspi adapts a gobot.io/x/gobot/v2/drivers/spi.Connection
// into spinor.Transport, so the core can be driven by any Gobot-supported
// SPI adaptor (Raspberry Pi sysfs, etc.) instead of only the in-memory
// simulator. Grounded on other_examples' 25AA1024 EEPROM driver, which
// shows the same ReadCommandData/WriteBytes shape this adapter wraps.
package gobotspi

import (
	"context"
	"fmt"
	"sync"

	"gobot.io/x/gobot/v2/drivers/spi"

	"spinor"
)

// connOps is the subset of spi.Connection this adapter needs. Gobot's
// sysfs and bit-bang adaptors both implement it.
type connOps interface {
	ReadCommandData(command []byte, data []byte) error
	WriteBytes(data []byte) error
}

// Transport implements spinor.Transport over a Gobot SPI connection. It
// carries no opinion about host read/write lane capability beyond what
// the caller declares at construction, since Gobot's spi.Connection
// interface exposes only byte-oriented single-lane transfers.
type Transport struct {
	conn connOps
	mu   sync.Mutex

	modeRx  spinor.ReadMode
	modeTx  spinor.WriteMode
	maxSize uint32
}

// New wraps conn. modeRx/modeTx declare which read/write lane widths the
// underlying adaptor and board wiring actually support; most sysfs SPI
// adaptors are single-lane only, so callers typically pass
// spinor.ReadModeBase and spinor.WriteModeSingleByte.
func New(conn spi.Connection, modeRx spinor.ReadMode, modeTx spinor.WriteMode, maxWriteSize uint32) *Transport {
	return &Transport{conn: conn, modeRx: modeRx, modeTx: modeTx, maxSize: maxWriteSize}
}

func (t *Transport) Claim(ctx context.Context) error {
	t.mu.Lock()
	return nil
}

func (t *Transport) Release() {
	t.mu.Unlock()
}

func (t *Transport) ModeRx() spinor.ReadMode  { return t.modeRx }
func (t *Transport) ModeTx() spinor.WriteMode { return t.modeTx }
func (t *Transport) MaxWriteSize() uint32     { return t.maxSize }

// MemoryMap is never available over a Gobot sysfs SPI connection: there is
// no XIP window behind a userspace spidev handle.
func (t *Transport) MemoryMap() (uintptr, uint64, bool) { return 0, 0, false }

func (t *Transport) ReadMMAP(ctx context.Context, offset uint64, dst []byte) error {
	return fmt.Errorf("gobotspi: no memory-mapped window")
}

// WriteThenRead clocks cmd out, then either clocks dataOut out (program,
// erase, register write) or clocks dataIn in (read, register read),
// matching the 25AA1024 driver's Transfer split between WriteBytes and
// ReadCommandData.
func (t *Transport) WriteThenRead(ctx context.Context, cmd []byte, dataOut, dataIn []byte, flags spinor.TransferFlag) error {
	if len(dataIn) > 0 {
		return t.conn.ReadCommandData(cmd, dataIn)
	}
	if len(dataOut) > 0 {
		return t.conn.WriteBytes(append(append([]byte(nil), cmd...), dataOut...))
	}
	return t.conn.WriteBytes(cmd)
}
