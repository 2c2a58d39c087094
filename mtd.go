package spinor

import "context"

// MTD is the façade NewMTD builds for a scanned device: the fixed fields
// a host-side block layer or CLI shell needs, plus the operation hooks.
// It wraps a *ChipState and Transport so callers don't have to thread
// both through separately.
type MTD struct {
	Name         string
	Type         string
	WriteSize    uint32
	WriteBufSize uint32
	EraseSize    uint32
	Size         uint64
	Flags        Feature

	cs *ChipState
	t  Transport
}

// NewMTD builds the façade for an already-scanned device. Callers that
// need dual-die topology must call Configure on cs before NewMTD, since
// TotalSize/EraseSize/WriteBufSize are snapshotted here.
func NewMTD(t Transport, cs *ChipState) *MTD {
	name := "unknown"
	var flags Feature
	if cs.Descriptor != nil {
		name = cs.Descriptor.Name
		flags = cs.Descriptor.Flags
	}
	return &MTD{
		Name:         name,
		Type:         "nor",
		WriteSize:    1,
		WriteBufSize: cs.WriteBufSize,
		EraseSize:    cs.EraseSize,
		Size:         cs.TotalSize,
		Flags:        flags,
		cs:           cs,
		t:            t,
	}
}

func (m *MTD) Read(ctx context.Context, offset uint64, dst []byte) error {
	return ReadAt(ctx, m.t, m.cs, offset, dst)
}

func (m *MTD) Write(ctx context.Context, offset uint64, src []byte) error {
	return ProgramAt(ctx, m.t, m.cs, offset, src)
}

func (m *MTD) Erase(ctx context.Context, req *EraseRequest) error {
	return Erase(ctx, m.t, m.cs, req)
}

func (m *MTD) Lock(ctx context.Context, offset, length uint64) error {
	return Lock(ctx, m.t, m.cs, offset, length)
}

func (m *MTD) Unlock(ctx context.Context, offset, length uint64) error {
	return Unlock(ctx, m.t, m.cs, offset, length)
}

func (m *MTD) IsLocked(ctx context.Context, offset, length uint64) (bool, error) {
	return IsLocked(ctx, m.t, m.cs, offset, length)
}

// State exposes the underlying ChipState for callers that want geometry
// fields MTD doesn't surface directly.
func (m *MTD) State() *ChipState { return m.cs }
