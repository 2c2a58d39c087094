package spinor

import "context"

// Chip binds a Transport to its scanned state and façade, giving callers
// a single handle for the lifetime of a probed device. This is the type
// cmd/spinorsh drives directly; MTD/ChipState remain usable standalone
// for callers that manage the two separately.
type Chip struct {
	Transport Transport
	State     *ChipState
	MTD       *MTD
}

// Probe scans t, applies the requested dual-die topology, and returns a
// ready-to-use Chip. dual may be DualSingle for ordinary boards.
func Probe(ctx context.Context, t Transport, dual DualMode) (*Chip, error) {
	cs, err := Scan(ctx, t)
	if err != nil {
		return nil, err
	}
	if dual != DualSingle {
		if err := Configure(cs, dual); err != nil {
			return nil, err
		}
	}
	return &Chip{
		Transport: t,
		State:     cs,
		MTD:       NewMTD(t, cs),
	}, nil
}

func (c *Chip) ReadAt(ctx context.Context, offset uint64, dst []byte) error {
	return ReadAt(ctx, c.Transport, c.State, offset, dst)
}

func (c *Chip) ProgramAt(ctx context.Context, offset uint64, src []byte) error {
	return ProgramAt(ctx, c.Transport, c.State, offset, src)
}

func (c *Chip) Erase(ctx context.Context, req *EraseRequest) error {
	return Erase(ctx, c.Transport, c.State, req)
}

func (c *Chip) Lock(ctx context.Context, offset, length uint64) error {
	return Lock(ctx, c.Transport, c.State, offset, length)
}

func (c *Chip) Unlock(ctx context.Context, offset, length uint64) error {
	return Unlock(ctx, c.Transport, c.State, offset, length)
}

func (c *Chip) IsLocked(ctx context.Context, offset, length uint64) (bool, error) {
	return IsLocked(ctx, c.Transport, c.State, offset, length)
}

// Info is the set of fields the CLI's `info` command prints.
type Info struct {
	Name      string
	PageSize  uint32
	EraseSize uint32
	TotalSize uint64
	ReadMode  ReadMode
	Dual      DualMode
}

func (c *Chip) Info() Info {
	return Info{
		Name:      c.MTD.Name,
		PageSize:  c.State.PageSize,
		EraseSize: c.State.EraseSize,
		TotalSize: c.State.TotalSize,
		ReadMode:  c.State.ReadMode,
		Dual:      c.State.Dual,
	}
}
