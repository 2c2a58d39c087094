package spinor

import "sync"

// A catalogue entry compiles in under a vendor build tag (identity_*.go);
// registerVendor lets each vendor file contribute its entries without
// depending on cross-file init() ordering. priority fixes the walk order
// (and so which entry wins when two entries share an ID prefix)
// independent of which files the build includes.
type vendorBlock struct {
	priority int
	entries  []Descriptor
}

var vendorBlocks []vendorBlock

func registerVendor(priority int, entries []Descriptor) {
	vendorBlocks = append(vendorBlocks, vendorBlock{priority, entries})
}

var (
	tableOnce sync.Once
	table     []Descriptor
)

func catalogue() []Descriptor {
	tableOnce.Do(func() {
		blocks := append([]vendorBlock(nil), vendorBlocks...)
		// Simple insertion sort: vendor file count is small and fixed.
		for i := 1; i < len(blocks); i++ {
			for j := i; j > 0 && blocks[j].priority < blocks[j-1].priority; j-- {
				blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
			}
		}
		for _, b := range blocks {
			table = append(table, b.entries...)
		}
	})
	return table
}

// lookup walks the identity table in order, comparing the first id_len
// bytes of the RDID response against each entry's prefix. The first match
// wins; id_len == 0 entries (no-ID CAT25-class parts) are never matched
// here, callers identify those out of band via ScanNamed.
func lookup(id [6]byte) (*Descriptor, bool) {
	cat := catalogue()
	for i := range cat {
		e := &cat[i]
		if e.IDLen == 0 {
			continue
		}
		if e.ID == id || matchPrefix(e.ID[:e.IDLen], id[:e.IDLen]) {
			return e, true
		}
	}
	return nil, false
}

// DescriptorByName returns the catalogue entry with the given name.
// Non-JEDEC parts (IDLen 0) can only be bound this way; see ScanNamed.
func DescriptorByName(name string) (*Descriptor, bool) {
	cat := catalogue()
	for i := range cat {
		if cat[i].Name == name {
			return &cat[i], true
		}
	}
	return nil, false
}

func matchPrefix(want, got []byte) bool {
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

// pageSizeFor applies the Spansion extended-JEDEC 0x4d00 tie-break:
// page size is 512 bytes for 0x4d00 parts, except base IDs 0x0215 and
// 0x0216 which remain 256.
func pageSizeFor(d *Descriptor) uint16 {
	if d.IDLen >= 5 && d.JEDECExt() == 0x4d00 {
		if id := d.JEDECID(); id != 0x0215 && id != 0x0216 {
			return 512
		}
	}
	if d.PageSize != 0 {
		return d.PageSize
	}
	return 256
}
