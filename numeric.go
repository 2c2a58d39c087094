package spinor

import "golang.org/x/exp/constraints"

// clampMin returns the smaller of a and b. The read and program engines
// use it for chunk-size arithmetic (page boundary, bank boundary from
// route's remainInBank, MaxWriteSize, remaining buffer length).
func clampMin[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
