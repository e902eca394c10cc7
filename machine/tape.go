package machine

import (
	"iter"
	"maps"
	"slices"
)

// Cell is a single tape cell. Arithmetic on it wraps modulo 2^CELL_BITS.
type Cell uint32

// Width of a Cell, in bits.
const CELL_BITS = 32

// Tape is sparse memory addressed by a signed data pointer.
// Addresses never written read as zero and take no storage.
type Tape struct {
	cells map[int]Cell
}

// Read returns the cell at addr.
func (tp *Tape) Read(addr int) Cell {
	return tp.cells[addr]
}

// Write stores value at addr. A written zero stays stored.
func (tp *Tape) Write(addr int, value Cell) {
	if tp.cells == nil {
		tp.cells = map[int]Cell{}
	}
	tp.cells[addr] = value
}

// Len returns the number of stored cells.
func (tp *Tape) Len() int {
	return len(tp.cells)
}

// Cells iterates over the stored cells in address order.
func (tp *Tape) Cells() iter.Seq2[int, Cell] {
	return func(yield func(addr int, value Cell) bool) {
		for _, addr := range slices.Sorted(maps.Keys(tp.cells)) {
			if !yield(addr, tp.cells[addr]) {
				return
			}
		}
	}
}

// Reset forgets every stored cell.
func (tp *Tape) Reset() {
	clear(tp.cells)
}
