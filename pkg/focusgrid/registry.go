// Package focusgrid tracks the focusable day cells of the displayed month
// blocks and routes directional movement between them.
package focusgrid

import (
	"time"

	"tableflip.dev/almanac/pkg/timeutil"
)

// Position addresses one cell: a block index plus a (row, col) within that
// block's grid of up to 6 rows by 7 columns.
type Position struct {
	Block int
	Row   int
	Col   int
}

// Cell is one focusable day slot registered by the rendering host.
type Cell struct {
	Date time.Time
}

// Registry is the host-owned lookup of focusable cells per block. The host
// repopulates it whenever the rendered blocks change; the router only reads
// it. Padding positions are simply never registered, so lookups there report
// no target rather than an error.
type Registry struct {
	blocks []map[Position]Cell
}

// NewRegistry prepares a registry for the given number of blocks.
func NewRegistry(blocks int) *Registry {
	r := &Registry{}
	r.Reset(blocks)
	return r
}

// Reset drops every cell and resizes the registry to blocks.
func (r *Registry) Reset(blocks int) {
	if blocks < 0 {
		blocks = 0
	}
	r.blocks = make([]map[Position]Cell, blocks)
	for i := range r.blocks {
		r.blocks[i] = make(map[Position]Cell)
	}
}

// Blocks returns the number of registered blocks.
func (r *Registry) Blocks() int { return len(r.blocks) }

// Register records a focusable cell. Registrations outside the known blocks
// or the 6x7 grid are discarded.
func (r *Registry) Register(pos Position, cell Cell) {
	if pos.Block < 0 || pos.Block >= len(r.blocks) {
		return
	}
	if pos.Row < 0 || pos.Row >= timeutil.MaxRows || pos.Col < 0 || pos.Col >= timeutil.Columns {
		return
	}
	r.blocks[pos.Block][pos] = cell
}

// At looks up the cell at pos, reporting whether one exists.
func (r *Registry) At(pos Position) (Cell, bool) {
	if pos.Block < 0 || pos.Block >= len(r.blocks) {
		return Cell{}, false
	}
	cell, ok := r.blocks[pos.Block][pos]
	return cell, ok
}

// PositionOf finds the registered position holding the given date.
func (r *Registry) PositionOf(date time.Time) (Position, bool) {
	want := timeutil.DateOnly(date)
	for _, cells := range r.blocks {
		for pos, cell := range cells {
			if timeutil.DateOnly(cell.Date).Equal(want) {
				return pos, true
			}
		}
	}
	return Position{}, false
}
