package focusgrid

import "tableflip.dev/almanac/pkg/timeutil"

// Direction is one of the four arrow movements.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Route resolves one directional movement from the given position against the
// registry. When no target cell exists the movement is a silent no-op and the
// original position is returned with moved=false.
//
// Vertical movement never leaves a block: blocks sit side by side, so up and
// down have no spatially adjacent cell in a neighboring block. Horizontal
// movement at the outer columns crosses into the neighboring block on the
// same row, which walks the displayed months as one continuous strip.
func Route(reg *Registry, from Position, dir Direction) (Position, bool) {
	var to Position
	switch dir {
	case Down:
		to = Position{Block: from.Block, Row: from.Row + 1, Col: from.Col}
	case Up:
		if from.Row == 0 {
			return from, false
		}
		to = Position{Block: from.Block, Row: from.Row - 1, Col: from.Col}
	case Right:
		if from.Col == timeutil.Columns-1 {
			to = Position{Block: from.Block + 1, Row: from.Row, Col: 0}
		} else {
			to = Position{Block: from.Block, Row: from.Row, Col: from.Col + 1}
		}
	case Left:
		if from.Col == 0 {
			to = Position{Block: from.Block - 1, Row: from.Row, Col: timeutil.Columns - 1}
		} else {
			to = Position{Block: from.Block, Row: from.Row, Col: from.Col - 1}
		}
	default:
		return from, false
	}

	if _, ok := reg.At(to); !ok {
		return from, false
	}
	return to, true
}
