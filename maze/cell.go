package maze

import "math/bits"

// Direction identifies one side of a cell as a single bit so that a whole
// set of directions packs into one byte.
type Direction uint8

const (
	North Direction = 1 << iota // toward row - 1
	South                       // toward row + 1
	East                        // toward col + 1
	West                        // toward col - 1
	Up                          // toward floor + 1
	Down                        // toward floor - 1
)

// directionOrder fixes the order direction sets are scanned in. Map
// iteration would reshuffle seeded walks between runs.
var directionOrder = [...]Direction{North, South, East, West, Up, Down}

// HorizontalDirections lists the four directions that stay on one floor, in
// scan order.
var HorizontalDirections = directionOrder[:4]

// Deltas maps each direction to its coordinate offset.
var Deltas = map[Direction]CellPosition{
	North: {Row: -1},
	South: {Row: 1},
	East:  {Col: 1},
	West:  {Col: -1},
	Up:    {Floor: 1},
	Down:  {Floor: -1},
}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return 0
	}
}

// String names the direction for logs and error messages.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Cell is a single lattice position. The zero value is a cell with no
// neighbors, no open passages and not yet reached by a walk.
type Cell struct {
	Neighbors   Direction // sides with an in-bounds cell behind them, precomputed at construction
	Connections Direction // open passages, always a subset of Neighbors
	Visited     bool      // set once a walk or repair pass reaches the cell
}

// HasNeighbor returns true if an in-bounds cell exists in the given direction.
func (c *Cell) HasNeighbor(d Direction) bool {
	return c.Neighbors&d != 0
}

// ConnectedTo returns true if the passage in the given direction is open.
func (c *Cell) ConnectedTo(d Direction) bool {
	return c.Connections&d != 0
}

// ConnectionCount returns the number of open passages on the cell.
func (c *Cell) ConnectionCount() int {
	return bits.OnesCount8(uint8(c.Connections))
}

// CellPosition addresses a cell by column, row and floor.
type CellPosition struct {
	Col   int // Col is the x index, increasing eastward.
	Row   int // Row is the y index, increasing southward.
	Floor int // Floor is the level index, increasing upward.
}

// Step returns the position one cell away in the given direction.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := Deltas[d]
	return CellPosition{Col: p.Col + delta.Col, Row: p.Row + delta.Row, Floor: p.Floor + delta.Floor}
}

// ManhattanTo returns the grid-walk distance between two positions.
func (p CellPosition) ManhattanTo(o CellPosition) int {
	return abs(p.Col-o.Col) + abs(p.Row-o.Row) + abs(p.Floor-o.Floor)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
