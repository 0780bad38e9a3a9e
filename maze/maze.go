/*
Package maze builds rectangular 2D and stacked multi-floor lattices and carves
randomized spanning trees through them.

The grid is a flat cell arena addressed by (floor*height + row)*width + col.
Each cell precomputes its in-bounds neighbor set as a direction bitmask, and
carving opens passages by setting the matching connection bit on both sides,
so the connection relation stays symmetric and inside the neighbor set.

The package includes the depth-first backtracking walk that produces the
spanning tree, a connectivity repair pass for cells a walk left behind, and
ASCII visualization of carved floors.
*/
package maze

import (
	"fmt"
	"strings"
)

// Maze is a lattice of cells spanning one or more floors.
type Maze struct {
	Width  int    // Width is the number of columns per floor.
	Height int    // Height is the number of rows per floor.
	Floors int    // Floors is the number of stacked levels.
	Cells  []Cell // Cells is the flat arena, indexed (floor*Height + row)*Width + col.
}

// New initializes a lattice of the given dimensions with every neighbor set
// precomputed and every passage closed. A 2D maze is floors == 1.
func New(width, height, floors int) (*Maze, error) {
	if width <= 0 || height <= 0 || floors <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, floors)
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Floors: floors,
		Cells:  make([]Cell, width*height*floors),
	}
	for i := range m.Cells {
		pos := m.Position(i)
		var neighbors Direction
		for _, d := range directionOrder {
			if m.InBounds(pos.Step(d)) {
				neighbors |= d
			}
		}
		m.Cells[i].Neighbors = neighbors
	}
	return m, nil
}

// CellCount returns the total number of cells across all floors.
func (m *Maze) CellCount() int {
	return m.Width * m.Height * m.Floors
}

// InBounds reports whether the position lies inside the lattice.
func (m *Maze) InBounds(pos CellPosition) bool {
	return pos.Col >= 0 && pos.Col < m.Width &&
		pos.Row >= 0 && pos.Row < m.Height &&
		pos.Floor >= 0 && pos.Floor < m.Floors
}

// Index converts a position to its arena offset.
func (m *Maze) Index(pos CellPosition) int {
	return (pos.Floor*m.Height+pos.Row)*m.Width + pos.Col
}

// Position converts an arena offset back to a position.
func (m *Maze) Position(i int) CellPosition {
	perFloor := m.Width * m.Height
	return CellPosition{
		Col:   i % m.Width,
		Row:   (i % perFloor) / m.Width,
		Floor: i / perFloor,
	}
}

// At returns the cell at the given position. The pointer stays valid for the
// lifetime of the maze.
func (m *Maze) At(pos CellPosition) *Cell {
	return &m.Cells[m.Index(pos)]
}

// Connect opens the passage between the cell at pos and its neighbor in the
// given direction, setting the connection bit on both sides.
func (m *Maze) Connect(pos CellPosition, d Direction) error {
	if !m.InBounds(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	cell := m.At(pos)
	if !cell.HasNeighbor(d) {
		return fmt.Errorf("%w: no %s neighbor at %v", ErrNotAdjacent, d, pos)
	}

	cell.Connections |= d
	m.At(pos.Step(d)).Connections |= d.Opposite()
	return nil
}

// Connected reports whether the passage from pos in the given direction is
// open. Out-of-bounds positions have no passages.
func (m *Maze) Connected(pos CellPosition, d Direction) bool {
	if !m.InBounds(pos) {
		return false
	}
	return m.At(pos).ConnectedTo(d)
}

// VisitedCount returns the number of cells reached by walks or repairs so far.
func (m *Maze) VisitedCount() int {
	count := 0
	for i := range m.Cells {
		if m.Cells[i].Visited {
			count++
		}
	}
	return count
}

// EdgeCount returns the number of open passages. Every passage is stored as
// two half-edges, one per side.
func (m *Maze) EdgeCount() int {
	halves := 0
	for i := range m.Cells {
		halves += m.Cells[i].ConnectionCount()
	}
	return halves / 2
}

// FloorString provides a textual representation of one carved floor.
func (m *Maze) FloorString(floor int) string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Width) + "\n"

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			pos := CellPosition{Col: col, Row: row, Floor: floor}

			// Mark cells that reach through the floor plane
			switch {
			case m.Connected(pos, Up) && m.Connected(pos, Down):
				cellRow += " x "
			case m.Connected(pos, Up):
				cellRow += " u "
			case m.Connected(pos, Down):
				cellRow += " d "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if m.Connected(pos, East) {
				cellRow += " "
			} else {
				cellRow += "|"
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			if m.Connected(CellPosition{Col: col, Row: row, Floor: floor}, South) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output += wallRow + "\n"
	}

	return output
}

// String provides a textual representation of the whole maze, floor by floor.
func (m *Maze) String() string {
	if m.Floors == 1 {
		return m.FloorString(0)
	}

	var output string
	for floor := 0; floor < m.Floors; floor++ {
		output += fmt.Sprintf("Floor %d\n%s", floor, m.FloorString(floor))
	}
	return output
}
