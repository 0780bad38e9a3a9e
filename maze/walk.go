package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"
)

// Walk carves a spanning tree over the lattice with an iterative randomized
// depth-first walk from the origin cell. The walk keeps an explicit stack
// instead of recursing, so grid size never hits a call-depth limit.
//
// The random source must be non-nil; equal sources carve equal mazes.
// Calling Walk on a maze that already has open passages extends whatever is
// there, so callers wanting a fresh tree start from a fresh maze.
func (m *Maze) Walk(rng *rand.Rand) {
	start := CellPosition{}
	m.At(start).Visited = true
	visited := 1

	frontier := stack.New[CellPosition]()
	frontier.Push(start)

	options := make([]Direction, 0, len(directionOrder))
	for frontier.Size() > 0 && visited < m.CellCount() {
		current := frontier.Peek()
		cell := m.At(current)

		options = options[:0]
		for _, d := range directionOrder {
			if cell.HasNeighbor(d) && !m.At(current.Step(d)).Visited {
				options = append(options, d)
			}
		}

		// Dead end: backtrack.
		if len(options) == 0 {
			frontier.Pop()
			continue
		}

		d := options[rng.Intn(len(options))]
		next := current.Step(d)
		_ = m.Connect(current, d)
		m.At(next).Visited = true
		visited++
		frontier.Push(next)
	}
}
