package maze

// Repair anchors every cell a walk left unvisited. For each one, in arena
// order, it scans the whole lattice for the nearest visited cell by Manhattan
// distance (first match wins on ties), opens the passage toward it when the
// two are adjacent, and marks the cell visited so later cells in the scan can
// chain onto it. An anchor further than one step away cannot be expressed as
// a lattice passage; such a cell is only marked visited.
//
// Returns the number of cells it had to anchor. A fully carved maze yields 0;
// anything else means the walk terminated early and callers should complain
// loudly. The extra passages can close short cycles, so the carved graph is
// no longer guaranteed to be a tree once Repair has fired.
func (m *Maze) Repair() int {
	repaired := 0
	for i := range m.Cells {
		if m.Cells[i].Visited {
			continue
		}

		pos := m.Position(i)
		nearest, found := m.nearestVisited(pos)
		if !found {
			// Nothing is visited yet, so there is nothing to anchor to.
			continue
		}

		if d, adjacent := directionBetween(pos, nearest); adjacent {
			_ = m.Connect(pos, d)
		}
		m.Cells[i].Visited = true
		repaired++
	}
	return repaired
}

// nearestVisited scans the entire arena for the visited cell closest to pos.
func (m *Maze) nearestVisited(pos CellPosition) (CellPosition, bool) {
	var nearest CellPosition
	found := false
	best := 0

	for i := range m.Cells {
		if !m.Cells[i].Visited {
			continue
		}
		candidate := m.Position(i)
		if dist := pos.ManhattanTo(candidate); !found || dist < best {
			nearest = candidate
			best = dist
			found = true
		}
	}
	return nearest, found
}

// directionBetween returns the direction from one position to another when
// they are exactly one step apart.
func directionBetween(from, to CellPosition) (Direction, bool) {
	for _, d := range directionOrder {
		if from.Step(d) == to {
			return d, true
		}
	}
	return 0, false
}
