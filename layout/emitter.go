package layout

import (
	"math"

	"github.com/TrainerHol/MakeWheel/maze"
	"github.com/zyedidia/generic/mapset"
)

// floorPlateThickness is the fixed Y extent of the plates separating two
// floors; everything else about a plate comes from the parameters.
const floorPlateThickness = 0.2

// emitter translates carved lattice state into wall and floor-plate
// segments placed in world space, centered on the origin.
type emitter struct {
	m        *maze.Maze
	p        params
	offsetX  float64
	offsetZ  float64
	seen     mapset.Set[segmentKey]
	segments []segment
}

func newEmitter(m *maze.Maze, p params) *emitter {
	return &emitter{
		m:       m,
		p:       p,
		offsetX: -float64(p.gridWidth) * p.cellLength / 2,
		offsetZ: -float64(p.gridHeight) * p.cellLength / 2,
		seen:    mapset.New[segmentKey](),
	}
}

// emit produces every wall, then every floor plate, deduplicated, scanning
// floor by floor, row by row, column by column, direction by direction.
func (e *emitter) emit() []segment {
	e.walls()
	if e.m.Floors > 1 {
		e.plates()
	}
	return e.segments
}

// add records the segment unless an equal key was already emitted. The first
// insertion for a key wins.
func (e *emitter) add(s segment) {
	key := s.key()
	if e.seen.Has(key) {
		return
	}
	e.seen.Put(key)
	e.segments = append(e.segments, s)
}

// cellCenter maps lattice coordinates to the world-space center of the cell.
func (e *emitter) cellCenter(pos maze.CellPosition) (x, z float64) {
	x = float64(pos.Col)*e.p.cellLength + e.offsetX + e.p.cellLength/2
	z = float64(pos.Row)*e.p.cellLength + e.offsetZ + e.p.cellLength/2
	return x, z
}

// walls emits one wall per closed cell side. Boundary sides never carry a
// connection bit, so the outer perimeter always closes no matter what the
// walk carved.
func (e *emitter) walls() {
	dims := Dimensions{
		Width:  e.p.wallWidth,
		Height: e.p.wallHeight,
		Length: e.p.cellLength + e.p.wallWidth, // overshoot closes the corners
	}

	for floor := 0; floor < e.m.Floors; floor++ {
		worldY := float64(floor)*e.p.wallHeight + e.p.wallHeight/2
		for row := 0; row < e.m.Height; row++ {
			for col := 0; col < e.m.Width; col++ {
				pos := maze.CellPosition{Col: col, Row: row, Floor: floor}
				cell := e.m.At(pos)
				centerX, centerZ := e.cellCenter(pos)

				for _, d := range maze.HorizontalDirections {
					if cell.ConnectedTo(d) {
						continue
					}
					e.add(segment{
						kind:      KindWall,
						position:  wallPosition(d, centerX, worldY, centerZ, e.p.cellLength),
						rotationY: wallRotation(d),
						dims:      dims,
					})
				}
			}
		}
	}
}

// plates emits one plate per cell with no passage to the cell directly
// above, sitting on the plane between the two floors.
func (e *emitter) plates() {
	dims := Dimensions{
		Width:  e.p.floorLength,
		Height: floorPlateThickness,
		Length: e.p.floorWidth,
	}

	for floor := 0; floor < e.m.Floors-1; floor++ {
		worldY := float64(floor+1) * e.p.wallHeight
		for row := 0; row < e.m.Height; row++ {
			for col := 0; col < e.m.Width; col++ {
				pos := maze.CellPosition{Col: col, Row: row, Floor: floor}
				if e.m.At(pos).ConnectedTo(maze.Up) {
					continue
				}
				centerX, centerZ := e.cellCenter(pos)
				e.add(segment{
					kind:     KindFloor,
					position: Vec3{X: centerX, Y: worldY, Z: centerZ},
					dims:     dims,
				})
			}
		}
	}
}

// wallPosition places a wall on the cell boundary the direction faces.
func wallPosition(d maze.Direction, centerX, worldY, centerZ, cellLength float64) Vec3 {
	half := cellLength / 2
	switch d {
	case maze.North:
		return Vec3{X: centerX, Y: worldY, Z: centerZ - half}
	case maze.South:
		return Vec3{X: centerX, Y: worldY, Z: centerZ + half}
	case maze.East:
		return Vec3{X: centerX + half, Y: worldY, Z: centerZ}
	default: // West
		return Vec3{X: centerX - half, Y: worldY, Z: centerZ}
	}
}

// wallRotation aligns the box's long axis with the wall's run: east and west
// walls run along Z as built, north and south walls turn a quarter around Y.
func wallRotation(d maze.Direction) float64 {
	if d == maze.North || d == maze.South {
		return math.Pi / 2
	}
	return 0
}
