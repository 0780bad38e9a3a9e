/*
Package layout turns carved mazes into world-space building elements.

The engine owns the full pipeline for one layout: validate the request, tear
down whatever the previous run attached, build and carve a fresh lattice,
anchor any stragglers, emit deduplicated wall and floor-plate segments, and
hand the resulting elements to the rendering collaborator together with a
center marker. One engine serves one layout at a time; regeneration always
replaces everything.

Rendering itself stays behind the Scene interface. The engine only asks the
collaborator for box and sphere primitives and attaches or detaches them, so
any display that can draw those can sit on the other side.
*/
package layout

import (
	"math/rand"
	"time"

	"github.com/TrainerHol/MakeWheel/maze"
)

// markerRadius is the size of the sphere dropped at the world origin so the
// layout's center is findable in the housing tool.
const markerRadius = 0.5

// Engine drives maze generation for one layout and owns the elements it
// attaches. Not safe for concurrent use; callers serialize access.
type Engine struct {
	registry

	reporter      CountReporter
	repairedCells int
	lastSeed      int64
}

// New wires an engine to its rendering collaborator. The count reporter is
// optional; passing nil just silences count updates.
func New(scene Scene, reporter CountReporter) (*Engine, error) {
	if scene == nil {
		return nil, ErrNilScene
	}
	return &Engine{registry: registry{scene: scene}, reporter: reporter}, nil
}

// Result is the outcome of one generation pass.
type Result struct {
	// Elements in emission order: walls, then floor plates, then the center
	// marker. Indexes into this slice address highlight and reset requests.
	Elements []SceneObject

	WallCount  int
	FloorCount int

	// RepairedCells is how many cells the connectivity repair had to anchor.
	// Zero on every healthy run; anything else deserves a loud log line.
	RepairedCells int

	// Seed is the randomness the run used. Feeding it back reproduces the
	// layout exactly.
	Seed int64
}

// Generate2D builds a fresh single-floor maze layout.
func (e *Engine) Generate2D(p Params2D) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return e.generate(params{
		cellLength: p.CellLength,
		wallWidth:  p.WallWidth,
		wallHeight: p.WallHeight,
		gridWidth:  p.GridWidth,
		gridHeight: p.GridHeight,
		floors:     1,
		seed:       p.Seed,
	})
}

// Generate3D builds a fresh stacked multi-floor maze layout.
func (e *Engine) Generate3D(p Params3D) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return e.generate(params{
		cellLength:  p.CellLength,
		wallWidth:   p.WallWidth,
		wallHeight:  p.WallHeight,
		gridWidth:   p.GridWidth,
		gridHeight:  p.GridHeight,
		floors:      p.Floors,
		floorLength: p.FloorLength,
		floorWidth:  p.FloorWidth,
		seed:        p.Seed,
	})
}

// generate runs the pipeline on already-validated parameters: teardown,
// build, walk, repair, emit, marker, one final dedup over the combined list,
// then attach and report. Validation happens before the teardown, so a
// rejected request never reaches this and the previous layout survives it.
func (e *Engine) generate(p params) (*Result, error) {
	e.Clear()

	m, err := maze.New(p.gridWidth, p.gridHeight, p.floors)
	if err != nil {
		return nil, err
	}

	seed := p.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.Walk(rand.New(rand.NewSource(seed)))
	repaired := m.Repair()

	segments := newEmitter(m, p).emit()
	segments = append(segments, segment{kind: KindMarker, position: Vec3{}})
	segments = dedupSegments(segments)

	for _, s := range segments {
		var obj SceneObject
		if s.kind == KindMarker {
			obj = e.scene.NewSphere(markerRadius, s.kind.BaseColor())
		} else {
			obj = e.scene.NewBox(s.dims, s.kind.BaseColor())
		}
		obj.SetPosition(s.position)
		obj.SetRotationY(s.rotationY)
		obj.SetKind(s.kind)
		e.attach(obj)
	}

	e.repairedCells = repaired
	e.lastSeed = seed
	e.reportCounts()

	return &Result{
		Elements:      e.elements,
		WallCount:     e.wallCount,
		FloorCount:    e.floorCount,
		RepairedCells: repaired,
		Seed:          seed,
	}, nil
}

// RepairedCells returns how many cells the last generation had to anchor
// after its walk.
func (e *Engine) RepairedCells() int {
	return e.repairedCells
}

// LastSeed returns the seed the last generation ran with.
func (e *Engine) LastSeed() int64 {
	return e.lastSeed
}

// reportCounts pushes the current tallies to the reporter when one is wired.
func (e *Engine) reportCounts() {
	if e.reporter == nil {
		return
	}
	e.reporter.ReportCounts(e.wallCount, e.floorCount, e.TotalCount())
}
