package layout

import "fmt"

// Allowed parameter ranges. Grid sides are capped tighter in 3D because the
// repair scan is quadratic in cell count and floors multiply it.
const (
	maxCellLength  = 20.0
	maxWallWidth   = 10.0
	maxWallHeight  = 20.0
	minGridSide    = 2
	maxGridSide2D  = 50
	maxGridSide3D  = 20
	minFloors      = 2
	maxFloors      = 10
	maxFloorLength = 20.0
	maxFloorWidth  = 20.0
)

// Params2D are the knobs for a single-floor generation. Seed 0 draws fresh
// entropy per call; any other value reproduces the same layout exactly.
type Params2D struct {
	CellLength float64
	WallWidth  float64
	WallHeight float64
	GridWidth  int
	GridHeight int
	Seed       int64
}

// Validate checks every knob against its allowed range. It touches no state,
// so a rejected request leaves any previous layout intact.
func (p Params2D) Validate() error {
	if err := checkPositiveMax("cellLength", p.CellLength, maxCellLength); err != nil {
		return err
	}
	if err := checkPositiveMax("wallWidth", p.WallWidth, maxWallWidth); err != nil {
		return err
	}
	if err := checkPositiveMax("wallHeight", p.WallHeight, maxWallHeight); err != nil {
		return err
	}
	if err := checkIntRange("gridWidth", p.GridWidth, minGridSide, maxGridSide2D); err != nil {
		return err
	}
	return checkIntRange("gridHeight", p.GridHeight, minGridSide, maxGridSide2D)
}

// Params3D are the knobs for a stacked multi-floor generation.
type Params3D struct {
	CellLength  float64
	WallWidth   float64
	WallHeight  float64
	GridWidth   int
	GridHeight  int
	Floors      int
	FloorLength float64
	FloorWidth  float64
	Seed        int64
}

// Validate checks every knob against its allowed range, including the
// tighter 3D grid caps. It touches no state.
func (p Params3D) Validate() error {
	if err := checkPositiveMax("cellLength", p.CellLength, maxCellLength); err != nil {
		return err
	}
	if err := checkPositiveMax("wallWidth", p.WallWidth, maxWallWidth); err != nil {
		return err
	}
	if err := checkPositiveMax("wallHeight", p.WallHeight, maxWallHeight); err != nil {
		return err
	}
	if err := checkIntRange("gridWidth", p.GridWidth, minGridSide, maxGridSide3D); err != nil {
		return err
	}
	if err := checkIntRange("gridHeight", p.GridHeight, minGridSide, maxGridSide3D); err != nil {
		return err
	}
	if err := checkIntRange("floors", p.Floors, minFloors, maxFloors); err != nil {
		return err
	}
	if err := checkPositiveMax("floorLength", p.FloorLength, maxFloorLength); err != nil {
		return err
	}
	return checkPositiveMax("floorWidth", p.FloorWidth, maxFloorWidth)
}

// params is the engine's unified parameter set; a 2D request is floors == 1
// with the plate dimensions unused.
type params struct {
	cellLength  float64
	wallWidth   float64
	wallHeight  float64
	gridWidth   int
	gridHeight  int
	floors      int
	floorLength float64
	floorWidth  float64
	seed        int64
}

func checkPositiveMax(field string, v, max float64) error {
	if v <= 0 || v > max {
		return fmt.Errorf("%w: %s must be in (0, %g], got %g", ErrInvalidParam, field, max, v)
	}
	return nil
}

func checkIntRange(field string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be in [%d, %d], got %d", ErrInvalidParam, field, min, max, v)
	}
	return nil
}
