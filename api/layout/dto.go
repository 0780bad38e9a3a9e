// Package layoutapi exposes maze layout generation to the browser front end.
package layoutapi

import "github.com/TrainerHol/MakeWheel/layout"

// Maze2DRequest carries the knobs for a single-floor generation.
type Maze2DRequest struct {
	CellLength float64 `json:"cell_length" binding:"required,gt=0,lte=20"`
	WallWidth  float64 `json:"wall_width" binding:"required,gt=0,lte=10"`
	WallHeight float64 `json:"wall_height" binding:"required,gt=0,lte=20"`
	GridWidth  int     `json:"grid_width" binding:"required,min=2,max=50"`
	GridHeight int     `json:"grid_height" binding:"required,min=2,max=50"`
	Seed       int64   `json:"seed"`
}

// Maze3DRequest carries the knobs for a stacked multi-floor generation. The
// grid caps are tighter than 2D because floors multiply the cell count.
type Maze3DRequest struct {
	CellLength  float64 `json:"cell_length" binding:"required,gt=0,lte=20"`
	WallWidth   float64 `json:"wall_width" binding:"required,gt=0,lte=10"`
	WallHeight  float64 `json:"wall_height" binding:"required,gt=0,lte=20"`
	GridWidth   int     `json:"grid_width" binding:"required,min=2,max=20"`
	GridHeight  int     `json:"grid_height" binding:"required,min=2,max=20"`
	Floors      int     `json:"floors" binding:"required,min=2,max=10"`
	FloorLength float64 `json:"floor_length" binding:"required,gt=0,lte=20"`
	FloorWidth  float64 `json:"floor_width" binding:"required,gt=0,lte=20"`
	Seed        int64   `json:"seed"`
}

// HighlightRequest names one element by its index in emission order. The
// index is a pointer so element zero still binds.
type HighlightRequest struct {
	Index *int `json:"index" binding:"required"`
}

// ElementResponse is one emitted element of the current layout.
type ElementResponse struct {
	Index     int     `json:"index"`
	Kind      string  `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationY float64 `json:"rotation_y"`
	Color     string  `json:"color"`
}

// LayoutResponse carries a full element snapshot with its tallies.
type LayoutResponse struct {
	Elements      []ElementResponse `json:"elements"`
	WallCount     int               `json:"wall_count"`
	FloorCount    int               `json:"floor_count"`
	TotalCount    int               `json:"total_count"`
	RepairedCells int               `json:"repaired_cells,omitempty"`
	Seed          int64             `json:"seed,omitempty"`
}

// CountsResponse carries the element tallies of the current layout.
type CountsResponse struct {
	WallCount  int `json:"wall_count"`
	FloorCount int `json:"floor_count"`
	TotalCount int `json:"total_count"`
}

// toElementResponses flattens scene elements into their wire shape, tallying
// kinds along the way.
func toElementResponses(elements []layout.SceneObject) (responses []ElementResponse, walls, floors int) {
	responses = make([]ElementResponse, 0, len(elements))
	for index, el := range elements {
		pos := el.GetPosition()
		responses = append(responses, ElementResponse{
			Index:     index,
			Kind:      el.GetKind().String(),
			X:         pos.X,
			Y:         pos.Y,
			Z:         pos.Z,
			RotationY: el.GetRotationY(),
			Color:     el.GetColor().Hex(),
		})

		switch el.GetKind() {
		case layout.KindWall:
			walls++
		case layout.KindFloor:
			floors++
		}
	}
	return responses, walls, floors
}

// toLayoutResponse flattens a generation result into its wire shape.
func toLayoutResponse(result *layout.Result) *LayoutResponse {
	elements, walls, floors := toElementResponses(result.Elements)
	return &LayoutResponse{
		Elements:      elements,
		WallCount:     walls,
		FloorCount:    floors,
		TotalCount:    len(elements),
		RepairedCells: result.RepairedCells,
		Seed:          result.Seed,
	}
}
