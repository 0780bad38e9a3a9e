package i

import "github.com/TrainerHol/MakeWheel/layout"

// LayoutEngine is the maze-layout generator one session owns. Engines are
// not safe for concurrent use; the session manager serializes access.
type LayoutEngine interface {
	// Generate2D builds a fresh single-floor layout, replacing the previous one.
	Generate2D(p layout.Params2D) (*layout.Result, error)

	// Generate3D builds a fresh multi-floor layout, replacing the previous one.
	Generate3D(p layout.Params3D) (*layout.Result, error)

	// Clear detaches every element of the current layout.
	Clear()

	// Elements returns the current layout's elements in emission order.
	Elements() []layout.SceneObject

	// Highlight paints the element at the index with its highlight color.
	Highlight(index int) error

	// ResetColor restores the element at the index to its base color.
	ResetColor(index int) error

	// WallCount returns the number of wall elements in the current layout.
	WallCount() int

	// FloorCount returns the number of floor-plate elements in the current layout.
	FloorCount() int

	// TotalCount returns the number of elements of any kind in the current layout.
	TotalCount() int
}
