package i

import (
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/google/uuid"
)

// LayoutManager owns browser layout sessions and routes engine operations to
// the session each request names.
type LayoutManager interface {
	// CreateSession opens a fresh layout session and returns its id.
	CreateSession() (uuid.UUID, error)

	// Generate2D runs a single-floor generation in the session.
	Generate2D(sessionID uuid.UUID, p layout.Params2D) (*layout.Result, error)

	// Generate3D runs a multi-floor generation in the session.
	Generate3D(sessionID uuid.UUID, p layout.Params3D) (*layout.Result, error)

	// Elements returns the session's current elements in emission order.
	Elements(sessionID uuid.UUID) ([]layout.SceneObject, error)

	// Clear detaches everything in the session's current layout.
	Clear(sessionID uuid.UUID) error

	// Highlight paints one element of the session's layout.
	Highlight(sessionID uuid.UUID, index int) error

	// ResetColor restores one element of the session's layout.
	ResetColor(sessionID uuid.UUID, index int) error

	// Counts returns the session's wall, floor and total element counts.
	Counts(sessionID uuid.UUID) (walls, floors, total int, err error)
}
