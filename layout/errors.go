package layout

import "errors"

var (
	// ErrInvalidParam reports a generation request with a parameter outside
	// its allowed range. The request is rejected before any state changes.
	ErrInvalidParam = errors.New("layout: invalid parameter")

	// ErrNilScene reports an engine constructed without a rendering
	// collaborator.
	ErrNilScene = errors.New("layout: scene collaborator is required")

	// ErrIndexOutOfRange reports a highlight or reset request for an element
	// index outside the current layout.
	ErrIndexOutOfRange = errors.New("layout: element index out of range")
)
