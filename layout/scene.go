package layout

import "fmt"

// Vec3 is a position in world space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Dimensions describes a rectangular prism. Width spans the X axis, Height
// the Y axis and Length the Z axis before any rotation is applied.
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
}

// Color is a packed 0xRRGGBB value.
type Color uint32

// Hex formats the color the way style sheets write it.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// ElementKind tags every emitted element. The highlight machinery dispatches
// on this tag, so the set is closed.
type ElementKind uint8

const (
	KindWall ElementKind = iota
	KindFloor
	KindMarker
	kindCount
)

// baseColors and highlightColors are the per-kind color tables the highlight
// state machine flips between.
var (
	baseColors = [kindCount]Color{
		KindWall:   0x808080,
		KindFloor:  0x654321,
		KindMarker: 0x00ff00,
	}
	highlightColors = [kindCount]Color{
		KindWall:   0xffff00,
		KindFloor:  0xffa500,
		KindMarker: 0xff00ff,
	}
)

// BaseColor returns the color elements of this kind are created with.
func (k ElementKind) BaseColor() Color {
	return baseColors[k]
}

// HighlightColor returns the color elements of this kind flip to while
// highlighted.
func (k ElementKind) HighlightColor() Color {
	return highlightColors[k]
}

// String names the kind for logs and snapshots.
func (k ElementKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// SceneObject is a single renderable element handed out by the scene
// collaborator. The engine writes the kind tag once at creation and reads it
// back for highlight dispatch.
type SceneObject interface {
	// GetPosition returns the element's world-space position.
	GetPosition() Vec3

	// SetPosition moves the element in world space.
	SetPosition(Vec3)

	// GetRotationY returns the element's rotation around the Y axis, in radians.
	GetRotationY() float64

	// SetRotationY rotates the element around the Y axis, in radians.
	SetRotationY(float64)

	// GetColor returns the element's current color.
	GetColor() Color

	// SetColor repaints the element.
	SetColor(Color)

	// GetKind returns the element's kind tag.
	GetKind() ElementKind

	// SetKind writes the element's kind tag.
	SetKind(ElementKind)
}

// Scene is the rendering collaborator the engine emits into. Implementations
// own the actual display; the engine only needs primitives, attach and detach.
type Scene interface {
	// NewBox constructs a rectangular-prism element with the given dimensions
	// and color, not yet attached.
	NewBox(dims Dimensions, color Color) SceneObject

	// NewSphere constructs a sphere element with the given radius and color,
	// not yet attached.
	NewSphere(radius float64, color Color) SceneObject

	// Attach adds the element to the scene.
	Attach(SceneObject)

	// Detach removes the element from the scene.
	Detach(SceneObject)
}

// CountReporter receives the element tallies after every generation. The
// reporter is cosmetic and optional; the engine tolerates its absence.
type CountReporter interface {
	ReportCounts(walls, floors, total int)
}
