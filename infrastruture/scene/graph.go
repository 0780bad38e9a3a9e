/*
Package scene provides the in-memory rendering collaborator the layout engine
emits into on the server side. It stands in for the browser renderer: objects
carry stable ids, attach order is preserved, and the whole graph can be
snapshotted into a JSON-friendly form for inspection.
*/
package scene

import (
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Shape names the primitive an object was constructed as.
type Shape string

const (
	ShapeBox    Shape = "box"
	ShapeSphere Shape = "sphere"
)

// Object is one renderable element in the graph.
// Implements layout.SceneObject.
type Object struct {
	id        uuid.UUID
	shape     Shape
	dims      layout.Dimensions
	radius    float64
	position  layout.Vec3
	rotationY float64
	color     layout.Color
	kind      layout.ElementKind
}

// ID returns the object's stable identifier.
func (o *Object) ID() uuid.UUID {
	return o.id
}

// Shape returns the primitive the object was constructed as.
func (o *Object) Shape() Shape {
	return o.shape
}

// Dimensions returns the box extents. Zero for spheres.
func (o *Object) Dimensions() layout.Dimensions {
	return o.dims
}

// Radius returns the sphere radius. Zero for boxes.
func (o *Object) Radius() float64 {
	return o.radius
}

// GetPosition returns the object's world-space position.
func (o *Object) GetPosition() layout.Vec3 {
	return o.position
}

// SetPosition moves the object in world space.
func (o *Object) SetPosition(p layout.Vec3) {
	o.position = p
}

// GetRotationY returns the object's rotation around the Y axis, in radians.
func (o *Object) GetRotationY() float64 {
	return o.rotationY
}

// SetRotationY rotates the object around the Y axis, in radians.
func (o *Object) SetRotationY(r float64) {
	o.rotationY = r
}

// GetColor returns the object's current color.
func (o *Object) GetColor() layout.Color {
	return o.color
}

// SetColor repaints the object.
func (o *Object) SetColor(c layout.Color) {
	o.color = c
}

// GetKind returns the object's kind tag.
func (o *Object) GetKind() layout.ElementKind {
	return o.kind
}

// SetKind writes the object's kind tag.
func (o *Object) SetKind(k layout.ElementKind) {
	o.kind = k
}

// Graph is an append-ordered in-memory scene.
// Implements layout.Scene. Not safe for concurrent use; callers serialize
// access the same way they do for the engine that draws into it.
type Graph struct {
	objects  []*Object
	attached mapset.Set[uuid.UUID]
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{attached: mapset.New[uuid.UUID]()}
}

// NewBox constructs a rectangular-prism object, not yet attached.
func (g *Graph) NewBox(dims layout.Dimensions, color layout.Color) layout.SceneObject {
	return &Object{id: uuid.New(), shape: ShapeBox, dims: dims, color: color}
}

// NewSphere constructs a sphere object, not yet attached.
func (g *Graph) NewSphere(radius float64, color layout.Color) layout.SceneObject {
	return &Object{id: uuid.New(), shape: ShapeSphere, radius: radius, color: color}
}

// Attach adds the object to the graph. Objects from another graph attach
// fine; attaching one twice is a no-op.
func (g *Graph) Attach(obj layout.SceneObject) {
	o, ok := obj.(*Object)
	if !ok || g.attached.Has(o.id) {
		return
	}
	g.attached.Put(o.id)
	g.objects = append(g.objects, o)
}

// Detach removes the object from the graph, preserving the order of the rest.
func (g *Graph) Detach(obj layout.SceneObject) {
	o, ok := obj.(*Object)
	if !ok || !g.attached.Has(o.id) {
		return
	}
	g.attached.Remove(o.id)
	for idx, candidate := range g.objects {
		if candidate.id == o.id {
			g.objects = append(g.objects[:idx], g.objects[idx+1:]...)
			break
		}
	}
}

// Size returns the number of attached objects.
func (g *Graph) Size() int {
	return len(g.objects)
}

// ObjectSnapshot is the JSON shape of one attached object.
type ObjectSnapshot struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Shape     string  `json:"shape"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationY float64 `json:"rotation_y"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Length    float64 `json:"length,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     string  `json:"color"`
}

// Snapshot captures every attached object in attach order.
func (g *Graph) Snapshot() []ObjectSnapshot {
	snapshots := make([]ObjectSnapshot, 0, len(g.objects))
	for _, o := range g.objects {
		snapshots = append(snapshots, ObjectSnapshot{
			ID:        o.id.String(),
			Kind:      o.kind.String(),
			Shape:     string(o.shape),
			X:         o.position.X,
			Y:         o.position.Y,
			Z:         o.position.Z,
			RotationY: o.rotationY,
			Width:     o.dims.Width,
			Height:    o.dims.Height,
			Length:    o.dims.Length,
			Radius:    o.radius,
			Color:     o.color.Hex(),
		})
	}
	return snapshots
}
