package layout

import "fmt"

// registry owns every element currently attached to the scene and runs the
// two-state highlight color machine over them. Elements are addressed by
// their index in emission order.
type registry struct {
	scene      Scene
	elements   []SceneObject
	wallCount  int
	floorCount int
}

// attach hands the element to the scene and starts tracking it.
func (r *registry) attach(obj SceneObject) {
	r.scene.Attach(obj)
	r.elements = append(r.elements, obj)
	switch obj.GetKind() {
	case KindWall:
		r.wallCount++
	case KindFloor:
		r.floorCount++
	}
}

// Clear detaches every tracked element from the scene and resets the
// registry to empty.
func (r *registry) Clear() {
	for _, obj := range r.elements {
		r.scene.Detach(obj)
	}
	r.elements = nil
	r.wallCount = 0
	r.floorCount = 0
}

// Elements returns the tracked elements in emission order. The slice is
// owned by the registry and valid until the next generation or Clear.
func (r *registry) Elements() []SceneObject {
	return r.elements
}

// WallCount returns the number of attached wall elements.
func (r *registry) WallCount() int {
	return r.wallCount
}

// FloorCount returns the number of attached floor-plate elements.
func (r *registry) FloorCount() int {
	return r.floorCount
}

// TotalCount returns the number of attached elements of any kind.
func (r *registry) TotalCount() int {
	return len(r.elements)
}

// Highlight paints the element at the index with its kind's highlight color.
func (r *registry) Highlight(index int) error {
	obj, err := r.at(index)
	if err != nil {
		return err
	}
	obj.SetColor(obj.GetKind().HighlightColor())
	return nil
}

// ResetColor restores the element at the index to its kind's base color.
func (r *registry) ResetColor(index int) error {
	obj, err := r.at(index)
	if err != nil {
		return err
	}
	obj.SetColor(obj.GetKind().BaseColor())
	return nil
}

func (r *registry) at(index int) (SceneObject, error) {
	if index < 0 || index >= len(r.elements) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(r.elements))
	}
	return r.elements[index], nil
}
