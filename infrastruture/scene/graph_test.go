package scene

import (
	"encoding/json"
	"testing"

	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAttachDetach(t *testing.T) {
	g := NewGraph()

	box := g.NewBox(layout.Dimensions{Width: 1, Height: 6, Length: 5}, 0x808080)
	sphere := g.NewSphere(0.5, 0x00ff00)

	t.Run("construction does not attach", func(t *testing.T) {
		assert.Zero(t, g.Size())
	})

	t.Run("attach preserves order", func(t *testing.T) {
		g.Attach(box)
		g.Attach(sphere)

		snaps := g.Snapshot()
		require.Len(t, snaps, 2)
		assert.Equal(t, "box", snaps[0].Shape)
		assert.Equal(t, "sphere", snaps[1].Shape)
	})

	t.Run("double attach is a no-op", func(t *testing.T) {
		g.Attach(box)
		assert.Equal(t, 2, g.Size())
	})

	t.Run("detach removes only the target", func(t *testing.T) {
		g.Detach(box)
		assert.Equal(t, 1, g.Size())

		snaps := g.Snapshot()
		require.Len(t, snaps, 1)
		assert.Equal(t, "sphere", snaps[0].Shape)
	})

	t.Run("detaching a stranger is a no-op", func(t *testing.T) {
		g.Detach(box)
		assert.Equal(t, 1, g.Size())
	})
}

func TestObjectAccessors(t *testing.T) {
	g := NewGraph()
	obj := g.NewBox(layout.Dimensions{Width: 1, Height: 2, Length: 3}, 0x123456)

	obj.SetPosition(layout.Vec3{X: 1, Y: 2, Z: 3})
	obj.SetRotationY(1.5)
	obj.SetKind(layout.KindWall)

	assert.Equal(t, layout.Vec3{X: 1, Y: 2, Z: 3}, obj.GetPosition())
	assert.Equal(t, 1.5, obj.GetRotationY())
	assert.Equal(t, layout.Color(0x123456), obj.GetColor())
	assert.Equal(t, layout.KindWall, obj.GetKind())

	obj.SetColor(0x654321)
	assert.Equal(t, layout.Color(0x654321), obj.GetColor())
}

func TestObjectIDsAreUnique(t *testing.T) {
	g := NewGraph()
	a := g.NewBox(layout.Dimensions{}, 0).(*Object)
	b := g.NewBox(layout.Dimensions{}, 0).(*Object)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSnapshotRoundTripsAsJSON(t *testing.T) {
	g := NewGraph()

	box := g.NewBox(layout.Dimensions{Width: 1, Height: 6, Length: 5}, 0x808080)
	box.SetPosition(layout.Vec3{X: 2, Y: 3, Z: -2})
	box.SetKind(layout.KindWall)
	g.Attach(box)

	marker := g.NewSphere(0.5, layout.KindMarker.BaseColor())
	marker.SetKind(layout.KindMarker)
	g.Attach(marker)

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var decoded []ObjectSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "wall", decoded[0].Kind)
	assert.Equal(t, 2.0, decoded[0].X)
	assert.Equal(t, "#808080", decoded[0].Color)
	assert.Equal(t, "marker", decoded[1].Kind)
	assert.Equal(t, 0.5, decoded[1].Radius)
}

// The graph has to satisfy the engine's collaborator contract.
func TestGraphDrivesEngine(t *testing.T) {
	g := NewGraph()
	engine, err := layout.New(g, nil)
	require.NoError(t, err)

	result, err := engine.Generate2D(layout.Params2D{
		CellLength: 4, WallWidth: 1, WallHeight: 6,
		GridWidth: 2, GridHeight: 2, Seed: 13,
	})
	require.NoError(t, err)

	assert.Equal(t, len(result.Elements), g.Size())
	assert.Len(t, g.Snapshot(), 10)

	engine.Clear()
	assert.Zero(t, g.Size())
	assert.Empty(t, g.Snapshot())
}
