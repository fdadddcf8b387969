package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	assert.False(t, obj.Ephemeral())
	assert.False(t, obj.IsMesh())
	sx, sy, sz := obj.Scale()
	assert.Equal(t, [3]float32{1, 1, 1}, [3]float32{sx, sy, sz})
	assert.Nil(t, obj.Parent())
	assert.Empty(t, obj.Children())
}

func TestNewMesh(t *testing.T) {
	mesh := NewMesh(model.NewSphere(0.02, 8, 8), material.NewMaterial(), WithEphemeral(true), WithCastShadow(true))

	assert.True(t, mesh.IsMesh())
	assert.True(t, mesh.Ephemeral())
	assert.True(t, mesh.CastShadow())
}

func TestChildrenAndReparenting(t *testing.T) {
	a := NewGameObject(WithName("a"))
	b := NewGameObject(WithName("b"))
	child := NewGameObject(WithName("child"))

	a.AddChild(child)
	require.Len(t, a.Children(), 1)
	assert.Same(t, a, child.Parent())

	b.AddChild(child)
	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Same(t, b, child.Parent())

	b.RemoveChild(child)
	assert.Empty(t, b.Children())
	assert.Nil(t, child.Parent())

	a.AddChild(a)
	assert.Empty(t, a.Children())
}

func TestWorldPositionComposesParents(t *testing.T) {
	child := NewGameObject(WithPosition(0, 1, 0))
	group := NewGameObject(WithPosition(2, 0, 0), WithScale(2, 2, 2), WithChildren(child))

	assert.InDeltaSlice(t, []float32{2, 2, 0}, toSlice(child.WorldPosition()), 1e-6)

	group.SetPosition(0, 0, 0)
	assert.InDeltaSlice(t, []float32{0, 2, 0}, toSlice(child.WorldPosition()), 1e-6)
}

func TestWalkVisitsParentsFirst(t *testing.T) {
	l := light.NewPointLight([3]float32{1, 1, 1}, 1, 0.5)
	leaf := NewGameObject(WithName("leaf"), WithLight(l))
	mid := NewGameObject(WithName("mid"), WithChildren(leaf))
	root := NewGameObject(WithName("root"), WithChildren(mid))

	var names []string
	root.Walk(func(obj GameObject) bool {
		names = append(names, obj.Name())
		return true
	})
	assert.Equal(t, []string{"root", "mid", "leaf"}, names)

	names = nil
	root.Walk(func(obj GameObject) bool {
		names = append(names, obj.Name())
		return obj.Name() != "mid"
	})
	assert.Equal(t, []string{"root", "mid"}, names)
	assert.Same(t, l, leaf.Light())
}

func toSlice(v [3]float32) []float32 {
	return v[:]
}
