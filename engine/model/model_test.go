package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphere(t *testing.T) {
	s := NewSphere(0.12, 32, 32, WithName("bubble"))

	assert.Equal(t, "bubble", s.Name())
	assert.Equal(t, ShapeSphere, s.Shape())
	assert.Equal(t, float32(0.12), s.Radius())
	assert.Equal(t, float32(0.12), s.BoundingRadius())

	w, h := s.Segments()
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)
	require.Len(t, s.Vertices(), 33*33)

	// two pole rows contribute one triangle per segment, the rest two
	assert.Len(t, s.Indices(), (32*32*2-2*32)*3)

	for _, v := range s.Vertices() {
		p := v.Position
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		assert.InDelta(t, 0.12, r, 1e-5)
	}
	for _, idx := range s.Indices() {
		assert.Less(t, int(idx), len(s.Vertices()))
	}
}

func TestNewSphereClampsSegments(t *testing.T) {
	s := NewSphere(1, 0, 0)
	w, h := s.Segments()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestNewModelComputesBoundingRadius(t *testing.T) {
	m := NewModel(WithVertices([]Vertex{
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 3, 4}},
	}))
	assert.InDelta(t, 5, m.BoundingRadius(), 1e-6)
	assert.Equal(t, ShapeCustom, m.Shape())
}
