package sim

import (
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/crystal-runner/engine/camera"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() camera.Camera {
	ctrl := camera.NewCameraController(camera.WithTarget(0, 0, 0), camera.WithRadius(1.5), camera.WithElevation(0))
	return camera.NewCamera(camera.WithController(ctrl), camera.WithViewport(800, 600))
}

func TestSpritesAvatarAtCentre(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0))

	sprites := Sprites(s.Scene(), newTestCamera())
	require.Len(t, sprites, 1)
	sp := sprites[0]
	assert.InDelta(t, 400, sp.X, 1e-2)
	assert.InDelta(t, 300, sp.Y, 1e-2)
	assert.Greater(t, sp.Radius, float32(10))
	assert.False(t, sp.Glow)
	assert.Equal(t, uint8(204), sp.Color.A, "bubble opacity 0.8")
}

func TestSpritesSkipsHiddenAvatar(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0))
	s.Character().Group().SetEnabled(false)

	assert.Empty(t, Sprites(s.Scene(), newTestCamera()))
}

func TestSpritesIncludeFlashGlow(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0))
	s.Pop()

	sprites := Sprites(s.Scene(), newTestCamera())
	var glows, droplets int
	for _, sp := range sprites {
		if sp.Glow {
			glows++
		} else {
			droplets++
		}
	}
	assert.Equal(t, 1, glows)
	assert.Equal(t, 20, droplets)
}

func TestSpritesSortedBackToFront(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(40))
	for range 5 {
		s.Step(0.05)
	}

	sprites := Sprites(s.Scene(), newTestCamera())
	require.NotEmpty(t, sprites)
	for i := 1; i < len(sprites); i++ {
		assert.GreaterOrEqual(t, sprites[i-1].Depth, sprites[i].Depth)
	}
}

func TestSpritesCullsOffscreen(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0))
	s.Character().Group().SetPosition(40, 0, 0)

	assert.Empty(t, Sprites(s.Scene(), newTestCamera()))
}

func TestShade(t *testing.T) {
	white := material.NewMaterial()

	got := Shade(white, [3]float32{}, nil, [3]float32{1, 1, 1})
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, got)

	dark := Shade(white, [3]float32{}, nil, [3]float32{0, 0, 0})
	assert.Less(t, dark.R, uint8(255))
	assert.Equal(t, dark.R, dark.G)

	red := light.NewPointLight([3]float32{1, 0, 0}, 3, 1)
	lit := Shade(white, [3]float32{}, []light.Light{red}, [3]float32{0, 0, 0})
	assert.Equal(t, uint8(255), lit.R)
	assert.Equal(t, dark.G, lit.G)

	off := light.NewPointLight([3]float32{1, 0, 0}, 3, 1, light.WithEnabled(false))
	assert.Equal(t, dark, Shade(white, [3]float32{}, []light.Light{off}, [3]float32{0, 0, 0}))
}
