package bubble

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/crystal-runner/engine/clock"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

func TestNewCharacter(t *testing.T) {
	c := NewCharacter()

	group := c.Group()
	require.NotNil(t, group)
	require.Len(t, group.Children(), 1)
	assert.Same(t, c.Mesh(), group.Children()[0])
	assert.Same(t, c.Light(), group.Light())

	mesh := c.Mesh()
	assert.True(t, mesh.IsMesh())
	assert.True(t, mesh.CastShadow())
	assert.Equal(t, model.ShapeSphere, mesh.Model().Shape())
	assert.InDelta(t, 0.12, mesh.Model().Radius(), 1e-6)
	w, h := mesh.Model().Segments()
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)

	mat := c.Material()
	assert.Same(t, mat, mesh.Material())
	assert.Equal(t, material.MaterialKindPhysical, mat.Kind())
	assert.Equal(t, [3]float32{1, 1, 1}, mat.Color())
	assert.True(t, mat.Transparent())
	assert.InDelta(t, 0.8, mat.Opacity(), 1e-6)
	assert.InDelta(t, 0.1, mat.Metalness(), 1e-6)
	assert.InDelta(t, 0.05, mat.Roughness(), 1e-6)
	assert.InDelta(t, 0.95, mat.Transmission(), 1e-6)
	assert.InDelta(t, 0.02, mat.Thickness(), 1e-6)
	assert.InDelta(t, 1.0, mat.Clearcoat(), 1e-6)
	assert.InDelta(t, 0.1, mat.ClearcoatRoughness(), 1e-6)
	assert.InDelta(t, 1.0, mat.Iridescence(), 1e-6)
	assert.InDelta(t, 1.3, mat.IridescenceIOR(), 1e-6)
	assert.InDelta(t, 2.0, mat.EnvMapIntensity(), 1e-6)

	l := c.Light()
	require.NotNil(t, l)
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.InDelta(t, 1.0, l.Intensity(), 1e-6)
	assert.InDelta(t, 0.5, l.Range(), 1e-6)
}

func TestNewCharacterOptions(t *testing.T) {
	c := NewCharacter(WithCharacterName("player"), WithCharacterPosition(0.5, 0, -1), WithoutLight())

	assert.Equal(t, "player", c.Group().Name())
	x, _, z := c.Group().Position()
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(-1), z)
	assert.Nil(t, c.Light())
	assert.Nil(t, c.Group().Light())
}

func TestNewCharacterEmptyNameKeepsDefault(t *testing.T) {
	c := NewCharacter(WithCharacterName(""))
	assert.Equal(t, "bubble", c.Group().Name())
	assert.Equal(t, "bubble-mesh", c.Mesh().Name())
}

func TestNewCharacterInvalidConfigPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Character.Radius = 0
	assert.Panics(t, func() { NewCharacter(WithCharacterConfig(cfg)) })
}

func TestUpdateMovesTowardTarget(t *testing.T) {
	c := NewCharacter()

	x := c.Update(clock.NewAt(0, frame), 1, 0)
	assert.InDelta(t, 0.2, x, 1e-5)

	gx, _, _ := c.Group().Position()
	assert.Equal(t, x, gx)
}

func TestUpdateAnimation(t *testing.T) {
	c := NewCharacter()
	const elapsed = 1.3

	c.Update(clock.NewAt(elapsed, frame), 1, 0)

	_, y, _ := c.Group().Position()
	assert.InDelta(t, math.Sin(elapsed*3)*0.02, y, 1e-6)

	rx, ry, rz := c.Group().Rotation()
	assert.Zero(t, rx)
	assert.InDelta(t, 0.1+float64(frame)*0.5, ry, 1e-5)
	assert.InDelta(t, 0.3, rz, 1e-6)

	sx, sy, sz := c.Group().Scale()
	assert.InDelta(t, 1+math.Sin(elapsed*5)*0.03, sx, 1e-6)
	assert.InDelta(t, 1+math.Sin(elapsed*4.5)*0.02, sy, 1e-6)
	assert.InDelta(t, 1+math.Sin(elapsed*4.2)*0.025, sz, 1e-6)
}

func TestUpdateRollIsUnclamped(t *testing.T) {
	c := NewCharacter()
	c.Update(clock.NewAt(0, frame), 10, 0)

	_, _, rz := c.Group().Rotation()
	assert.InDelta(t, 3.0, rz, 1e-5)
}

func TestUpdateLightHue(t *testing.T) {
	c := NewCharacter()

	c.Update(clock.NewAt(0, frame), 0, 0)
	assert.InDeltaSlice(t, []float32{0.85, 0.15, 0.15}, colorSlice(c.Light().Color()), 1e-4)

	// Hue wraps every 5 seconds at the default rate.
	c.Update(clock.NewAt(5, frame), 0, 0)
	assert.InDeltaSlice(t, []float32{0.85, 0.15, 0.15}, colorSlice(c.Light().Color()), 1e-4)

	// A third of a turn lands on green.
	c.Update(clock.NewAt(5.0/3.0, frame), 0, 0)
	got := c.Light().Color()
	assert.Greater(t, got[1], got[0])
	assert.Greater(t, got[1], got[2])
}

func TestUpdateWithoutLight(t *testing.T) {
	c := NewCharacter(WithoutLight())
	assert.NotPanics(t, func() {
		c.Update(clock.NewAt(1, frame), 1, 0)
	})
}

func TestUpdateIsDeterministic(t *testing.T) {
	a := NewCharacter()
	b := NewCharacter()
	clk := clock.NewAt(2.5, frame)

	xa := a.Update(clk, 0.7, -0.2)
	xb := b.Update(clk, 0.7, -0.2)

	assert.Equal(t, xa, xb)
	if diff := cmp.Diff(a.Group().Transform(), b.Group().Transform()); diff != "" {
		t.Errorf("transform mismatch (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Light().Color(), b.Light().Color())
}

func TestUpdateDoesNotAdvanceClock(t *testing.T) {
	c := NewCharacter()
	clk := clock.NewAt(3, frame)

	c.Update(clk, 1, 0)
	assert.Equal(t, float32(3), clk.Elapsed())
	assert.Equal(t, frame, clk.Delta())
}

func TestUpdateFollowsPerCall(t *testing.T) {
	for _, dt := range []float32{0, 1.0 / 120.0, frame, 1.0 / 30.0} {
		c := NewCharacter()

		x := c.Update(clock.NewAt(0, dt), 1, 0)
		assert.InDelta(t, 0.2, x, 1e-6, "dt=%v", dt)

		_, ry, rz := c.Group().Rotation()
		assert.InDelta(t, 0.1+float64(dt)*0.5, ry, 1e-6, "dt=%v", dt)
		assert.InDelta(t, 0.3, rz, 1e-6, "dt=%v", dt)
	}
}

func frameRateIndependentConfig() Config {
	cfg := DefaultConfig()
	cfg.FrameRateIndependent = true
	return cfg
}

func TestUpdateIsFrameRateIndependent(t *testing.T) {
	coarse := NewCharacter(WithCharacterConfig(frameRateIndependentConfig()))
	fine := NewCharacter(WithCharacterConfig(frameRateIndependentConfig()))

	x := coarse.Update(clock.NewAt(0, frame), 1, 0)
	assert.InDelta(t, 0.2, x, 1e-5)

	half := frame / 2
	y := fine.Update(clock.NewAt(0, half), 1, 0)
	y = fine.Update(clock.NewAt(half, half), 1, y)

	assert.InDelta(t, x, y, 1e-5)
}

func TestUpdateFrameRateIndependentScalesWithDelta(t *testing.T) {
	c := NewCharacter(WithCharacterConfig(frameRateIndependentConfig()))

	x := c.Update(clock.NewAt(0, 1.0/30.0), 1, 0)
	assert.InDelta(t, 0.36, x, 1e-5)

	_, ry, _ := c.Group().Rotation()
	assert.InDelta(t, 0.2+0.5/30.0, ry, 1e-5)
}

func TestUpdateFrameRateIndependentZeroDelta(t *testing.T) {
	c := NewCharacter(WithCharacterConfig(frameRateIndependentConfig()))

	x := c.Update(clock.NewAt(1, 0), 1, 0)
	assert.Zero(t, x)

	_, ry, rz := c.Group().Rotation()
	assert.Zero(t, ry)
	assert.InDelta(t, 0.3, rz, 1e-6)
}

func TestReset(t *testing.T) {
	c := NewCharacter()
	mat := c.Material()
	mat.SetOpacity(0.1)
	mat.SetEmissive(1, 0, 0)
	mat.SetEmissiveIntensity(5)

	c.Reset()
	assert.InDelta(t, 0.8, mat.Opacity(), 1e-6)
	assert.Equal(t, [3]float32{1, 1, 1}, mat.Emissive())
	assert.InDelta(t, 0.2, mat.EmissiveIntensity(), 1e-6)

	c.Reset()
	assert.InDelta(t, 0.8, mat.Opacity(), 1e-6)
	assert.InDelta(t, 0.2, mat.EmissiveIntensity(), 1e-6)
}

func colorSlice(c [3]float32) []float32 {
	return c[:]
}
