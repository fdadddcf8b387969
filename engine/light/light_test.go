package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPointLight(t *testing.T) {
	l := NewPointLight([3]float32{1, 1, 1}, 1.0, 0.5, WithPosition(1, 2, 3))

	assert.Equal(t, LightTypePoint, l.Type())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1.0), l.Intensity())
	assert.Equal(t, float32(0.5), l.Range())
	assert.Equal(t, [3]float32{1, 2, 3}, l.Position())
	assert.True(t, l.Enabled())
	assert.False(t, l.Ephemeral())
}

func TestWithHexColor(t *testing.T) {
	l := NewLight(LightTypePoint, WithHexColor(0x84f7fd))
	c := l.Color()
	assert.InDelta(t, 0x84/255.0, c[0], 1e-6)
	assert.InDelta(t, 0xf7/255.0, c[1], 1e-6)
	assert.InDelta(t, 0xfd/255.0, c[2], 1e-6)
}

func TestAttenuation(t *testing.T) {
	l := NewPointLight([3]float32{1, 1, 1}, 3, 1.5)

	assert.InDelta(t, 1.0, l.Attenuation([3]float32{0, 0, 0}), 1e-6)
	assert.InDelta(t, 0.5, l.Attenuation([3]float32{0.75, 0, 0}), 1e-6)
	assert.Zero(t, l.Attenuation([3]float32{2, 0, 0}))

	l.SetEnabled(false)
	assert.Zero(t, l.Attenuation([3]float32{0, 0, 0}))

	sun := NewLight(LightTypeDirectional, WithDirection(0, -2, 0))
	assert.Equal(t, [3]float32{0, -1, 0}, sun.Direction())
	assert.Equal(t, float32(1), sun.Attenuation([3]float32{100, 100, 100}))
}
