package common

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSample(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	tests := []struct {
		name string
		rg   Range
	}{
		{"fixed", Fixed(0.25)},
		{"symmetric", Symmetric(0.05)},
		{"positive", Range{Min: 0.7, Max: 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.rg.Validate())
			for range 200 {
				assert.True(t, tt.rg.Contains(tt.rg.Sample(r)))
			}
		})
	}
}

func TestFixedAlwaysSamplesValue(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	rg := Fixed(-3)

	assert.Equal(t, Range{Min: -3, Max: -3}, rg)
	for range 10 {
		assert.Equal(t, float32(-3), rg.Sample(r))
	}
}

func TestRangeValidateInverted(t *testing.T) {
	err := Range{Min: 1, Max: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than max")
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(2), Coalesce(float32(2), 5))
}
