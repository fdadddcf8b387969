package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Duration:  10 * time.Second,
		TickRate:  60,
		Width:     960,
		Height:    540,
		TrailRate: 30,
	}, s)
}

func TestLoadFlags(t *testing.T) {
	s, err := Load([]string{
		"--headless",
		"--duration=3s",
		"--tick-rate", "120",
		"--config", "fx.yaml",
		"--trail-rate=0",
		"--profile",
	})
	require.NoError(t, err)

	assert.True(t, s.Headless)
	assert.Equal(t, 3*time.Second, s.Duration)
	assert.Equal(t, 120.0, s.TickRate)
	assert.Equal(t, "fx.yaml", s.ConfigPath)
	assert.Zero(t, s.TrailRate)
	assert.True(t, s.Profile)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("BUBBLES_TRAIL_RATE", "12.5")
	t.Setenv("BUBBLES_HEADLESS", "true")
	t.Setenv("BUBBLES_WIDTH", "1280")

	s, err := Load([]string{"--width=640"})
	require.NoError(t, err)

	assert.Equal(t, 12.5, s.TrailRate)
	assert.True(t, s.Headless)
	assert.Equal(t, 640, s.Width, "explicit flag wins over the environment")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "failed to parse flags"},
		{"zero tick rate", []string{"--tick-rate=0"}, "tick-rate"},
		{"negative trail rate", []string{"--trail-rate=-1"}, "trail-rate"},
		{"zero height", []string{"--height=0"}, "window size"},
		{"zero duration", []string{"--duration=0s"}, "duration"},
		{"sub-hertz window tick rate", []string{"--tick-rate=0.5"}, "at least 1 in window mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadHeadlessAllowsSlowTickRate(t *testing.T) {
	s, err := Load([]string{"--headless", "--tick-rate=0.5"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.TickRate)
}

func TestTPS(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{60, 60},
		{59.6, 60},
		{1.4, 1},
		{0.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Settings{TickRate: tt.rate}.TPS(), "rate=%v", tt.rate)
	}
}
