package bubble

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfigEmptyYieldsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	doc := []byte(`
particle_fade: 0.25
character:
  follow_rate: 0.5
trail:
  life: {min: 0.2, max: 0.4}
explosion:
  count: 8
  color: 0xff0000
  flash_duration: 350ms
`)
	cfg, err := ParseConfig(doc)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ParticleFade = 0.25
	want.Character.FollowRate = 0.5
	want.Trail.Life = common.Range{Min: 0.2, Max: 0.4}
	want.Explosion.Count = 8
	want.Explosion.Color = 0xff0000
	want.Explosion.FlashDuration = 350 * time.Millisecond

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigKeepsExplicitZeros(t *testing.T) {
	doc := []byte(`
particle_fade: 0
character:
  roll_factor: 0
  spin_rate: 0
trail:
  jitter: 0
  velocity_y: {max: 0}
`)
	cfg, err := ParseConfig(doc)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ParticleFade = 0
	want.Character.RollFactor = 0
	want.Character.SpinRate = 0
	want.Trail.Jitter = 0
	want.Trail.VelocityY = common.Range{Min: 0, Max: 0}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFrameRateIndependent(t *testing.T) {
	assert.False(t, DefaultConfig().FrameRateIndependent)

	cfg, err := ParseConfig([]byte("frame_rate_independent: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.FrameRateIndependent)
	assert.Equal(t, float32(ReferenceFrameRate), cfg.ReferenceFrameRate)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"inverted range", "trail:\n  radius: {min: 0.05, max: 0.01}\n", "trail.radius"},
		{"negative jitter", "trail:\n  jitter: -1\n", "trail.jitter"},
		{"follow rate above one", "character:\n  follow_rate: 1.5\n", "character.follow_rate"},
		{"negative flash duration", "explosion:\n  flash_duration: -5ms\n", "explosion.flash_duration"},
		{"negative frame rate", "reference_frame_rate: -30\n", "reference_frame_rate"},
		{"zero frame rate", "reference_frame_rate: 0\n", "reference_frame_rate"},
		{"zero explosion count", "explosion:\n  count: 0\n", "explosion.count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("trail: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse bubble config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubbles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("explosion:\n  count: 5\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Explosion.Count)
	assert.Equal(t, DefaultConfig().Trail, cfg.Trail)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
