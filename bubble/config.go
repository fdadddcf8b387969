package bubble

import (
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"gopkg.in/yaml.v3"
)

// ReferenceFrameRate is the frame rate the per-frame tuning values were authored
// against. In frame-rate independent mode elapsed time is converted to reference
// frames before per-frame rates are applied.
const ReferenceFrameRate = 60

// Config holds every tunable of the bubble effects. Per-frame quantities are
// expressed per update call. With FrameRateIndependent set they are read as
// per reference frame and scaled by elapsed time instead.
type Config struct {
	// FrameRateIndependent scales follow, yaw and particle motion by the frame
	// delta. Off by default: each update call applies one frame's worth.
	FrameRateIndependent bool `yaml:"frame_rate_independent"`
	// ReferenceFrameRate converts seconds to reference frames.
	ReferenceFrameRate float32 `yaml:"reference_frame_rate"`
	// ParticleFade is the opacity per remaining second of particle life.
	ParticleFade float32 `yaml:"particle_fade"`

	Character CharacterConfig `yaml:"character"`
	Trail     TrailConfig     `yaml:"trail"`
	Explosion ExplosionConfig `yaml:"explosion"`
}

// CharacterConfig tunes the avatar's look and motion.
type CharacterConfig struct {
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Opacity  float32 `yaml:"opacity"`

	LightIntensity float32 `yaml:"light_intensity"`
	LightRange     float32 `yaml:"light_range"`

	// FollowRate is the fraction of the gap to the target covered per frame.
	FollowRate   float32 `yaml:"follow_rate"`
	BobAmplitude float32 `yaml:"bob_amplitude"`
	BobFrequency float32 `yaml:"bob_frequency"`
	// YawFollow is the yaw added per unit of lateral gap per frame.
	YawFollow float32 `yaml:"yaw_follow"`
	// SpinRate is the constant yaw rate in radians per second.
	SpinRate   float32 `yaml:"spin_rate"`
	RollFactor float32 `yaml:"roll_factor"`

	WobbleAmplitude [3]float32 `yaml:"wobble_amplitude"`
	WobbleFrequency [3]float32 `yaml:"wobble_frequency"`

	// HueRate is the light hue cycle speed in turns per second.
	HueRate         float32 `yaml:"hue_rate"`
	LightSaturation float32 `yaml:"light_saturation"`
	LightLightness  float32 `yaml:"light_lightness"`

	ResetOpacity           float32 `yaml:"reset_opacity"`
	ResetEmissiveIntensity float32 `yaml:"reset_emissive_intensity"`
}

// TrailConfig tunes the shimmer particles left behind the avatar.
type TrailConfig struct {
	Radius       common.Range `yaml:"radius"`
	Segments     int          `yaml:"segments"`
	ColorChannel common.Range `yaml:"color_channel"`
	Opacity      float32      `yaml:"opacity"`
	// Jitter is the half-width of the spawn offset on each axis.
	Jitter float32 `yaml:"jitter"`
	// Velocity ranges are in world units per frame.
	VelocityX common.Range `yaml:"velocity_x"`
	VelocityY common.Range `yaml:"velocity_y"`
	VelocityZ common.Range `yaml:"velocity_z"`
	// Life is in seconds.
	Life common.Range `yaml:"life"`
}

// ExplosionConfig tunes the pop burst and its flash.
type ExplosionConfig struct {
	Count    int     `yaml:"count"`
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Color    uint32  `yaml:"color"`
	Opacity  float32 `yaml:"opacity"`
	// Speed is the half-width of the per-axis velocity range in world units per frame.
	Speed float32 `yaml:"speed"`
	Life  float32 `yaml:"life"`

	FlashColor     uint32        `yaml:"flash_color"`
	FlashIntensity float32       `yaml:"flash_intensity"`
	FlashRange     float32       `yaml:"flash_range"`
	FlashDuration  time.Duration `yaml:"flash_duration"`
}

// DefaultConfig returns the stock bubble look.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		ReferenceFrameRate: ReferenceFrameRate,
		ParticleFade:       0.5,
		Character: CharacterConfig{
			Radius:                 0.12,
			Segments:               32,
			Opacity:                0.8,
			LightIntensity:         1.0,
			LightRange:             0.5,
			FollowRate:             0.2,
			BobAmplitude:           0.02,
			BobFrequency:           3,
			YawFollow:              0.1,
			SpinRate:               0.5,
			RollFactor:             0.3,
			WobbleAmplitude:        [3]float32{0.03, 0.02, 0.025},
			WobbleFrequency:        [3]float32{5, 4.5, 4.2},
			HueRate:                0.2,
			LightSaturation:        0.7,
			LightLightness:         0.5,
			ResetOpacity:           0.8,
			ResetEmissiveIntensity: 0.2,
		},
		Trail: TrailConfig{
			Radius:       common.Range{Min: 0.01, Max: 0.03},
			Segments:     8,
			ColorChannel: common.Range{Min: 0.7, Max: 1.0},
			Opacity:      0.5,
			Jitter:       0.05,
			VelocityX:    common.Symmetric(0.015),
			VelocityY:    common.Range{Min: 0, Max: 0.03},
			VelocityZ:    common.Symmetric(0.015),
			Life:         common.Range{Min: 0.7, Max: 1.0},
		},
		Explosion: ExplosionConfig{
			Count:          20,
			Radius:         0.02,
			Segments:       8,
			Color:          0x84f7fd,
			Opacity:        0.8,
			Speed:          0.05,
			Life:           1.0,
			FlashColor:     0x84f7fd,
			FlashIntensity: 3,
			FlashRange:     1.5,
			FlashDuration:  200 * time.Millisecond,
		},
	}
}

// LoadConfig reads a YAML effect config. Keys left out of the file keep the
// defaults from DefaultConfig.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: if the file cannot be read, parsed, or fails validation
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read bubble config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes over DefaultConfig and validates the result.
// Explicit zero values are kept.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the merged configuration
//   - error: if decoding or validation fails
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse bubble config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid bubble config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that would make the effects misbehave.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Config) Validate() error {
	if c.ReferenceFrameRate <= 0 {
		return fmt.Errorf("reference_frame_rate must be positive, got %v", c.ReferenceFrameRate)
	}
	if c.ParticleFade < 0 {
		return fmt.Errorf("particle_fade must not be negative, got %v", c.ParticleFade)
	}

	if c.Character.Radius <= 0 {
		return fmt.Errorf("character.radius must be positive, got %v", c.Character.Radius)
	}
	if c.Character.Segments < 3 {
		return fmt.Errorf("character.segments must be at least 3, got %d", c.Character.Segments)
	}
	if c.Character.FollowRate <= 0 || c.Character.FollowRate > 1 {
		return fmt.Errorf("character.follow_rate must be in (0, 1], got %v", c.Character.FollowRate)
	}

	ranges := []struct {
		name string
		r    common.Range
	}{
		{"trail.radius", c.Trail.Radius},
		{"trail.color_channel", c.Trail.ColorChannel},
		{"trail.velocity_x", c.Trail.VelocityX},
		{"trail.velocity_y", c.Trail.VelocityY},
		{"trail.velocity_z", c.Trail.VelocityZ},
		{"trail.life", c.Trail.Life},
	}
	for _, rg := range ranges {
		if err := rg.r.Validate(); err != nil {
			return fmt.Errorf("%s: %w", rg.name, err)
		}
	}
	if c.Trail.Radius.Min <= 0 {
		return fmt.Errorf("trail.radius must be positive, got min %v", c.Trail.Radius.Min)
	}
	if c.Trail.Life.Min <= 0 {
		return fmt.Errorf("trail.life must be positive, got min %v", c.Trail.Life.Min)
	}
	if c.Trail.Jitter < 0 {
		return fmt.Errorf("trail.jitter must not be negative, got %v", c.Trail.Jitter)
	}

	if c.Explosion.Count <= 0 {
		return fmt.Errorf("explosion.count must be positive, got %d", c.Explosion.Count)
	}
	if c.Explosion.Radius <= 0 {
		return fmt.Errorf("explosion.radius must be positive, got %v", c.Explosion.Radius)
	}
	if c.Explosion.Life <= 0 {
		return fmt.Errorf("explosion.life must be positive, got %v", c.Explosion.Life)
	}
	if c.Explosion.Speed < 0 {
		return fmt.Errorf("explosion.speed must not be negative, got %v", c.Explosion.Speed)
	}
	if c.Explosion.FlashDuration <= 0 {
		return fmt.Errorf("explosion.flash_duration must be positive, got %v", c.Explosion.FlashDuration)
	}
	return nil
}
