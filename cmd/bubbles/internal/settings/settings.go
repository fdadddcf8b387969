// Package settings reads the bubbles demo's command-line flags, with
// BUBBLES_-prefixed environment variables as fallbacks.
package settings

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased flag names to form environment variable
// names, e.g. BUBBLES_TRAIL_RATE.
const EnvPrefix = "BUBBLES"

// Settings holds the resolved demo options.
type Settings struct {
	ConfigPath string
	Headless   bool
	Duration   time.Duration
	TickRate   float64
	Width      int
	Height     int
	TrailRate  float64
	Profile    bool
}

// Load parses args (without the program name). Explicit flags win over
// environment variables, which win over defaults.
//
// Parameters:
//   - args: command-line arguments
//
// Returns:
//   - Settings: the resolved settings
//   - error: on unknown flags, malformed values, or out-of-range settings
func Load(args []string) (Settings, error) {
	fs := pflag.NewFlagSet("bubbles", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML bubble effect config")
	fs.Bool("headless", false, "run the simulation without a window")
	fs.Duration("duration", 10*time.Second, "how long a headless run lasts")
	fs.Float64("tick-rate", 60, "simulation ticks per second")
	fs.Int("width", 960, "window width in pixels")
	fs.Int("height", 540, "window height in pixels")
	fs.Float64("trail-rate", 30, "trail particles spawned per second")
	fs.Bool("profile", false, "log frame and scene statistics every second")

	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	s := Settings{
		ConfigPath: v.GetString("config"),
		Headless:   v.GetBool("headless"),
		Duration:   v.GetDuration("duration"),
		TickRate:   v.GetFloat64("tick-rate"),
		Width:      v.GetInt("width"),
		Height:     v.GetInt("height"),
		TrailRate:  v.GetFloat64("trail-rate"),
		Profile:    v.GetBool("profile"),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every setting is in range. The window runs at whole
// ticks per second, so fractional rates below 1 are only accepted headless.
//
// Returns:
//   - error: describing every invalid setting, or nil
func (s Settings) Validate() error {
	var errs []error
	if s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", s.Duration))
	}
	switch {
	case s.TickRate <= 0:
		errs = append(errs, fmt.Errorf("tick-rate must be positive, got %v", s.TickRate))
	case !s.Headless && s.TickRate < 1:
		errs = append(errs, fmt.Errorf("tick-rate must be at least 1 in window mode, got %v", s.TickRate))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.TrailRate < 0 {
		errs = append(errs, fmt.Errorf("trail-rate must not be negative, got %v", s.TrailRate))
	}
	return errors.Join(errs...)
}

// TPS returns the tick rate rounded to whole ticks per second, never below 1.
//
// Returns:
//   - int: ticks per second for the window loop
func (s Settings) TPS() int {
	return max(int(math.Round(s.TickRate)), 1)
}
