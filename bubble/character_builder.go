package bubble

import "github.com/Carmen-Shannon/crystal-runner/common"

// CharacterBuilderOption is a functional option for configuring a Character.
type CharacterBuilderOption func(*character)

// WithCharacterConfig replaces the default tuning. The config is validated when
// the avatar is built; an invalid config panics.
//
// Parameters:
//   - cfg: the effect configuration
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithCharacterConfig(cfg Config) CharacterBuilderOption {
	return func(c *character) {
		c.cfg = cfg
	}
}

// WithCharacterName sets the name of the group. Child nodes derive their names from it.
// An empty name keeps the default.
//
// Parameters:
//   - name: the avatar name
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithCharacterName(name string) CharacterBuilderOption {
	return func(c *character) {
		c.name = common.Coalesce(name, c.name)
	}
}

// WithCharacterPosition sets the starting position of the group.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithCharacterPosition(x, y, z float32) CharacterBuilderOption {
	return func(c *character) {
		c.position = [3]float32{x, y, z}
	}
}

// WithoutLight builds the avatar without its rainbow point light.
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithoutLight() CharacterBuilderOption {
	return func(c *character) {
		c.withLight = false
	}
}
