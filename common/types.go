// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"
	"math/rand/v2"
)

// Transform holds the local position, Euler rotation (radians) and scale of a scene node.
type Transform struct {
	// Position is the translation relative to the parent node.
	Position [3]float32
	// Rotation holds rotation angles around the x, y and z axes in radians.
	Rotation [3]float32
	// Scale holds per-axis scale factors. A zero Transform is not renderable; use NewTransform.
	Scale [3]float32
}

// NewTransform returns a Transform at the origin with unit scale.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Matrix builds the column-major model matrix for this transform.
//
// Returns:
//   - [16]float32: the model matrix
func (t Transform) Matrix() [16]float32 {
	var m [16]float32
	ModelMatrix(m[:], t.Position, t.Rotation, t.Scale)
	return m
}

// Range is a closed interval of float values used for randomized effect parameters.
type Range struct {
	// Min is the inclusive lower bound.
	Min float32 `yaml:"min"`
	// Max is the upper bound. Equal to Min for a fixed value.
	Max float32 `yaml:"max"`
}

// Fixed returns a Range that always samples to v.
//
// Parameters:
//   - v: the fixed value
//
// Returns:
//   - Range: a degenerate range [v, v]
func Fixed(v float32) Range {
	return Range{Min: v, Max: v}
}

// Symmetric returns the Range [-half, half].
//
// Parameters:
//   - half: half-width of the range
//
// Returns:
//   - Range: the centred range
func Symmetric(half float32) Range {
	return Range{Min: -half, Max: half}
}

// Sample draws a uniformly distributed value from the range.
//
// Parameters:
//   - r: the random source
//
// Returns:
//   - float32: a value in [Min, Max]
func (rg Range) Sample(r *rand.Rand) float32 {
	if rg.Max == rg.Min {
		return rg.Min
	}
	return rg.Min + r.Float32()*(rg.Max-rg.Min)
}

// Contains reports whether v lies inside the closed range.
//
// Parameters:
//   - v: the value to test
//
// Returns:
//   - bool: true if Min <= v <= Max
func (rg Range) Contains(v float32) bool {
	return v >= rg.Min && v <= rg.Max
}

// Validate returns an error if the range is inverted.
//
// Returns:
//   - error: non-nil if Min > Max
func (rg Range) Validate() error {
	if rg.Min > rg.Max {
		return fmt.Errorf("range min %v is greater than max %v", rg.Min, rg.Max)
	}
	return nil
}
