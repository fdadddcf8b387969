package material

import "github.com/Carmen-Shannon/crystal-runner/common"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithKind selects the shading model.
//
// Parameters:
//   - kind: basic or physical
//
// Returns:
//   - MaterialBuilderOption: a function that applies the kind option to a material
func WithKind(kind MaterialKind) MaterialBuilderOption {
	return func(m *material) {
		m.kind = kind
	}
}

// WithColor sets the base RGB colour.
//
// Parameters:
//   - color: colour as (r, g, b)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the colour option to a material
func WithColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithHexColor sets the base colour from a packed 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed colour
//
// Returns:
//   - MaterialBuilderOption: a function that applies the colour option to a material
func WithHexColor(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.color = common.HexToRGB(hex)
	}
}

// WithOpacity sets the alpha multiplier and marks the material transparent.
//
// Parameters:
//   - opacity: opacity in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = opacity
		m.transparent = true
	}
}

// WithTransparent toggles alpha blending without touching the opacity value.
//
// Parameters:
//   - transparent: true to blend
//
// Returns:
//   - MaterialBuilderOption: a function that applies the transparency option to a material
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithEmissive sets the emissive colour and intensity.
//
// Parameters:
//   - color: emissive colour
//   - intensity: emissive multiplier
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(color [3]float32, intensity float32) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = color
		m.emissiveIntensity = intensity
	}
}

// WithMetalness sets the metallic factor.
func WithMetalness(metalness float32) MaterialBuilderOption {
	return func(m *material) {
		m.metalness = metalness
	}
}

// WithRoughness sets the roughness factor.
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithTransmission sets the transmission factor and volume thickness used for refraction.
//
// Parameters:
//   - transmission: fraction of light passing through (0..1)
//   - thickness: volume thickness in world units
//
// Returns:
//   - MaterialBuilderOption: a function that applies the transmission option to a material
func WithTransmission(transmission, thickness float32) MaterialBuilderOption {
	return func(m *material) {
		m.transmission = transmission
		m.thickness = thickness
	}
}

// WithClearcoat sets the clearcoat layer strength and roughness.
func WithClearcoat(clearcoat, roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.clearcoat = clearcoat
		m.clearcoatRoughness = roughness
	}
}

// WithIridescence sets the thin-film iridescence strength and index of refraction.
//
// Parameters:
//   - iridescence: film strength (0..1)
//   - ior: film index of refraction
//
// Returns:
//   - MaterialBuilderOption: a function that applies the iridescence option to a material
func WithIridescence(iridescence, ior float32) MaterialBuilderOption {
	return func(m *material) {
		m.iridescence = iridescence
		m.iridescenceIOR = ior
	}
}

// WithEnvMapIntensity sets the environment reflection multiplier.
func WithEnvMapIntensity(intensity float32) MaterialBuilderOption {
	return func(m *material) {
		m.envMapIntensity = intensity
	}
}
