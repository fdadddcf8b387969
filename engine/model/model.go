package model

import "math"

// model is the implementation of the Model interface.
type model struct {
	name           string
	shape          Shape
	radius         float32
	widthSegments  int
	heightSegments int
	boundingRadius float32
	vertices       []Vertex
	indices        []uint32
}

// Model defines the interface for mesh geometry: vertex/index data plus the
// bounding information renderers use for culling and sizing.
type Model interface {
	// Name returns the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Shape returns the generator that produced this model.
	//
	// Returns:
	//   - Shape: the shape kind
	Shape() Shape

	// Radius returns the generating radius for procedural spheres, 0 otherwise.
	//
	// Returns:
	//   - float32: the sphere radius
	Radius() float32

	// Segments returns the width and height segment counts of a procedural sphere.
	//
	// Returns:
	//   - width: segments around the equator
	//   - height: segments from pole to pole
	Segments() (width, height int)

	// BoundingRadius returns the radius of a sphere centred at the model origin
	// that encloses every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Vertices returns the vertex data. Callers must not modify the slice.
	//
	// Returns:
	//   - []Vertex: the vertices
	Vertices() []Vertex

	// Indices returns the triangle list indices into Vertices.
	//
	// Returns:
	//   - []uint32: the indices, three per triangle
	Indices() []uint32
}

var _ Model = &model{}

// NewModel creates a Model from the supplied options. When no bounding radius is
// given it is derived from the vertices.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the new model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.boundingRadius == 0 {
		m.boundingRadius = computeBoundingRadius(m.vertices)
	}
	return m
}

// NewSphere generates a UV sphere centred on the origin. Segment counts below the
// minimum (3 around, 2 pole to pole) are raised to it.
//
// Parameters:
//   - radius: sphere radius
//   - widthSegments: segments around the equator
//   - heightSegments: segments from pole to pole
//   - options: further options, e.g. WithName
//
// Returns:
//   - Model: the sphere model
func NewSphere(radius float32, widthSegments, heightSegments int, options ...ModelBuilderOption) Model {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	vertices := make([]Vertex, 0, (widthSegments+1)*(heightSegments+1))
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi

			nx := float32(-math.Cos(phi) * math.Sin(theta))
			ny := float32(math.Cos(theta))
			nz := float32(math.Sin(phi) * math.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:   [3]float32{nx, ny, nz},
				UV:       [2]float32{float32(u), float32(1 - v)},
			})
		}
	}

	stride := uint32(widthSegments + 1)
	indices := make([]uint32, 0, widthSegments*heightSegments*6)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*stride + uint32(ix) + 1
			b := uint32(iy)*stride + uint32(ix)
			c := uint32(iy+1)*stride + uint32(ix)
			d := uint32(iy+1)*stride + uint32(ix) + 1
			// the pole rows collapse to a point, so skip their degenerate triangles
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	base := []ModelBuilderOption{
		WithVertices(vertices),
		WithIndices(indices),
		WithBoundingRadius(radius),
	}
	m := NewModel(append(base, options...)...).(*model)
	m.shape = ShapeSphere
	m.radius = radius
	m.widthSegments = widthSegments
	m.heightSegments = heightSegments
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Shape() Shape {
	return m.shape
}

func (m *model) Radius() float32 {
	return m.radius
}

func (m *model) Segments() (width, height int) {
	return m.widthSegments, m.heightSegments
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Vertices() []Vertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func computeBoundingRadius(vertices []Vertex) float32 {
	var maxSq float32
	for _, v := range vertices {
		p := v.Position
		if d := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]; d > maxSq {
			maxSq = d
		}
	}
	return float32(math.Sqrt(float64(maxSq)))
}
