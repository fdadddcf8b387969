package common

import (
	"math"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 column-major matrices and stores the result in out.
// Result: out = a * b. out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix mapping view space depth
// into the [0, 1] clip range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// ModelMatrix constructs a 4x4 column-major model matrix from a position, Euler
// rotation (radians, applied Y * X * Z) and a per-axis scale.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in parent space
//   - rot: rotation angles around x, y and z
//   - scale: scale factors along each axis
func ModelMatrix(out []float32, pos, rot, scale [3]float32) {
	sx, cx := math.Sincos(float64(rot[0]))
	sy, cy := math.Sincos(float64(rot[1]))
	sz, cz := math.Sincos(float64(rot[2]))

	// R = Ry * Rx * Rz
	r := [9]float64{
		cy*cz + sy*sx*sz, cx * sz, -sy*cz + cy*sx*sz,
		-cy*sz + sy*sx*cz, cx * cz, sy*sz + cy*sx*cz,
		sy * cx, -sx, cy * cx,
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*4+row] = float32(r[col*3+row]) * scale[col]
		}
		out[col*4+3] = 0
	}
	out[12], out[13], out[14], out[15] = pos[0], pos[1], pos[2], 1
}

// TransformPoint applies a column-major 4x4 matrix to a point (w = 1) and returns
// the resulting homogeneous coordinates.
//
// Parameters:
//   - m: the matrix (16 elements)
//   - p: the point
//
// Returns:
//   - [4]float32: transformed (x, y, z, w)
func TransformPoint(m []float32, p [3]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*p[0] + m[4+row]*p[1] + m[8+row]*p[2] + m[12+row]
	}
	return out
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: up vector (typically 0,1,0)
func LookAt(out []float32, eye, center, up [3]float32) {
	z := normalize([3]float32{eye[0] - center[0], eye[1] - center[1], eye[2] - center[2]})
	x := normalize(cross(up, z))
	y := cross(z, x)

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -dot(x, eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -dot(y, eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -dot(z, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Fract returns the fractional part of v wrapped into [0, 1), so negative
// inputs still cycle forward.
//
// Parameters:
//   - v: the input value
//
// Returns:
//   - float64: v - floor(v)
func Fract(v float64) float64 {
	return v - math.Floor(v)
}

// SmoothingFactor converts a per-frame exponential smoothing factor tuned at a
// reference frame rate into the factor for a frame of the given length, so the
// approach speed does not depend on the real frame rate.
//
// Parameters:
//   - perFrame: smoothing factor applied once per reference frame (0..1)
//   - frames: elapsed time expressed in reference frames (delta * reference rate)
//
// Returns:
//   - float64: the factor to apply for this frame
func SmoothingFactor(perFrame, frames float64) float64 {
	if frames <= 0 {
		return 0
	}
	return 1 - math.Pow(1-perFrame, frames)
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(dot(v, v))))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
