package camera

// CameraController owns the camera's positional state. The camera sits on a sphere
// around its target described by radius, azimuth and elevation, and the target can
// be eased toward a followed point each frame.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Follow eases the target toward a point. The per-frame follow rate is applied
	// for the given number of reference frames, so the result does not depend on
	// how the elapsed time is split across calls.
	//
	// Parameters:
	//   - x, y, z: the point to follow
	//   - frames: elapsed time expressed in reference frames (delta * frame rate)
	Follow(x, y, z float32, frames float32)

	// Orbit rotates the camera around the target.
	// Elevation is clamped to the configured bounds.
	//
	// Parameters:
	//   - dAzimuth: change in horizontal angle, radians
	//   - dElevation: change in vertical angle, radians
	Orbit(dAzimuth, dElevation float32)

	// Zoom moves the camera toward the target by delta, clamped to the radius bounds.
	// Positive delta zooms in.
	//
	// Parameters:
	//   - delta: distance change in world units
	Zoom(delta float32)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// FollowRate returns the fraction of the remaining distance to the followed
	// point covered per reference frame.
	//
	// Returns:
	//   - float32: follow rate in (0, 1]
	FollowRate() float32
}
