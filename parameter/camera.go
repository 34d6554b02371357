package parameter

// Orbit camera tuning. Pitch and distance are fixed; yaw is wheel-driven.
const (
	// CameraYawDefault is the initial orbit angle (radians)
	CameraYawDefault = 0.0

	// CameraPitchDefault is the fixed elevation angle (radians)
	CameraPitchDefault = 0.3

	// CameraDistanceDefault is the fixed orbit radius (world units)
	CameraDistanceDefault = 20.0

	// CameraWheelFactor converts wheel deltaY pixels to yaw radians
	CameraWheelFactor = 0.002

	// CameraWheelNotch is the deltaY synthesized per terminal wheel tick.
	// Terminals report discrete notches, not pixel deltas.
	CameraWheelNotch = 50.0

	// CameraLookAtY is the fixed look-at target height
	CameraLookAtY = -8.0

	// CameraFOV is the vertical field of view (degrees)
	CameraFOV = 50.0
)

// Ground plane and pick extent
const (
	// GroundExtent is the half-size of the pickable ground plane
	// (plane spans 2*GroundExtent on each axis)
	GroundExtent = 100.0

	// GridExtent and GridStep control the rendered reference grid
	GridExtent = 20.0
	GridStep   = 2.0
)
