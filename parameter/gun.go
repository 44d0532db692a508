package parameter

import "math"

// Gun control rates and limits. Angles are degrees here and converted
// once; the sim works in radians throughout.
const (
	TraverseSpeedDeg     = 1.5  // fine traverse, degrees per second
	TraverseSpeedFastDeg = 24.0 // with fast modifier held
	TraverseRampTime     = 0.5  // seconds to reach full fast speed
	ElevationSpeedDeg    = 4.0
	ReloadTime           = 5.0 // seconds
	MinElevationDeg      = -4.0
	MaxElevationDeg      = 20.0
	InitialElevationDeg  = 1.5
	InitialTraverseDeg   = 0.0

	PlayerEyeHeight = 2.2 // meters, turret hatch height

	// Shell spawns this far ahead of the eye to avoid
	// self-intersection with the firing point
	MuzzleOffset = 2.0
)

var (
	TraverseSpeed     = TraverseSpeedDeg * math.Pi / 180
	TraverseSpeedFast = TraverseSpeedFastDeg * math.Pi / 180
	ElevationSpeed    = ElevationSpeedDeg * math.Pi / 180
	MinElevation      = MinElevationDeg * math.Pi / 180
	MaxElevation      = MaxElevationDeg * math.Pi / 180
	InitialElevation  = InitialElevationDeg * math.Pi / 180
	InitialTraverse   = InitialTraverseDeg * math.Pi / 180
)
