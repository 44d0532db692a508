package parameter

import "math"

// Optical sight geometry. Focal is the pinhole projection scale:
// screen units per unit of tangent at the sight radius.
const (
	SightRadius = 250.0 // screen units
	SightFOVDeg = 12.0
)

var (
	SightFOVRad = SightFOVDeg * math.Pi / 180
	SightFocal  = SightRadius / math.Tan(SightFOVRad/2)
)
