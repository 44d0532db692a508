package parameter

// Shell ballistics. Drag is the simplified quadratic model
// deceleration = DragK * v², tuned so the shell loses ~120 m/s over
// the first 1000m.
const (
	MuzzleVelocity   = 750.0 // m/s
	Gravity          = 9.81  // m/s²
	DragK            = 0.00018
	DispersionStdRad = 0.00035 // ~0.35m at 1000m
	SimDT            = 0.002   // physics substep, seconds
	ShellMaxTime     = 10.0    // max flight time, seconds
)

// Tracer trail sampling.
const (
	TrailLength         = 8     // past positions kept
	TrailSampleInterval = 0.015 // seconds between samples
)
