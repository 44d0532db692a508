package parameter

// Transient effect lifetimes and base sizes.
const (
	ExplosionDuration = 1.8  // seconds
	DustBaseRadius    = 18.0 // screen units, scaled by distance
	HitBaseRadius     = 25.0
)
