package parameter

// Enemy tank box dimensions in meters.
const (
	TankLength = 6.5 // along Z, front to back
	TankWidth  = 3.2 // along X
	TankHeight = 2.4 // along Y
)

// Spawn envelope relative to the gun position.
const (
	SpawnRangeMin   = 500.0 // meters downrange
	SpawnRangeMax   = 1500.0
	SpawnLateralMax = 200.0 // meters off-center, either side
)
