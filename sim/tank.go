package sim

import (
	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// Tank is a static axis-aligned box target sitting on the ground
// plane. Destroyed marks a confirmed kill, as opposed to a hull that
// was never fielded; it stays set until the respawn sweep.
type Tank struct {
	Center    vmath.Vec3
	Alive     bool
	Destroyed bool

	half vmath.Vec3
}

// NewTank places a tank at ground position (x, z) with its box resting
// on Y=0.
func NewTank(x, z float64) *Tank {
	return &Tank{
		Center: vmath.Vec3{X: x, Y: parameter.TankHeight / 2, Z: z},
		Alive:  true,
		half: vmath.Vec3{
			X: parameter.TankWidth / 2,
			Y: parameter.TankHeight / 2,
			Z: parameter.TankLength / 2,
		},
	}
}

// Box returns the tank's bounding box.
func (t *Tank) Box() vmath.AABB {
	return vmath.AABB{
		Min: vmath.Sub(t.Center, t.half),
		Max: vmath.Add(t.Center, t.half),
	}
}

// Corners returns the 8 box corners, bottom face first.
func (t *Tank) Corners() [8]vmath.Vec3 {
	b := t.Box()
	mn, mx := b.Min, b.Max
	return [8]vmath.Vec3{
		{X: mn.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mx.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z},
	}
}

// SilhouetteQuads returns all six box faces as 4-corner quads in CCW
// order viewed from outside; the renderer culls back faces.
func (t *Tank) SilhouetteQuads() [6][4]vmath.Vec3 {
	b := t.Box()
	mn, mx := b.Min, b.Max
	return [6][4]vmath.Vec3{
		// Front (-Z), facing the gun
		{{X: mn.X, Y: mn.Y, Z: mn.Z}, {X: mx.X, Y: mn.Y, Z: mn.Z},
			{X: mx.X, Y: mx.Y, Z: mn.Z}, {X: mn.X, Y: mx.Y, Z: mn.Z}},
		// Back (+Z)
		{{X: mx.X, Y: mn.Y, Z: mx.Z}, {X: mn.X, Y: mn.Y, Z: mx.Z},
			{X: mn.X, Y: mx.Y, Z: mx.Z}, {X: mx.X, Y: mx.Y, Z: mx.Z}},
		// Left (-X)
		{{X: mn.X, Y: mn.Y, Z: mx.Z}, {X: mn.X, Y: mn.Y, Z: mn.Z},
			{X: mn.X, Y: mx.Y, Z: mn.Z}, {X: mn.X, Y: mx.Y, Z: mx.Z}},
		// Right (+X)
		{{X: mx.X, Y: mn.Y, Z: mn.Z}, {X: mx.X, Y: mn.Y, Z: mx.Z},
			{X: mx.X, Y: mx.Y, Z: mx.Z}, {X: mx.X, Y: mx.Y, Z: mn.Z}},
		// Top (+Y)
		{{X: mn.X, Y: mx.Y, Z: mn.Z}, {X: mx.X, Y: mx.Y, Z: mn.Z},
			{X: mx.X, Y: mx.Y, Z: mx.Z}, {X: mn.X, Y: mx.Y, Z: mx.Z}},
		// Bottom (-Y)
		{{X: mn.X, Y: mn.Y, Z: mx.Z}, {X: mx.X, Y: mn.Y, Z: mx.Z},
			{X: mx.X, Y: mn.Y, Z: mn.Z}, {X: mn.X, Y: mn.Y, Z: mn.Z}},
	}
}
