package sim

import (
	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// Shell is a projectile in flight. Once terminated it never re-enters
// flight; the world drops it at the end of the frame.
type Shell struct {
	Pos   vmath.Vec3
	Vel   vmath.Vec3
	Time  float64
	Alive bool

	// Tracer trail: bounded ring of past positions sampled at a fixed
	// interval, oldest overwritten first
	trail      [parameter.TrailLength]vmath.Vec3
	trailHead  int
	trailCount int
	trailTimer float64
}

func NewShell(pos, vel vmath.Vec3) *Shell {
	s := &Shell{
		Pos:   pos,
		Vel:   vel,
		Alive: true,
	}
	s.pushTrail(pos)
	return s
}

// Step advances one physics substep: quadratic drag opposing the
// velocity, gravity, explicit Euler position integration, trail
// sampling, and the max flight time cutoff. Returns the segment
// endpoints for collision testing.
func (s *Shell) Step(dt float64) (prev, curr vmath.Vec3) {
	prev = s.Pos

	speed := vmath.Mag(s.Vel)
	if speed > 0 {
		decel := parameter.DragK * speed * speed
		s.Vel = vmath.Sub(s.Vel, vmath.Scale(vmath.Normalize(s.Vel), decel*dt))
	}

	s.Vel.Y -= parameter.Gravity * dt
	s.Pos = vmath.Add(s.Pos, vmath.Scale(s.Vel, dt))
	s.Time += dt

	s.trailTimer += dt
	if s.trailTimer >= parameter.TrailSampleInterval {
		s.trailTimer = 0
		s.pushTrail(s.Pos)
	}

	if s.Time > parameter.ShellMaxTime {
		s.Alive = false
	}

	return prev, s.Pos
}

func (s *Shell) pushTrail(p vmath.Vec3) {
	s.trail[s.trailHead] = p
	s.trailHead = (s.trailHead + 1) % parameter.TrailLength
	if s.trailCount < parameter.TrailLength {
		s.trailCount++
	}
}

// Trail returns the recorded positions ordered oldest to newest.
func (s *Shell) Trail() []vmath.Vec3 {
	out := make([]vmath.Vec3, 0, s.trailCount)
	start := s.trailHead - s.trailCount
	for i := 0; i < s.trailCount; i++ {
		idx := (start + i + parameter.TrailLength) % parameter.TrailLength
		out = append(out, s.trail[idx])
	}
	return out
}
