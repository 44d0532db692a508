package sim

import (
	"math"

	"github.com/lixenwraith/tank-gunner/input"
	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// FrameEvents summarizes what happened during one Update so the audio
// and logging layers can react without diffing entity state.
type FrameEvents struct {
	Fired          bool
	TankHits       int
	GroundImpacts  int
	ReloadComplete bool
}

// World owns every entity and is their sole mutator. Single-threaded:
// one Update per rendered frame, dt pre-clamped by the caller.
type World struct {
	Gun        *Gun
	Tanks      []*Tank
	Shells     []*Shell
	Explosions []Explosion
	Callouts   []Callout

	Score      int
	ShotsFired int

	rng *vmath.Rand
}

// NewWorld creates a world with one tank spawned inside the engagement
// envelope.
func NewWorld(rng *vmath.Rand) *World {
	w := &World{
		Gun: NewGun(),
		rng: rng,
	}
	w.SpawnTank()
	return w
}

// SpawnTank places a new tank at a uniform random range and lateral
// offset.
func (w *World) SpawnTank() {
	z := w.rng.Float64In(parameter.SpawnRangeMin, parameter.SpawnRangeMax)
	x := w.rng.Float64In(-parameter.SpawnLateralMax, parameter.SpawnLateralMax)
	w.Tanks = append(w.Tanks, NewTank(x, z))
}

// Fire attempts to fire the gun. Reports whether a shell left the
// barrel.
func (w *World) Fire() bool {
	shell := w.Gun.Fire(w.rng)
	if shell == nil {
		return false
	}
	w.Shells = append(w.Shells, shell)
	w.ShotsFired++
	return true
}

// NearestLiveTank returns the closest alive tank to the eye, or nil.
func (w *World) NearestLiveTank() *Tank {
	var best *Tank
	bestDist := math.Inf(1)
	for _, t := range w.Tanks {
		if !t.Alive {
			continue
		}
		if d := vmath.Dist(t.Center, w.Gun.Eye); d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

// Update advances the whole world by dt seconds of pre-clamped frame
// time: gun input, per-shell substepped physics with collision checks,
// effect aging, and the respawn sweep.
func (w *World) Update(dt float64, in input.Frame) FrameEvents {
	var ev FrameEvents

	wasReady := w.Gun.Ready
	w.Gun.Update(dt, in)
	if !wasReady && w.Gun.Ready {
		ev.ReloadComplete = true
	}

	if in.Fire && w.Fire() {
		ev.Fired = true
	}

	live := w.Shells[:0]
	for _, shell := range w.Shells {
		if shell.Alive {
			w.flyShell(shell, dt, &ev)
		}
		if shell.Alive {
			live = append(live, shell)
		}
	}
	w.Shells = live

	w.ageEffects(dt)

	// All tanks down: purge the wrecks and field exactly one new tank
	allDead := true
	for _, t := range w.Tanks {
		if t.Alive {
			allDead = false
			break
		}
	}
	if allDead {
		w.Tanks = w.Tanks[:0]
		w.SpawnTank()
	}

	return ev
}

// flyShell consumes the frame's time budget in fixed substeps so fast
// shells cannot tunnel through a target between frames. Each substep
// segment is tested against every live tank in collection order (first
// match wins), then against the ground plane.
func (w *World) flyShell(shell *Shell, dt float64, ev *FrameEvents) {
	remaining := dt
	for remaining > 0 && shell.Alive {
		step := min(parameter.SimDT, remaining)
		prev, curr := shell.Step(step)
		remaining -= step

		if w.resolveTankHit(shell, prev, curr, ev) {
			return
		}

		if hit, ok := vmath.GroundCrossing(prev, curr); ok {
			w.Explosions = append(w.Explosions, Explosion{
				Pos:     hit,
				Timer:   parameter.ExplosionDuration,
				MaxTime: parameter.ExplosionDuration,
			})
			w.spot(hit, false)
			shell.Alive = false
			ev.GroundImpacts++
			return
		}
	}
}

// resolveTankHit tests the substep segment against live tanks and
// applies hit consequences. Reports whether the shell terminated.
func (w *World) resolveTankHit(shell *Shell, prev, curr vmath.Vec3, ev *FrameEvents) bool {
	for _, tank := range w.Tanks {
		if !tank.Alive {
			continue
		}
		hit, ok := vmath.SegmentAABB(prev, curr, tank.Box())
		if !ok {
			continue
		}

		tank.Alive = false
		tank.Destroyed = true
		w.Score++
		w.Explosions = append(w.Explosions, Explosion{
			Pos:     hit,
			Hit:     true,
			Timer:   parameter.ExplosionDuration,
			MaxTime: parameter.ExplosionDuration,
		})
		w.spot(hit, true)
		shell.Alive = false
		ev.TankHits++
		return true
	}
	return false
}

// spot emits the spotter callout for a shell resolution. Misses are
// reported against the nearest live target; no target, no callout.
func (w *World) spot(impact vmath.Vec3, hit bool) {
	if hit {
		w.Callouts = append(w.Callouts, hitCallout())
		return
	}

	target := w.NearestLiveTank()
	if target == nil {
		return
	}
	c, ok := missCallout(impact, target.Center, w.Gun.Eye)
	if !ok {
		return
	}
	w.Callouts = append(w.Callouts, c)
}

// ageEffects decrements timers in place and prunes expired entries.
func (w *World) ageEffects(dt float64) {
	exps := w.Explosions[:0]
	for i := range w.Explosions {
		w.Explosions[i].Timer -= dt
		if w.Explosions[i].Timer > 0 {
			exps = append(exps, w.Explosions[i])
		}
	}
	w.Explosions = exps

	calls := w.Callouts[:0]
	for i := range w.Callouts {
		w.Callouts[i].Timer -= dt
		if w.Callouts[i].Timer > 0 {
			calls = append(calls, w.Callouts[i])
		}
	}
	w.Callouts = calls
}
