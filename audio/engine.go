package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tank-gunner/parameter"
)

const sampleRate = beep.SampleRate(48000)

// Engine synthesizes and plays all game audio through beep. Audio is
// strictly optional: a failed Init leaves the engine silent and every
// method a no-op, never an error at the call sites.
type Engine struct {
	mixer       *beep.Mixer
	initialized bool
	master      float64

	// Traverse motor loop, kept mounted and ramped in/out
	motorCtrl *beep.Ctrl
	motorVol  *effects.Volume
	motorGain float64 // current ramp level, 0..1
}

func NewEngine(masterVolume float64) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		master: masterVolume,
	}
}

// Init opens the speaker and mounts the persistent motor loop.
func (e *Engine) Init() error {
	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	e.motorVol = &effects.Volume{
		Streamer: motorHum(sampleRate),
		Base:     10,
		Volume:   -3, // start inaudible
		Silent:   true,
	}
	e.motorCtrl = &beep.Ctrl{Streamer: e.motorVol, Paused: true}
	e.mixer.Add(e.motorCtrl)

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close stops playback.
func (e *Engine) Close() {
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// play mounts a one-shot streamer at the master volume.
func (e *Engine) play(s beep.Streamer) {
	if !e.initialized || e.master <= 0 {
		return
	}
	vol := &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   math.Log10(e.master),
	}
	speaker.Lock()
	e.mixer.Add(vol)
	speaker.Unlock()
}

func (e *Engine) PlayFire() {
	e.play(fireBlast(sampleRate))
}

func (e *Engine) PlayHit() {
	e.play(hitBoom(sampleRate))
}

func (e *Engine) PlayGroundImpact() {
	e.play(dustThud(sampleRate))
}

func (e *Engine) PlayReload() {
	e.play(reloadClank(sampleRate))
}

// UpdateMotor ramps the traverse motor loop toward audible while the
// gun is traversing and back to silence when it stops, over the
// configured ramp time.
func (e *Engine) UpdateMotor(dt float64, traversing bool) {
	if !e.initialized {
		return
	}

	target := 0.0
	if traversing {
		target = 1.0
	}

	step := dt / parameter.AudioRampTime
	if e.motorGain < target {
		e.motorGain = min(target, e.motorGain+step)
	} else if e.motorGain > target {
		e.motorGain = max(target, e.motorGain-step)
	}

	gain := e.motorGain * parameter.AudioTraverseVol * e.master

	speaker.Lock()
	if gain <= 0.001 {
		e.motorCtrl.Paused = true
		e.motorVol.Silent = true
	} else {
		e.motorCtrl.Paused = false
		e.motorVol.Silent = false
		e.motorVol.Volume = math.Log10(gain)
	}
	speaker.Unlock()
}
