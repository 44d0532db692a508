package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tank-gunner/vmath"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveNoise
)

// oscillator generates a raw wave with an exponential decay envelope.
// decay is the amplitude half-life in seconds; 0 disables the
// envelope (steady tone).
type oscillator struct {
	freq     float64
	phase    float64
	duration int // total samples, 0 = endless
	position int
	wave     waveType
	decay    float64
	rate     beep.SampleRate
	rng      *vmath.Rand
}

func newOscillator(freq float64, duration time.Duration, wave waveType, decay float64, rate beep.SampleRate) *oscillator {
	samples := 0
	if duration > 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		decay:    decay,
		rate:     rate,
		rng:      vmath.NewRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		if o.decay > 0 {
			t := float64(o.position) / float64(o.rate)
			val *= math.Exp2(-t / o.decay)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// mix sums streamers into one, normalized so layered effects like the
// muzzle blast's noise-over-thump cannot clip.
func mix(streamers ...beep.Streamer) beep.Streamer {
	m := &beep.Mixer{}
	m.KeepAlive(false)
	m.Add(streamers...)
	if len(streamers) < 2 {
		return m
	}
	return &effects.Gain{
		Streamer: m,
		Gain:     1/float64(len(streamers)) - 1,
	}
}

// fireBlast is a sharp noise burst over a low-frequency thump.
func fireBlast(rate beep.SampleRate) beep.Streamer {
	return mix(
		newOscillator(0, 400*time.Millisecond, waveNoise, 0.05, rate),
		newOscillator(55, 400*time.Millisecond, waveSine, 0.12, rate),
	)
}

// hitBoom is the bright distant detonation of an armor strike.
func hitBoom(rate beep.SampleRate) beep.Streamer {
	return mix(
		newOscillator(0, 1200*time.Millisecond, waveNoise, 0.25, rate),
		newOscillator(70, 1200*time.Millisecond, waveSine, 0.35, rate),
	)
}

// dustThud is the duller ground-impact version.
func dustThud(rate beep.SampleRate) beep.Streamer {
	return newOscillator(45, 800*time.Millisecond, waveSine, 0.2, rate)
}

// reloadClank marks the breech closing on a fresh shell.
func reloadClank(rate beep.SampleRate) beep.Streamer {
	return mix(
		newOscillator(1100, 90*time.Millisecond, waveSine, 0.02, rate),
		newOscillator(480, 140*time.Millisecond, waveSine, 0.04, rate),
	)
}

// motorHum is the endless traverse motor loop; its level is ramped by
// the engine, not the streamer.
func motorHum(rate beep.SampleRate) beep.Streamer {
	return mix(
		newOscillator(42, 0, waveSine, 0, rate),
		newOscillator(84, 0, waveSine, 0, rate),
	)
}
