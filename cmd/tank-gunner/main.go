package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tank-gunner/audio"
	"github.com/lixenwraith/tank-gunner/config"
	"github.com/lixenwraith/tank-gunner/input"
	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/render"
	"github.com/lixenwraith/tank-gunner/sim"
	"github.com/lixenwraith/tank-gunner/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	logFlag    = flag.String("log", "", "Log file path (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tank-gunner: %v\n", err)
		os.Exit(1)
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	if *muteFlag {
		cfg.Mute = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	log, logClose, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tank-gunner: %v\n", err)
		os.Exit(1)
	}
	defer logClose()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tank-gunner: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tank-gunner: init screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace so it
	// is readable and the shell is usable afterwards
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTANK-GUNNER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Msg("starting")

	sound := audio.NewEngine(cfg.MasterVolume)
	if cfg.Mute {
		log.Info().Msg("audio muted")
	} else if err := sound.Init(); err != nil {
		// Silent mode, not an error
		log.Warn().Err(err).Msg("audio unavailable")
	} else {
		defer sound.Close()
	}

	world := sim.NewWorld(vmath.NewRand(seed))
	renderer := render.New(screen)
	tracker := input.NewTracker()
	keymap := input.DefaultKeymap()

	run(screen, world, renderer, tracker, keymap, sound, log)
	log.Info().Int("score", world.Score).Int("shots", world.ShotsFired).Msg("exiting")
}

// openLogger builds the file logger. The terminal owns stdout, so an
// empty log path yields a Nop logger rather than console output.
func openLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

// run drives the fixed-rate frame loop until the player quits.
func run(screen tcell.Screen, world *sim.World, renderer *render.Renderer,
	tracker *input.Tracker, keymap *input.Keymap, sound *audio.Engine, log zerolog.Logger) {

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / parameter.TargetFPS)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, fast := keymap.Translate(ev)
				if action == input.ActionQuit {
					return
				}
				tracker.Press(action, fast, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDT)
			last = now

			frame := tracker.Snapshot(now)
			ev := world.Update(dt, frame)
			playFrame(sound, world, ev, log)
			sound.UpdateMotor(dt, world.Gun.Traversing())

			renderer.Frame(world)
		}
	}
}

func playFrame(sound *audio.Engine, world *sim.World, ev sim.FrameEvents, log zerolog.Logger) {
	if ev.Fired {
		sound.PlayFire()
		log.Debug().
			Float64("traverse_deg", world.Gun.Traverse*180/math.Pi).
			Float64("elevation_deg", world.Gun.Elevation*180/math.Pi).
			Int("shots", world.ShotsFired).
			Msg("fired")
	}
	for range ev.TankHits {
		sound.PlayHit()
	}
	if ev.TankHits > 0 {
		log.Info().Int("score", world.Score).Msg("target destroyed")
	}
	for range ev.GroundImpacts {
		sound.PlayGroundImpact()
	}
	if ev.ReloadComplete {
		sound.PlayReload()
	}
}
