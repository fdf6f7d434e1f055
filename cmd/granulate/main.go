// Command granulate runs the granular engine over a WAV file.
//
// Usage:
//
//	granulate -in voice.wav -out grains.wav -dur 20
//	granulate -in voice.wav -trigger 40 -grain-period 0.08 -variance 0.3 -out cloud.wav
//	granulate -in voice.wav -play -i        # live playback with an interactive prompt
//
// The interactive prompt accepts "set <param> <value>", "get <param>",
// "window <name>", "stats", "reset", "help" and "quit".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	granular "github.com/tphakala/go-granular"
	"github.com/tphakala/go-granular/internal/playback"
)

const (
	defaultDuration = 10.0 // seconds
	defaultBits     = 16
	reportInterval  = time.Second
)

type options struct {
	in, out     string
	dur         float64
	bits        int
	play        bool
	interactive bool
	verbose     bool
	debug       bool
	gain        float64
	bypass      bool

	phaseStart, phaseStop float64
	phaseRate, wobble     float64

	cfg granular.Config
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() *options {
	o := &options{cfg: granular.DefaultConfig(granular.RateCD)}

	flag.StringVar(&o.in, "in", "", "Input WAV file (required)")
	flag.StringVar(&o.out, "out", "", "Render to this WAV file")
	flag.Float64Var(&o.dur, "dur", defaultDuration, "Render or play duration in seconds (0 plays until interrupted)")
	flag.IntVar(&o.bits, "bits", defaultBits, "Output bit depth: 16 or 24")
	flag.BoolVar(&o.play, "play", false, "Play through the default audio device")
	flag.BoolVar(&o.interactive, "i", false, "Interactive control prompt while playing")
	flag.BoolVar(&o.verbose, "v", false, "Verbose output")
	flag.BoolVar(&o.debug, "debug", false, "Trace every spawned grain (implies -v)")
	flag.Float64Var(&o.gain, "gain", 1, "Output gain")
	flag.BoolVar(&o.bypass, "bypass", false, "Play the buffer directly without grains")

	flag.Float64Var(&o.cfg.SampleRate, "rate", o.cfg.SampleRate, "Engine sample rate in Hz")
	flag.StringVar(&o.cfg.Window, "window", o.cfg.Window, "Grain window: blackman, hanning, hamming, bartlett, plancktaper")
	flag.Float64Var(&o.cfg.GrainPeriod, "grain-period", o.cfg.GrainPeriod, "Grain length in seconds")
	flag.Float64Var(&o.cfg.GrainPeriodVariance, "variance", o.cfg.GrainPeriodVariance, "Grain length spread as a fraction of the period")
	flag.Float64Var(&o.cfg.GrainRate, "grain-rate", o.cfg.GrainRate, "Grain playback speed (negative plays backwards)")
	flag.Float64Var(&o.cfg.TriggerFreq, "trigger", o.cfg.TriggerFreq, "Grain spawn rate in Hz")
	flag.Float64Var(&o.cfg.TriggerRange, "jitter", o.cfg.TriggerRange, "Spawn timing jitter as a fraction of the period")
	flag.IntVar(&o.cfg.PoolCapacity, "grains", o.cfg.PoolCapacity, "Maximum simultaneous grains")
	flag.IntVar(&o.cfg.MaxFilt, "maxfilt", o.cfg.MaxFilt, "Interpolation width: 2 linear, 4 cubic, 6-64 sinc")
	flag.Uint64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "Random seed")

	flag.Float64Var(&o.phaseStart, "phase-start", 0, "Spawn window start (0-1)")
	flag.Float64Var(&o.phaseStop, "phase-stop", 1, "Spawn window stop (0-1)")
	flag.Float64Var(&o.phaseRate, "phase-rate", 1, "Spawn position speed")
	flag.Float64Var(&o.wobble, "wobble", 0, "Spawn position spread (0-1)")
	flag.Parse()
	return o
}

func run() error {
	o := parseFlags()
	if o.in == "" || (o.out == "" && !o.play) {
		fmt.Fprintf(os.Stderr, "Usage: %s -in input.wav (-out output.wav | -play) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}

	e, err := newEngine(o)
	if err != nil {
		return err
	}

	if o.out != "" {
		start := time.Now()
		frames, err := renderWAV(e, o.out, o.dur, o.bits)
		if err != nil {
			return err
		}
		if o.verbose {
			st := e.Stats()
			log.Printf("Rendered %d frames to %s in %v", frames, o.out, time.Since(start).Round(time.Millisecond))
			log.Printf("Grains: %d spawned, %d dropped", st.SpawnedGrains, st.DroppedSpawns)
		}
	}

	if o.play {
		return play(e, o)
	}
	return nil
}

func newEngine(o *options) (*granular.Engine, error) {
	switch {
	case o.debug:
		o.cfg.Verbosity = granular.VerbosityDebug
	case o.verbose:
		o.cfg.Verbosity = granular.VerbosityInfo
	}
	if o.cfg.Verbosity > granular.VerbosityQuiet {
		level := slog.LevelInfo
		if o.debug {
			level = slog.LevelDebug
		}
		o.cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	e, err := granular.New(&o.cfg)
	if err != nil {
		return nil, err
	}
	if err := e.Read(o.in); err != nil {
		return nil, err
	}

	e.SetGrainPhaseStart(o.phaseStart)
	e.SetGrainPhaseStop(o.phaseStop)
	e.SetGrainPhaseRate(o.phaseRate)
	e.SetGrainPhaseWobble(o.wobble)
	e.SetGain(o.gain)
	e.SetBypass(o.bypass)
	e.SetLoop(true)

	if o.verbose {
		log.Printf("Input: %s, %.2f s, %d channels", o.in, e.FileDur(), e.NChan())
		log.Printf("Grains: %s window, %.3f s ±%.0f%%, rate %.3f, %.2f Hz trigger",
			e.GrainWindow(), e.GrainPeriod(), e.GrainPeriodVariance()*100, e.GrainRate(), e.TriggerFreq())
	}
	return e, nil
}

func play(e *granular.Engine, o *options) error {
	p, err := playback.New(int(e.SampleRate()))
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	p.SetSource(e)
	p.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go report(ctx, e)

	if o.interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("-i needs a terminal on stdin")
		}
		return repl(&env{engine: e, out: os.Stdout})
	}

	if o.dur > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(o.dur*float64(time.Second)))
		defer cancel()
	}
	<-ctx.Done()
	return nil
}

// report logs engine diagnostics off the audio goroutine until ctx ends.
func report(ctx context.Context, e *granular.Engine) {
	t := time.NewTicker(reportInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.Report()
		}
	}
}
