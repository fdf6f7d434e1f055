package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	granular "github.com/tphakala/go-granular"
)

var errQuit = errors.New("quit")

type env struct {
	engine *granular.Engine
	out    io.Writer
}

// param binds a prompt parameter name to an engine setter and getter.
type param struct {
	set  func(*granular.Engine, float64) float64
	get  func(*granular.Engine) float64
	help string
}

func boolParam(set func(*granular.Engine, bool) bool, get func(*granular.Engine) bool) (
	func(*granular.Engine, float64) float64, func(*granular.Engine) float64,
) {
	b2f := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	return func(e *granular.Engine, v float64) float64 { return b2f(set(e, v != 0)) },
		func(e *granular.Engine) float64 { return b2f(get(e)) }
}

var params = map[string]param{
	"trigger":      {(*granular.Engine).SetTriggerFreq, (*granular.Engine).TriggerFreq, "grain spawn rate in Hz"},
	"jitter":       {(*granular.Engine).SetTriggerRange, (*granular.Engine).TriggerRange, "spawn timing jitter, fraction of period"},
	"grain-period": {(*granular.Engine).SetGrainPeriod, (*granular.Engine).GrainPeriod, "grain length in seconds"},
	"variance":     {(*granular.Engine).SetGrainPeriodVariance, (*granular.Engine).GrainPeriodVariance, "grain length spread, fraction of period"},
	"grain-rate":   {(*granular.Engine).SetGrainRate, (*granular.Engine).GrainRate, "grain playback speed"},
	"phase-start":  {(*granular.Engine).SetGrainPhaseStart, (*granular.Engine).GrainPhaseStart, "spawn window start, 0-1"},
	"phase-stop":   {(*granular.Engine).SetGrainPhaseStop, (*granular.Engine).GrainPhaseStop, "spawn window stop, 0-1"},
	"phase-rate":   {(*granular.Engine).SetGrainPhaseRate, (*granular.Engine).GrainPhaseRate, "spawn position speed"},
	"wobble":       {(*granular.Engine).SetGrainPhaseWobble, (*granular.Engine).GrainPhaseWobble, "spawn position spread, 0-1"},
	"gain":         {(*granular.Engine).SetGain, (*granular.Engine).Gain, "output gain"},
	"rate":         {(*granular.Engine).SetRate, (*granular.Engine).Rate, "bypass playback speed"},
	"pos":          {(*granular.Engine).SetPos, (*granular.Engine).Pos, "bypass playback position in frames"},
	"phase":        {(*granular.Engine).SetPhase, (*granular.Engine).Phase, "bypass playback position, 0-1"},
	"maxfilt": {
		func(e *granular.Engine, v float64) float64 { return float64(e.SetMaxFilt(int(v))) },
		func(e *granular.Engine) float64 { return float64(e.MaxFilt()) },
		"interpolation width",
	},
}

func init() {
	set, get := boolParam((*granular.Engine).SetBypass, (*granular.Engine).Bypass)
	params["bypass"] = param{set, get, "1 plays the buffer directly"}
	set, get = boolParam((*granular.Engine).SetLoop, (*granular.Engine).Loop)
	params["loop"] = param{set, get, "1 loops bypass playback"}
}

type command struct {
	name  string
	run   func(*env, []string) (string, error)
	arity int
}

var commands = []command{
	{"set", setCommand, 2},
	{"get", getCommand, 1},
	{"window", windowCommand, 1},
	{"stats", statsCommand, 0},
	{"reset", resetCommand, 0},
	{"help", helpCommand, 0},
	{"quit", quitCommand, 0},
	{"exit", quitCommand, 0},
}

func (e *env) eval(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := fields[0], fields[1:]
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if len(args) != cmd.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %v, got %v", cmd.name, cmd.arity, len(args))
		}
		result, err := cmd.run(e, args)
		if err != nil && !errors.Is(err, errQuit) {
			return result, fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return result, err
	}
	return "", fmt.Errorf("unknown command: %s", name)
}

func lookupParam(name string) (param, error) {
	p, ok := params[name]
	if !ok {
		return param{}, fmt.Errorf("unknown parameter: %s", name)
	}
	return p, nil
}

func setCommand(e *env, args []string) (string, error) {
	p, err := lookupParam(args[0])
	if err != nil {
		return "", err
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", fmt.Errorf("invalid value %q", args[1])
	}
	return formatValue(args[0], p.set(e.engine, v)), nil
}

func getCommand(e *env, args []string) (string, error) {
	p, err := lookupParam(args[0])
	if err != nil {
		return "", err
	}
	return formatValue(args[0], p.get(e.engine)), nil
}

func formatValue(name string, v float64) string {
	return name + " = " + strconv.FormatFloat(v, 'g', -1, 64)
}

func windowCommand(e *env, args []string) (string, error) {
	if err := e.engine.SetGrainWindow(args[0]); err != nil {
		return "", fmt.Errorf("%w (have %s)", err, strings.Join(granular.WindowNames(), ", "))
	}
	return "window = " + e.engine.GrainWindow().String(), nil
}

func statsCommand(e *env, _ []string) (string, error) {
	st := e.engine.Stats()
	return fmt.Sprintf("active %d/%d, spawned %d, dropped %d, ticks %d",
		st.ActiveGrains, st.Capacity, st.SpawnedGrains, st.DroppedSpawns, st.Ticks), nil
}

func resetCommand(e *env, _ []string) (string, error) {
	e.engine.Reset()
	return "reset", nil
}

func helpCommand(_ *env, _ []string) (string, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands: set <param> <value>, get <param>, window <name>, stats, reset, quit\n")
	b.WriteString("params:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-13s %s\n", name, params[name].help)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func quitCommand(_ *env, _ []string) (string, error) {
	return "", errQuit
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(env.out, err)
			continue
		}
		result, err := env.eval(line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintln(env.out, err)
		case result != "":
			fmt.Fprintln(env.out, result)
		}
	}
}
