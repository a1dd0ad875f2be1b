package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/stigoleg/nosleep/internal/hotkey"
	"github.com/stigoleg/nosleep/internal/keepalive"
	"github.com/stigoleg/nosleep/internal/platform"
	"github.com/stigoleg/nosleep/internal/util"
)

// Config holds everything the entry point needs to run one session.
type Config struct {
	// Minutes is 0 when the duration should be read from stdin.
	Minutes     int
	Plain       bool
	LogPath     string
	ShowVersion bool

	// Fixed defaults, passed explicitly to the components that use them.
	PowerFlags     platform.PowerFlags
	KillSwitch     hotkey.Chord
	PollInterval   time.Duration
	CleanupTimeout time.Duration
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		PowerFlags:     platform.DefaultPowerFlags(),
		KillSwitch:     hotkey.DefaultChord(),
		PollInterval:   keepalive.DefaultPollInterval,
		CleanupTimeout: keepalive.DefaultCleanupTimeout,
	}
}

// ParseFlags parses command-line arguments (without the program name).
// Usage text goes to out; -h returns flag.ErrHelp.
func ParseFlags(args []string, out io.Writer) (*Config, error) {
	return ParseFlagsWithNow(args, out, time.Now())
}

// ParseFlagsWithNow is like ParseFlags but resolves --clock against now.
func ParseFlagsWithNow(args []string, out io.Writer, now time.Time) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet("nosleep", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.Usage = func() {
		fmt.Fprint(out, usage)
	}

	duration := flags.String("duration", "", "Minutes to keep the system awake (e.g., \"90\")")
	flags.StringVar(duration, "d", "", "Minutes to keep the system awake (e.g., \"90\")")
	clock := flags.String("clock", "", "Keep the system awake until this time (e.g., \"22:00\" or \"10:00PM\")")
	flags.StringVar(clock, "c", "", "Keep the system awake until this time (e.g., \"22:00\" or \"10:00PM\")")
	flags.BoolVar(&cfg.Plain, "plain", false, "Print status lines only, without the live countdown")
	flags.StringVar(&cfg.LogPath, "log", "", "Write debug logs to this file")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if *duration != "" && *clock != "" {
		return nil, errors.New("cannot use both --duration and --clock")
	}

	if *duration != "" {
		minutes, err := util.ParseMinutes(*duration)
		if err != nil {
			return nil, err
		}
		cfg.Minutes = minutes
	}

	if *clock != "" {
		target, err := util.ParseTimeStringWithNow(*clock, now)
		if err != nil {
			return nil, err
		}
		cfg.Minutes = util.MinutesUntil(target, now)
	}

	return cfg, nil
}

const usage = `nosleep - keep the system awake for a while

Usage:
  nosleep [flags]

Flags:
  -d, --duration string   Minutes to keep the system awake (e.g., "90")
  -c, --clock string      Keep the system awake until this time (e.g., "22:00")
      --plain             Print status lines only, without the live countdown
      --log string        Write debug logs to this file
  -v, --version           Show version information
  -h, --help              Show help message

Without --duration or --clock the number of minutes is read from stdin.
Press ctrl+shift+q anywhere to restore normal sleep settings early.
`
