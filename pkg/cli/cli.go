// Package cli parses the runner's command line and environment.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings parsed from command line arguments.
type Config struct {
	BaseDir    string        // game data directory
	EntryFile  string        // entry script name within the base directory
	CommonDir  string        // shared script directory, relative to BaseDir
	SoundFont  string        // .sf2 file for MIDI synthesis, relative to BaseDir
	Timeout    time.Duration // headless run timeout (0 means unlimited)
	LogLevel   string        // debug, info, warn, error
	Headless   bool          // run without a window
	ShowHelp   bool
}

// DefaultEntryFile is run when the positional argument names a directory.
const DefaultEntryFile = "begin.txt"

// ParseArgs parses args (not including the program name). Flags may appear
// before or after the positional path. Environment variables HEADLESS,
// TIMEOUT and LOG_LEVEL act as fallbacks when the matching flag is absent.
func ParseArgs(args []string) (*Config, error) {
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("jxscript", flag.ContinueOnError)

	config := &Config{}

	var timeoutSec int
	fs.IntVar(&timeoutSec, "timeout", 0, "timeout in seconds")
	fs.IntVar(&timeoutSec, "t", 0, "timeout in seconds (shorthand)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.StringVar(&config.CommonDir, "common", "script/common", "shared script directory relative to the data directory")
	fs.StringVar(&config.SoundFont, "soundfont", "", "SoundFont (.sf2) for MIDI music")
	fs.BoolVar(&config.Headless, "headless", false, "run without a window")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	// Environment fallbacks; flags win.
	if !config.Headless {
		if headlessEnv := os.Getenv("HEADLESS"); headlessEnv != "" {
			config.Headless = headlessEnv == "1" || strings.ToLower(headlessEnv) == "true"
		}
	}
	if timeoutSec == 0 {
		if timeoutEnv := os.Getenv("TIMEOUT"); timeoutEnv != "" {
			if t, err := strconv.Atoi(timeoutEnv); err == nil && t > 0 {
				timeoutSec = t
			}
		}
	}
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must be non-negative, got %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	// Positional argument: a script file, or a data directory to run the
	// default entry script from.
	config.EntryFile = DefaultEntryFile
	if fs.NArg() > 0 {
		path := fs.Arg(0)
		if strings.HasSuffix(strings.ToLower(path), ".txt") {
			config.BaseDir = filepath.Dir(path)
			config.EntryFile = filepath.Base(path)
		} else {
			config.BaseDir = path
		}
	}

	return config, nil
}

// reorderArgs moves flags in front of positional arguments so the stdlib
// flag parser sees them all.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			flags = append(flags, arg)
			// Non-boolean flags consume the next argument as their value.
			if i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				if !isBoolFlag(arg) {
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, arg)
		}
	}

	return append(flags, positional...)
}

func isBoolFlag(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "h", "help", "headless":
		return true
	}
	return false
}

// PrintHelp writes the usage message to stdout.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `jxscript - quest script runner

Usage:
  jxscript [options] [path]

Arguments:
  path    A script file (.txt) to run, or a game data directory
          (runs %s from its common script directory).

Options:
  -t, --timeout <seconds>     stop after the given number of seconds (default: unlimited)
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  --common <dir>              shared script directory relative to the data directory
                              (default: script/common)
  --soundfont <file>          SoundFont (.sf2) used for MIDI music
  --headless                  run without a window, auto-answering prompts
  -h, --help                  show this help

Environment Variables:
  HEADLESS=1                  enable headless mode
  TIMEOUT=<seconds>           timeout in seconds
  LOG_LEVEL=<level>           log level

Examples:
  jxscript /path/to/game                 run %s from the game directory
  jxscript /path/to/game/script/common/intro.txt
  jxscript --headless --timeout 10 demo.txt
  HEADLESS=1 jxscript /path/to/game
`, DefaultEntryFile, DefaultEntryFile)
}
