package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gridsolve/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridsolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
GridSolve - Counts XMAS words and X-shaped MAS crosses in letter grids.

Usage:
  gridsolve [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a puzzle input file, one grid row or record per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	dayFlag := flagSet.Int("day", 0, "Puzzle day to solve. 0 selects the latest registered day.")
	partFlag := flagSet.Int("part", 0, "Puzzle part to solve. 0 solves every part of the day.")
	configFlag := flagSet.String("config", "", "Path to an .hcl run manifest or a directory of manifests.")
	cFlag := flagSet.String("c", "", "Path to an .hcl run manifest (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT_PATH, got %d", flagSet.NArg())}
	}
	inputPath := flagSet.Arg(0)

	manifestPath := *configFlag
	if manifestPath == "" {
		manifestPath = *cFlag
	}
	slog.Debug("Paths determined.", "input", inputPath, "manifest", manifestPath)

	if inputPath == "" && manifestPath == "" {
		slog.Debug("No input or manifest provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:    inputPath,
		ManifestPath: manifestPath,
		Day:          *dayFlag,
		Part:         *partFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
