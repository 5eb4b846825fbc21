package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gridsolve/internal/app"
	"github.com/vk/gridsolve/internal/cli"
	"github.com/vk/gridsolve/internal/hcl"
	"github.com/vk/gridsolve/internal/registry"
)

// main is the entrypoint for the gridsolve application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Answers go to outW, logs and usage errors to errW. A nil modules
// list selects the core puzzle modules.
func run(outW, errW io.Writer, args []string, modules ...registry.Module) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on an inconsistent registry, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	gridApp := app.NewApp(outW, errW, appConfig, loader, modules...)

	return gridApp.Run(context.Background())
}
