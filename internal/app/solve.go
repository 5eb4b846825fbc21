package app

import (
	"context"
	"slices"

	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/fsutil"
	"github.com/vk/gridsolve/internal/registry"
)

// Solve runs one puzzle part against the file at path. Input that cannot be
// read, or that the solver rejects, is logged and reported as 0.
func (a *App) Solve(ctx context.Context, p *registry.RegisteredPuzzle, path string) int {
	logger := ctxlog.FromContext(ctx).With("day", p.Day, "part", p.Part)

	lines, err := fsutil.ReadLines(path)
	if err != nil {
		logger.Error("Error reading input for puzzle.", "path", path, "error", err)
		return 0
	}
	logger.Debug("Input read.", "path", path, "lines", len(lines))

	answer, err := p.Fn(ctx, slices.Values(lines))
	if err != nil {
		logger.Error("Puzzle solver rejected input.", "path", path, "error", err)
		return 0
	}

	logger.Info("Puzzle solved.", "title", p.Title, "answer", answer)
	return answer
}
