package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/gridsolve/internal/config"
	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/registry"
)

// ErrAnswerMismatch is returned by Run when a job's answer differs from its
// declared expectation.
var ErrAnswerMismatch = errors.New("answer does not match expected value")

// Run plans the jobs, solves every selected puzzle part and writes one line
// per answer to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	jobs, err := a.plan(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Jobs planned.", "count", len(jobs))

	solved, mismatches := 0, 0
	for _, job := range jobs {
		puzzles, err := a.puzzlesFor(job)
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}

		for _, p := range puzzles {
			answer := a.Solve(ctx, p, job.InputPath)
			solved++
			fmt.Fprintf(a.outW, "day %d part %d: %d\n", p.Day, p.Part, answer)

			if job.Expect != nil && *job.Expect != answer {
				a.logger.Error("Answer does not match expectation.", "job", job.Name, "day", p.Day, "part", p.Part, "want", *job.Expect, "got", answer)
				mismatches++
			}
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d answers", ErrAnswerMismatch, mismatches, solved)
	}
	a.logger.Debug("App.Run method finished.", "solved", solved)
	return nil
}

// plan turns the configuration into jobs: every manifest job first, then the
// job described by the command line.
func (a *App) plan(ctx context.Context) ([]*config.Job, error) {
	var jobs []*config.Job

	if a.config.ManifestPath != "" {
		manifest, err := a.loader.Load(ctx, a.config.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		jobs = append(jobs, manifest.Jobs...)
	}

	if a.config.InputPath != "" {
		day := a.config.Day
		if day == 0 {
			day = a.registry.LatestDay()
			a.logger.Debug("No day selected, using latest.", "day", day)
		}
		jobs = append(jobs, &config.Job{
			Name:      "cli",
			Day:       day,
			Part:      a.config.Part,
			InputPath: a.config.InputPath,
		})
	}

	if len(jobs) == 0 {
		return nil, ErrNoInput
	}
	return jobs, nil
}

// puzzlesFor resolves the registered solvers a job selects.
func (a *App) puzzlesFor(job *config.Job) ([]*registry.RegisteredPuzzle, error) {
	if job.Part != 0 {
		p, err := a.registry.Lookup(job.Day, job.Part)
		if err != nil {
			return nil, err
		}
		return []*registry.RegisteredPuzzle{p}, nil
	}

	parts := a.registry.Parts(job.Day)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: day %d", registry.ErrUnknownPuzzle, job.Day)
	}
	return parts, nil
}
