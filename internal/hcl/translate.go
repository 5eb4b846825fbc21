package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/gridsolve/internal/config"
	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translatePuzzle converts the HCL-specific puzzle schema into a config.Job.
// Relative input paths are resolved against dir, the manifest's directory.
func translatePuzzle(ctx context.Context, p *schema.Puzzle, file, dir string, evalCtx *hcl.EvalContext) (*config.Job, error) {
	input := p.Input
	if input != "" && !filepath.IsAbs(input) {
		input = filepath.Join(dir, input)
	}

	job := &config.Job{
		Name:      p.Name,
		Day:       p.Day,
		Part:      p.Part,
		InputPath: input,
		Source:    file,
	}

	expect, err := decodeExpect(ctx, p.Expect, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q at %s: %w", p.Name, p.DefRange, err)
	}
	job.Expect = expect

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// decodeExpect evaluates the optional expect attribute. A null value means
// the attribute was not set.
func decodeExpect(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (*int, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("expect must be a number, got %s: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Number) {
		ctxlog.FromContext(ctx).Debug("Implicitly converted expect value.", "from", val.Type().FriendlyName())
	}

	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return nil, fmt.Errorf("expect must be a whole number: %w", err)
	}
	return &n, nil
}
