package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/gridsolve/internal/ctxlog"
)

// ValidateRegistry checks that every registered day numbers its parts
// contiguously from 1, so "all parts of a day" is well defined.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	days := make(map[int][]int)
	for _, k := range r.Keys() {
		days[k.Day] = append(days[k.Day], k.Part)
	}

	for day, parts := range days {
		for i, part := range parts {
			if part != i+1 {
				errs = append(errs, fmt.Sprintf("day %d: expected part %d, found part %d", day, i+1, part))
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "days", len(days), "puzzles", r.Len())
	return nil
}
