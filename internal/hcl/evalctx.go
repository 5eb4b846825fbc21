package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func defaultEnviron() []string {
	return os.Environ()
}

// evalContext builds the variables and functions visible to a manifest file
// located in dir.
func (l *Loader) evalContext(dir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"dir": cty.StringVal(dir),
			"env": envValue(l.environ()),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

// envValue converts KEY=VALUE pairs into a cty map of strings.
func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		key, val, ok := strings.Cut(e, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(val)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
