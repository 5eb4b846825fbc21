package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gridsolve/internal/config"
	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/fsutil"
	"github.com/vk/gridsolve/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// environ supplies the `env` variable. Defaults to os.Environ.
	environ func() []string
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{environ: defaultEnviron}
}

// Load finds every .hcl file under paths, decodes its puzzle blocks and
// merges them into one manifest. Job names must be unique across files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	manifest := &config.Manifest{}
	declared := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		dir, err := filepath.Abs(filepath.Dir(file))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve directory of %s: %w", file, err)
		}
		evalCtx := l.evalContext(dir)

		var root schema.ManifestFile
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Puzzles {
			if prev, ok := declared[p.Name]; ok {
				return nil, fmt.Errorf("puzzle %q in %s already declared in %s", p.Name, file, prev)
			}
			declared[p.Name] = file

			job, err := translatePuzzle(ctx, p, file, dir, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			manifest.Jobs = append(manifest.Jobs, job)
		}
		logger.Debug("Loaded manifest file.", "file", file, "puzzles", len(root.Puzzles))
	}

	logger.Debug("HCL loading complete.", "jobs", len(manifest.Jobs))
	return manifest, nil
}
