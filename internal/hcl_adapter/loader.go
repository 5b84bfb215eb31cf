// Package hcl_adapter implements the config interfaces for HCL flow
// files: it discovers and parses .hcl files, translates them into the
// format-agnostic model, and binds block arguments to Go parameter
// structs.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/flowgridgo/internal/config"
	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/fsutil"
	"github.com/specialistvlad/flowgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader
// interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks
// from any file.
type fileRoot struct {
	Flows  []*schema.Flow `hcl:"flow,block"`
	Remain hcl.Body       `hcl:",remain"`
}

// Load orchestrates the entire HCL configuration loading process. It
// is agnostic to the origin of the paths and accepts both files and
// directories.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	hclFiles, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	seen := make(map[string]string)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, f := range root.Flows {
			if prev, dup := seen[f.Name]; dup {
				return nil, nil, fmt.Errorf("flow %q in %s is already defined in %s", f.Name, file, prev)
			}
			seen[f.Name] = file
			model.Flows = append(model.Flows, l.translateFlow(f))
		}
		logger.Debug("Loaded flow definitions from file.", "file", file, "flows", len(root.Flows))
	}

	logger.Debug("HCL loading complete.", "flows", len(model.Flows))
	return model, NewConverter(), nil
}
