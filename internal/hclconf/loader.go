// Package hclconf loads study definitions from HCL files and translates
// them into the format-agnostic config model.
package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/fsutil"
	"github.com/dakotatools/dakgo/internal/schema"
)

// Loader parses .hcl study files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates an HCL study loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load discovers all .hcl files under the given paths, parses them, and
// translates every study block into the unified model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("discovering study files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered study files.", "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl study files found under %v", paths)
	}

	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var parsed schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, s := range parsed.Studies {
			study, err := translateStudy(s)
			if err != nil {
				return nil, fmt.Errorf("%s: study %q: %w", file, s.Name, err)
			}
			logger.Debug("Translated study.", "name", study.Name, "file", file)
			model.Studies = append(model.Studies, study)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}
