// Package study runs a single DAKOTA study: it materializes the working
// directory, writes the input deck and driver shim, supervises the DAKOTA
// process, and collects the output artifacts.
package study

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/deck"
	"github.com/dakotatools/dakgo/internal/names"
	"github.com/dakotatools/dakgo/internal/reader"
)

// Options configures how a study executes.
type Options struct {
	// BinPath is the DAKOTA executable to invoke.
	BinPath string
	// Workdir is the root directory studies run under; each study gets
	// its own subdirectory named after it.
	Workdir string
	// ShimPath is the executable the generated driver script dispatches
	// to. Empty means the running binary.
	ShimPath string
}

// Result points at the artifacts of a completed study run.
type Result struct {
	RunID       string
	Workdir     string
	OutputPath  string
	TabularPath string
	Summary     *reader.Summary
}

// Study is one runnable DAKOTA study.
type Study struct {
	name string
	deck *deck.Deck
	opts Options
}

// New creates a runnable study from a validated deck.
func New(name string, d *deck.Deck, opts Options) *Study {
	if opts.BinPath == "" {
		opts.BinPath = "dakota"
	}
	if opts.Workdir == "" {
		opts.Workdir = names.StudyDir
	}
	return &Study{name: name, deck: d, opts: opts}
}

// Name returns the study's identifier.
func (s *Study) Name() string { return s.name }

// Run executes the full study lifecycle and returns the run's artifacts.
func (s *Study) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("study", s.name)

	workdir := filepath.Join(s.opts.Workdir, s.name)
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return nil, fmt.Errorf("creating study workdir: %w", err)
	}

	text, err := s.deck.Render()
	if err != nil {
		return nil, err
	}
	deckPath := filepath.Join(workdir, names.DeckFile)
	if err := os.WriteFile(deckPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("writing input deck: %w", err)
	}

	shimPath := s.opts.ShimPath
	if shimPath == "" {
		if shimPath, err = os.Executable(); err != nil {
			return nil, fmt.Errorf("locating driver shim target: %w", err)
		}
	}
	driverName := s.deck.Interface().Driver
	script := DriverScript(shimPath, driverName)
	if err := os.WriteFile(filepath.Join(workdir, names.DriverScript), []byte(script), 0o755); err != nil {
		return nil, fmt.Errorf("writing driver script: %w", err)
	}

	args := []string{"-i", names.DeckFile, "-o", names.OutputFile, "-write_restart", names.RestartFile(0)}
	manifest := NewManifest(s.name, driverName, s.opts.BinPath, args, text)
	if err := manifest.WriteFile(filepath.Join(workdir, names.RunManifest)); err != nil {
		return nil, err
	}

	logger.Info("🚀 Starting DAKOTA study.", "run_id", manifest.RunID, "workdir", workdir)

	procCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stderr bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		watchProgress(procCtx, workdir, names.TabularFile)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		cmd := exec.CommandContext(procCtx, s.opts.BinPath, args...)
		cmd.Dir = workdir
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dakota run failed: %w%s", err, stderrTail(&stderr))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outPath := filepath.Join(workdir, names.OutputFile)
	outBytes, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("dakota produced no output file: %w", err)
	}

	tabPath := filepath.Join(workdir, names.TabularFile)
	var table *reader.Table
	if t, err := reader.LoadTabular(tabPath); err == nil {
		table = t
	}

	summary := reader.Summarize(string(outBytes), table)
	summaryFile, err := os.Create(filepath.Join(workdir, names.SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("creating summary file: %w", err)
	}
	defer summaryFile.Close()
	if err := summary.WriteYAML(summaryFile); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	logger.Info("🏁 Study finished.", "run_id", manifest.RunID, "evaluations", summary.Evaluations)

	return &Result{
		RunID:       manifest.RunID,
		Workdir:     workdir,
		OutputPath:  outPath,
		TabularPath: tabPath,
		Summary:     summary,
	}, nil
}

// stderrTail formats the last few lines of DAKOTA's stderr for error
// messages.
func stderrTail(buf *bytes.Buffer) string {
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return "\nstderr: " + strings.Join(lines, "\n        ")
}
