// Package shell implements a generic analysis driver that delegates each
// evaluation to an external command. The command is given as the first
// analysis component; additional components become its arguments.
//
// The driver stages a key=value input file for the command and reads one
// float per line back from the command's output file.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/driver"
)

// File names exchanged with the external command, relative to the
// evaluation directory.
const (
	inputFile  = "analysis.in"
	outputFile = "analysis.out"
)

// Module registers the shell driver.
type Module struct{}

func (Module) Register(r *driver.Registry) { r.Register("shell", newDriver) }

func newDriver(components []string) (driver.Driver, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("shell driver requires the command as its first analysis component")
	}
	return &command{name: components[0], args: components[1:]}, nil
}

type command struct {
	name string
	args []string
}

// WriteInputs stages the key=value file the external command reads.
func (c *command) WriteInputs(ctx context.Context, p *driver.Params) error {
	var b strings.Builder
	fmt.Fprintf(&b, "eval_id=%d\n", p.EvalID)
	for _, v := range p.Variables {
		fmt.Fprintf(&b, "%s=%s\n", v.Descriptor, v.Raw)
	}
	if err := os.WriteFile(inputFile, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("staging analysis input: %w", err)
	}
	return nil
}

func (c *command) RunAnalysis(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Running external analysis.", "command", c.name, "args", c.args)

	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("analysis command %q failed: %w", c.name, err)
	}
	return nil
}

// GetResults reads one float per line from the command's output file, in
// response function order.
func (c *command) GetResults(ctx context.Context, p *driver.Params, res *driver.Results) error {
	f, err := os.Open(outputFile)
	if err != nil {
		return fmt.Errorf("analysis produced no output file: %w", err)
	}
	defer f.Close()

	values := make([]float64, 0, len(p.Requests))
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// lines may carry a trailing label, keep the first field only
		v, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			return fmt.Errorf("malformed analysis output line %q: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading analysis output: %w", err)
	}
	if len(values) < len(p.Requests) {
		return fmt.Errorf("analysis output has %d values, study expects %d", len(values), len(p.Requests))
	}

	for i, req := range p.Requests {
		if req.Active&(driver.GradientBit|driver.HessianBit) != 0 {
			return fmt.Errorf("shell driver computes function values only, %q requested derivatives", req.Descriptor)
		}
		if req.Active&driver.ValueBit != 0 {
			res.SetFunction(req.Descriptor, values[i])
		}
	}
	return nil
}
