package shell

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakotatools/dakgo/internal/driver"
)

// chdir mirrors t.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func params() *driver.Params {
	return &driver.Params{
		EvalID: 3,
		Variables: []driver.VariableValue{
			{Descriptor: "x", Value: 1.5, Raw: "1.500000000000000e+00"},
			{Descriptor: "material", Raw: "steel"},
		},
		Requests: []driver.ResponseRequest{
			{Descriptor: "mass", Active: driver.ValueBit},
			{Descriptor: "cost", Active: driver.ValueBit},
		},
	}
}

func TestNewDriver(t *testing.T) {
	_, err := newDriver(nil)
	assert.ErrorContains(t, err, "requires the command")

	d, err := newDriver([]string{"solver", "--fast"})
	require.NoError(t, err)
	c := d.(*command)
	assert.Equal(t, "solver", c.name)
	assert.Equal(t, []string{"--fast"}, c.args)
}

func TestWriteInputs(t *testing.T) {
	chdir(t, t.TempDir())

	d, err := newDriver([]string{"true"})
	require.NoError(t, err)
	require.NoError(t, d.WriteInputs(context.Background(), params()))

	data, err := os.ReadFile(inputFile)
	require.NoError(t, err)
	assert.Equal(t, "eval_id=3\nx=1.500000000000000e+00\nmaterial=steel\n", string(data))
}

func TestRunAnalysis(t *testing.T) {
	chdir(t, t.TempDir())
	ctx := context.Background()

	d, err := newDriver([]string{"true"})
	require.NoError(t, err)
	assert.NoError(t, d.RunAnalysis(ctx))

	bad, err := newDriver([]string{"false"})
	require.NoError(t, err)
	assert.ErrorContains(t, bad.RunAnalysis(ctx), `command "false" failed`)
}

func TestGetResults(t *testing.T) {
	ctx := context.Background()

	t.Run("reads values in request order", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(outputFile, []byte("# solver v2\n12.5 mass\n3.75\n"), 0o644))

		d, err := newDriver([]string{"true"})
		require.NoError(t, err)

		p := params()
		res := driver.NewResults(p)
		require.NoError(t, d.GetResults(ctx, p, res))

		var out strings.Builder
		require.NoError(t, res.Write(&out))
		assert.Contains(t, out.String(), "mass")
		assert.Contains(t, out.String(), "cost")
	})

	t.Run("missing output file", func(t *testing.T) {
		chdir(t, t.TempDir())
		d, err := newDriver([]string{"true"})
		require.NoError(t, err)
		err = d.GetResults(ctx, params(), driver.NewResults(params()))
		assert.ErrorContains(t, err, "no output file")
	})

	t.Run("too few values", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(outputFile, []byte("12.5\n"), 0o644))
		d, err := newDriver([]string{"true"})
		require.NoError(t, err)
		err = d.GetResults(ctx, params(), driver.NewResults(params()))
		assert.ErrorContains(t, err, "study expects 2")
	})

	t.Run("derivatives rejected", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(outputFile, []byte("1\n2\n"), 0o644))
		d, err := newDriver([]string{"true"})
		require.NoError(t, err)
		p := params()
		p.Requests[1].Active |= driver.GradientBit
		err = d.GetResults(ctx, p, driver.NewResults(p))
		assert.ErrorContains(t, err, "function values only")
	})
}
