package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTabular = `%eval_id interface             w             t        stress  displacement
1        NO_ID     2.638943e+00  3.018896e+00  2.463662e+04  1.719323e-01
2        NO_ID     2.654310e+00  2.863902e+00  3.143335e+04  1.956357e-01
`

func TestReadTabular(t *testing.T) {
	table, err := ReadTabular(strings.NewReader(sampleTabular))
	require.NoError(t, err)

	assert.Equal(t, []string{"eval_id", "interface", "w", "t", "stress", "displacement"}, table.Columns)
	assert.Equal(t, 2, table.Len())

	stress, err := table.Column("stress")
	require.NoError(t, err)
	assert.InDelta(t, 2.463662e+04, stress[0], 1e-6)
	assert.InDelta(t, 3.143335e+04, stress[1], 1e-6)

	_, err = table.Column("interface")
	assert.ErrorContains(t, err, "bad value")

	_, err = table.Column("missing")
	assert.ErrorContains(t, err, `no column "missing"`)
}

func TestReadTabular_Malformed(t *testing.T) {
	_, err := ReadTabular(strings.NewReader(""))
	assert.ErrorContains(t, err, "tabular data is empty")

	_, err = ReadTabular(strings.NewReader("%a b\n1 2 3\n"))
	assert.ErrorContains(t, err, "has 3 fields, want 2")
}

func TestCountTabularRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dak.tab")
	require.NoError(t, os.WriteFile(path, []byte(sampleTabular), 0o644))

	n, err := CountTabularRows(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = CountTabularRows(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
