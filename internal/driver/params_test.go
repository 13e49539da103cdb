package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cantileverParams = `                                          2 variables
                      1.500000000000000e+00 w
                      2.500000000000000e+00 t
                                          2 functions
                                          1 ASV_1:stress
                                          3 ASV_2:displacement
                                          2 derivative_variables
                                          1 DVV_1:w
                                          2 DVV_2:t
                                          1 analysis_components
                                 cantilever AC_1
                                          7 eval_id
`

func TestParseParams(t *testing.T) {
	p, err := ParseParams(strings.NewReader(cantileverParams))
	require.NoError(t, err)

	assert.Equal(t, 7, p.EvalID)

	require.Len(t, p.Variables, 2)
	assert.Equal(t, "w", p.Variables[0].Descriptor)
	assert.Equal(t, 1.5, p.Variables[0].Value)
	assert.Equal(t, "t", p.Variables[1].Descriptor)
	assert.Equal(t, 2.5, p.Variables[1].Value)

	w, ok := p.Value("w")
	require.True(t, ok)
	assert.Equal(t, 1.5, w)
	_, ok = p.Value("nope")
	assert.False(t, ok)

	require.Len(t, p.Requests, 2)
	assert.Equal(t, ResponseRequest{Descriptor: "stress", Active: ValueBit}, p.Requests[0])
	assert.Equal(t, ResponseRequest{Descriptor: "displacement", Active: ValueBit | GradientBit}, p.Requests[1])

	assert.Equal(t, []string{"w", "t"}, p.DerivativeVariables)
	assert.Equal(t, []string{"cantilever"}, p.AnalysisComponents)
}

func TestParseParams_StringState(t *testing.T) {
	text := `                                          2 variables
                      4.000000000000000e+00 x
                                       fast mode
                                          1 functions
                                          1 ASV_1:f
                                          0 derivative_variables
                                          0 analysis_components
                                          1 eval_id
`
	p, err := ParseParams(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, "fast", p.Variables[1].Raw)
	assert.Equal(t, float64(0), p.Variables[1].Value)
}

func TestParseParams_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"empty", "", "missing variables section"},
		{"wrong section", "3 bananas\n", `expected variables section, found "bananas"`},
		{"truncated variables", "2 variables\n1.0 x\n", "variables section truncated"},
		{"bad asv", "0 variables\n1 functions\n9 ASV_1:f\n", "invalid active set value"},
		{"dvv out of range", "1 variables\n1.0 x\n1 functions\n1 ASV_1:f\n1 derivative_variables\n4 DVV_1:x\n", "out of range"},
		{"missing eval id", "0 variables\n0 functions\n0 derivative_variables\n0 analysis_components\n", "missing eval_id"},
		{"three tokens", "1 2 variables\n", "malformed parameters line"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseParams(strings.NewReader(tc.text))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
