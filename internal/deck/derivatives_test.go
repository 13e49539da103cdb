package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderGradients(g *Gradients) string {
	var b strings.Builder
	g.render(&b)
	return b.String()
}

func renderHessians(h *Hessians) string {
	var b strings.Builder
	h.render(&b)
	return b.String()
}

func TestGradients_Validate(t *testing.T) {
	cases := []struct {
		name    string
		g       Gradients
		wantErr string
	}{
		{"none is valid", Gradients{Type: DerivativeNone}, ""},
		{"numerical with options", Gradients{
			Type: DerivativeNumerical, MethodSource: SourceDakota, IntervalType: IntervalForward,
		}, ""},
		{"unknown type", Gradients{Type: "guesswork"}, "gradient type must be one of"},
		{"unknown source", Gradients{Type: DerivativeNumerical, MethodSource: "psychic"}, "method_source must be one of"},
		{"unknown interval", Gradients{Type: DerivativeNumerical, IntervalType: "sideways"}, "interval_type must be one of"},
		{"id lists need mixed", Gradients{Type: DerivativeNumerical, IDAnalytic: []int{1}}, "require mixed gradients"},
		{"mixed with ids", Gradients{Type: DerivativeMixed, IDAnalytic: []int{1}, IDNumerical: []int{2}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestGradients_Render(t *testing.T) {
	assert.Equal(t, "\tno_gradients\n", renderGradients(nil))
	assert.Equal(t, "\tno_gradients\n", renderGradients(&Gradients{Type: DerivativeNone}))

	g := &Gradients{
		Type:        DerivativeMixed,
		IDAnalytic:  []int{1, 2},
		IDNumerical: []int{3},
		StepSizes:   []float64{0.001, 0.002},
	}
	require.NoError(t, g.Validate())
	text := renderGradients(g)
	assert.Contains(t, text, "mixed_gradients")
	assert.Contains(t, text, "id_analytic_gradients 1 2")
	assert.Contains(t, text, "id_numerical_gradients 3")
	assert.Contains(t, text, "fd_gradient_step_size 0.001 0.002")
}

func TestHessians_Validate(t *testing.T) {
	cases := []struct {
		name    string
		h       Hessians
		wantErr string
	}{
		{"quasi requires approximation", Hessians{Type: HessianQuasi}, "quasi approximation is required"},
		{"quasi with bfgs", Hessians{Type: HessianQuasi, QuasiApproximation: QuasiBFGS}, ""},
		{"approximation without quasi", Hessians{Type: DerivativeNumerical, QuasiApproximation: QuasiSR1}, "may only be used with quasi hessians"},
		{"damped requires bfgs", Hessians{Type: HessianQuasi, QuasiApproximation: QuasiSR1, Damped: true}, "damped may only be used"},
		{"damped bfgs ok", Hessians{Type: HessianQuasi, QuasiApproximation: QuasiBFGS, Damped: true}, ""},
		{"mixed quasi ids", Hessians{Type: DerivativeMixed, IDQuasi: []int{2}, QuasiApproximation: QuasiSR1}, ""},
		{"unknown scaling", Hessians{Type: DerivativeNumerical, StepScaling: "vibes"}, "step_scaling must be one of"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.h.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestHessians_Render(t *testing.T) {
	assert.Equal(t, "\tno_hessians\n", renderHessians(nil))

	h := &Hessians{
		Type:               HessianQuasi,
		QuasiApproximation: QuasiBFGS,
		Damped:             true,
		StepScaling:        ScalingBounds,
	}
	require.NoError(t, h.Validate())
	text := renderHessians(h)
	assert.Contains(t, text, "quasi_hessians")
	assert.Contains(t, text, "bfgs damped")
	assert.Contains(t, text, "\t\tbounds")

	mixed := &Hessians{
		Type:               DerivativeMixed,
		IDQuasi:            []int{3},
		IDNumerical:        []int{1},
		QuasiApproximation: QuasiSR1,
		StepSizes:          []float64{0.01},
	}
	require.NoError(t, mixed.Validate())
	text = renderHessians(mixed)
	assert.Contains(t, text, "mixed_hessians")
	assert.Contains(t, text, "id_numerical_hessians 1")
	assert.Contains(t, text, "id_quasi_hessians 3 sr1")
	assert.Contains(t, text, "fd_hessian_step_size 0.01")
}
