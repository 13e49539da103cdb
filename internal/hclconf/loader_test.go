package hclconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/deck"
)

const cantileverStudy = `
study "cantilever_uq" {
  variables {
    normal "w" {
      mean          = 2.5
      std_deviation = 0.01
    }
    normal "t" {
      mean          = 3.0
      std_deviation = 0.01
    }
    uniform "X" {
      lower_bound = 400.0
      upper_bound = 600.0
    }
    state "length" {
      type  = "real"
      value = 100.0
    }
  }

  method {
    sampling {
      sample_type = "lhs"
      samples     = 100
      seed        = 34785
    }
  }

  responses {
    functions = ["stress", "displacement"]
  }

  interface {
    driver       = "cantilever"
    concurrency  = 4
    asynchronous = true
  }
}
`

func loadString(t *testing.T, hclText string) (*config.Model, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hclText), 0o644))
	return NewLoader().Load(context.Background(), dir)
}

func TestLoad_FullStudy(t *testing.T) {
	model, err := loadString(t, cantileverStudy)
	require.NoError(t, err)
	require.Len(t, model.Studies, 1)

	s := model.Studies[0]
	assert.Equal(t, "cantilever_uq", s.Name)
	assert.Equal(t, []string{"w", "t", "X", "length"}, s.Deck.Descriptors())

	m, ok := s.Deck.Method().(*deck.Sampling)
	require.True(t, ok)
	assert.Equal(t, deck.SampleLHS, m.SampleType)
	assert.Equal(t, 100, m.Samples)
	assert.Equal(t, int64(34785), m.Seed)

	iface := s.Deck.Interface()
	assert.Equal(t, "cantilever", iface.Driver)
	assert.Equal(t, 4, iface.Concurrency)
	assert.True(t, iface.Asynchronous)

	text, err := s.Deck.Render()
	require.NoError(t, err)
	assert.Contains(t, text, "normal_uncertain  2")
	assert.Contains(t, text, "uniform_uncertain  1")
	assert.Contains(t, text, "continuous_state  1")
	assert.Contains(t, text, "seed = 34785")
}

func TestLoad_DependsOnAndMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	first := `
study "screening" {
  variables {
    uniform "x" {
      lower_bound = 0.0
      upper_bound = 1.0
    }
  }
  method {
    sampling {
      samples = 10
    }
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`
	second := `
study "refinement" {
  depends_on = ["screening"]
  variables {
    uniform "x" {
      lower_bound = 0.4
      upper_bound = 0.6
    }
  }
  method {
    sampling {
      sample_type = "lhs"
      samples     = 200
    }
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "screening.hcl"), []byte(first), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "refinement.hcl"), []byte(second), 0o644))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Studies, 2)

	refinement, ok := model.Study("refinement")
	require.True(t, ok)
	assert.Equal(t, []string{"screening"}, refinement.DependsOn)

	// Unset sample_type falls back to plain Monte Carlo.
	screening, _ := model.Study("screening")
	m := screening.Deck.Method().(*deck.Sampling)
	assert.Equal(t, deck.SampleRandom, m.SampleType)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		hcl     string
		wantErr string
	}{
		{
			"syntax error",
			"study \"a\" {\n  variables {\n",
			"failed to parse",
		},
		{
			"no method",
			`
study "a" {
  variables {
    uniform "x" {
      lower_bound = 0.0
      upper_bound = 1.0
    }
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`,
			"missing method block",
		},
		{
			"two methods",
			`
study "a" {
  variables {
    uniform "x" {
      lower_bound = 0.0
      upper_bound = 1.0
    }
  }
  method {
    sampling {
      samples = 10
    }
    quasi_newton {}
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`,
			"more than one method",
		},
		{
			"state type mismatch",
			`
study "a" {
  variables {
    state "mode" {
      type  = "integer"
      value = "bee"
    }
  }
  method {
    sampling {
      samples = 10
    }
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`,
			"value is not a number",
		},
		{
			"unknown dependency",
			`
study "a" {
  depends_on = ["ghost"]
  variables {
    uniform "x" {
      lower_bound = 0.0
      upper_bound = 1.0
    }
  }
  method {
    sampling {
      samples = 10
    }
  }
  responses {
    functions = ["f"]
  }
  interface {
    driver = "shell"
  }
}
`,
			`depends on unknown study "ghost"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadString(t, tc.hcl)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "no .hcl study files found")
}
