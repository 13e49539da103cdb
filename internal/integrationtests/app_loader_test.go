package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakotatools/dakgo/internal/testutil"
)

const beamStudy = `
study "beam_uq" {
  variables {
    normal "w" {
      mean          = 2.5
      std_deviation = 0.01
    }
    normal "t" {
      mean          = 3.0
      std_deviation = 0.01
    }
  }

  method {
    sampling {
      sample_type = "lhs"
      samples     = 50
      seed        = 12345
    }
  }

  responses {
    functions = ["stress", "displacement"]
  }

  interface {
    driver = "cantilever"
  }
}
`

func TestAppLoadsValidStudy(t *testing.T) {
	result := testutil.LoadStudies(t, map[string]string{"main.hcl": beamStudy})
	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	model := result.App.Model()
	require.Len(t, model.Studies, 1)
	assert.Equal(t, "beam_uq", model.Studies[0].Name)
	assert.Equal(t, "cantilever", model.Studies[0].Deck.Interface().Driver)

	assert.Contains(t, result.App.Registry().Names(), "cantilever")
	assert.Contains(t, result.App.Registry().Names(), "shell")
}

func TestAppRejectsMalformedStudy(t *testing.T) {
	result := testutil.LoadStudies(t, map[string]string{
		"main.hcl": `study "broken" { variables {`,
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "failed to parse")
}

func TestAppRejectsUnknownDriver(t *testing.T) {
	study := `
study "orphan" {
  variables {
    normal "x" {
      mean          = 1.0
      std_deviation = 0.1
    }
  }
  method {
    sampling {
      samples = 10
    }
  }
  responses {
    functions = ["y"]
  }
  interface {
    driver = "no_such_driver"
  }
}
`
	result := testutil.LoadStudies(t, map[string]string{"main.hcl": study})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `unregistered driver "no_such_driver"`)
}

func TestAppLoadsStudiesAcrossFiles(t *testing.T) {
	second := `
study "beam_refine" {
  depends_on = ["beam_uq"]

  variables {
    normal "w" {
      mean          = 2.5
      std_deviation = 0.001
    }
    normal "t" {
      mean          = 3.0
      std_deviation = 0.001
    }
  }
  method {
    sampling {
      samples = 200
    }
  }
  responses {
    functions = ["stress"]
  }
  interface {
    driver = "cantilever"
  }
}
`
	result := testutil.LoadStudies(t, map[string]string{
		"beam.hcl":   beamStudy,
		"refine.hcl": second,
	})
	require.NoError(t, result.Err)

	model := result.App.Model()
	require.Len(t, model.Studies, 2)

	refine, ok := model.Study("beam_refine")
	require.True(t, ok)
	assert.Equal(t, []string{"beam_uq"}, refine.DependsOn)
}
