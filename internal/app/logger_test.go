package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Run("debug enables debug records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("debug", "text", &buf)
		logger.Debug("noisy detail")
		assert.Contains(t, buf.String(), "noisy detail")
	})

	t.Run("warn suppresses info records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("warn", "text", &buf)
		logger.Info("routine chatter")
		logger.Warn("something odd")
		assert.NotContains(t, buf.String(), "routine chatter")
		assert.Contains(t, buf.String(), "something odd")
	})

	t.Run("empty level defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("", "text", &buf)
		logger.Debug("hidden")
		logger.Info("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown level panics", func(t *testing.T) {
		require.PanicsWithValue(t, `invalid log level "verbose"`, func() {
			newLogger("verbose", "text", &bytes.Buffer{})
		})
	})
}

func TestNewLogger_Formats(t *testing.T) {
	var jsonBuf bytes.Buffer
	newLogger("info", "json", &jsonBuf).Info("hello")
	assert.True(t, strings.HasPrefix(jsonBuf.String(), "{"), "json handler should emit JSON objects")

	var textBuf bytes.Buffer
	newLogger("info", "text", &textBuf).Info("hello")
	assert.Contains(t, textBuf.String(), "msg=hello")
}
