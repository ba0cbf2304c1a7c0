package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}

func TestInitPrecedence(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Out = &buf

	logger := Init("safefloat", cfg, "")
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel(), "environment overrides the default")
	logger.Warn().Msg("hidden")
	assert.Empty(t, buf.String())

	logger = Init("safefloat", cfg, "debug")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel(), "flag overrides the environment")
	logger.Debug().Str("phase", "scan").Msg("visible")
	out := buf.String()
	assert.True(t, strings.Contains(out, "visible") && strings.Contains(out, "phase=scan"), out)
}
