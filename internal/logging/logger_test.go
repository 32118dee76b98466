package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("NOWBAR_LOG_LEVEL", "debug")
	t.Setenv("NOWBAR_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewFromEnvIgnoresUnknownFormat(t *testing.T) {
	t.Setenv("NOWBAR_LOG_LEVEL", "nonsense")
	t.Setenv("NOWBAR_LOG_FORMAT", "xml")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := New(DefaultConfig()).With().Str("component", "test").Logger()

	ctx := WithContext(context.Background(), logger)
	got := FromContext(ctx)
	assert.Equal(t, logger.GetLevel(), got.GetLevel())
}

func TestFromContextWithoutLoggerIsSafe(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotPanics(t, func() {
		log.Info().Msg("no-op on the disabled logger")
	})
}
