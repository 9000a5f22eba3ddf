package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/dnsdig/internal/logging"
)

func TestConfigureReturnsLogger(t *testing.T) {
	logger := logging.Configure("info", "text")
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
}

func TestConfigureLevels(t *testing.T) {
	tests := []struct {
		level       string
		wantDebug   bool
		wantWarnLog bool
	}{
		{level: "debug", wantDebug: true, wantWarnLog: true},
		{level: "info", wantDebug: false, wantWarnLog: true},
		{level: "WARN", wantDebug: false, wantWarnLog: true},
		{level: "warning", wantDebug: false, wantWarnLog: true},
		{level: "error", wantDebug: false, wantWarnLog: false},
		{level: "bogus", wantDebug: false, wantWarnLog: true},
		{level: "", wantDebug: false, wantWarnLog: true},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.Configure(tt.level, "text")
			assert.Equal(t, tt.wantDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantWarnLog, logger.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestConfigureFormats(t *testing.T) {
	for _, format := range []string{"text", "json", "JSON", "unknown"} {
		t.Run(format, func(t *testing.T) {
			assert.NotNil(t, logging.Configure("info", format))
		})
	}
}
