package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jackielii/facultypage/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		verbose bool
		want    zapcore.Level
	}{
		{"production info", config.LogConfig{Level: "info"}, false, zapcore.InfoLevel},
		{"development warn", config.LogConfig{Level: "warn", Development: true}, false, zapcore.WarnLevel},
		{"verbose", config.LogConfig{Level: "error"}, true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"}, false)
	assert.ErrorContains(t, err, "parse log level")
}
