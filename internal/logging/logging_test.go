package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/bodygraph/internal/config"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.LogConfig
		verbose bool
		debug   bool
		info    bool
	}{
		{"info production", config.LogConfig{Level: "info"}, false, false, true},
		{"warn", config.LogConfig{Level: "warn"}, false, false, false},
		{"verbose overrides", config.LogConfig{Level: "error"}, true, true, true},
		{"development debug", config.LogConfig{Level: "debug", Development: true}, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.info, logger.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	_, err := New(config.LogConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}
