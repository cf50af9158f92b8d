package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/internal/log"
)

func TestSetGlobalLogger(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, log.SetGlobalLogger("info")) })

	tests := map[string]struct {
		level   string
		enabled zapcore.Level
		wantErr bool
	}{
		"debug":         {level: "debug", enabled: zapcore.DebugLevel},
		"upper case":    {level: "WARN", enabled: zapcore.WarnLevel},
		"error":         {level: "error", enabled: zapcore.ErrorLevel},
		"unknown level": {level: "loud", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			before := log.Logger
			err := log.SetGlobalLogger(tc.level)
			if tc.wantErr {
				require.Error(t, err)
				assert.Same(t, before, log.Logger, "logger must survive a bad level")
				return
			}
			require.NoError(t, err)
			core := log.Logger.Desugar().Core()
			assert.True(t, core.Enabled(tc.enabled))
			assert.False(t, core.Enabled(tc.enabled-1))
		})
	}
}
