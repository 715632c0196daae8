package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/goXRPLwallet/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		debug bool
		want  zapcore.Level
	}{
		{"default", config.LogConfig{}, false, zapcore.InfoLevel},
		{"configured", config.LogConfig{Level: "warn"}, false, zapcore.WarnLevel},
		{"debug flag wins", config.LogConfig{Level: "error"}, true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg, tt.debug)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			assert.False(t, log.Core().Enabled(tt.want-1))
		})
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)

	_, err = New(config.LogConfig{Format: "xml"}, false)
	assert.Error(t, err)
}

func TestJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.log")
	log, err := build(config.LogConfig{Format: "json"}, false, []string{path})
	require.NoError(t, err)

	log.Info("lookup", zap.String("account", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "lookup", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", line["account"])
}
