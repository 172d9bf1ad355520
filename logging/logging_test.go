package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sub", "eggdrift.log")

	logger, err := New(false, "debug", file)
	require.NoError(t, err)
	logger.Info("discarded")

	_, err = os.Stat(filepath.Dir(file))
	assert.True(t, os.IsNotExist(err), "no log dir without debug")
}

func TestNew_EnabledWithDebug(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "eggdrift.log")

	logger, err := New(true, "info", file)
	require.NoError(t, err)
	logger.Debug("below level")
	logger.Info("drag started", zap.String("session", "abc"))
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"drag started"`)
	assert.Contains(t, string(data), `"session":"abc"`)
	assert.NotContains(t, string(data), "below level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"info", "info"},
		{"WARN", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"", "debug"},
		{"verbose", "debug"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in).String(), tt.in)
	}
}
