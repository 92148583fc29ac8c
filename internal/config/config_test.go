package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 150.0, cfg.Editor.Threshold)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.toml")
	content := `
[server]
addr = ":8080"

[editor]
threshold = 90.5

[logging]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 90.5, cfg.Editor.Threshold)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddr = "), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FLOW_ADDR":      ":9000",
		"FLOW_THRESHOLD": "200",
		"FLOW_LOG_LEVEL": "debug",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 200.0, cfg.Editor.Threshold)
	assert.Equal(t, "debug", cfg.Logging.Level)

	bad := Default()
	err := bad.applyEnv(func(k string) string {
		if k == "FLOW_THRESHOLD" {
			return "far"
		}
		return ""
	})
	assert.ErrorContains(t, err, "FLOW_THRESHOLD")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero threshold", func(c *Config) { c.Editor.Threshold = 0 }, true},
		{"negative threshold", func(c *Config) { c.Editor.Threshold = -1 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"json format", func(c *Config) { c.Logging.Format = "JSON" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Logging.Format = "json"
	cfg.NewLogger(&buf).Info("hello", "graph_id", "g1")
	assert.Contains(t, buf.String(), `"graph_id":"g1"`)

	buf.Reset()
	cfg.Logging.Format = "text"
	cfg.Logging.Level = "warn"
	logger := cfg.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}
