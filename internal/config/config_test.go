package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvFPS, EnvSSHAddr, EnvHostKey, EnvIdleTimeout, EnvLogLevel} {
		t.Setenv(k, "")
	}
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded default")

	writeFile(t, filepath.Join(work, "configs", "tetrix.yaml"), "display:\n  fps: 30\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.FPS, "local configs dir")

	writeFile(t, filepath.Join(home, ".tetrix", "configs", "tetrix.yaml"), "display:\n  fps: 45\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Display.FPS, "user dir wins over local")

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "display:\n  fps: 20\n")
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Display.FPS, "custom path wins")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "tetrix.yaml")
	writeFile(t, custom, "server:\n  idle_timeout: 90s\nkeys:\n  drop: [\"enter\"]\n")

	cfg, err := Load(custom)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"enter"}, cfg.Keys.Drop)
	assert.Equal(t, ":23235", cfg.Server.Address)
	assert.Equal(t, Default().Keys.Quit, cfg.Keys.Quit)
	assert.Equal(t, 60, cfg.Display.FPS)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "display: [unclosed\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "display:\n  fps: 0\n")
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "fps")
}

func TestBrokenUserFileFallsThrough(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".tetrix", "configs", "tetrix.yaml"), "display: [unclosed\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvSSHAddr, "127.0.0.1:2222")
	t.Setenv(EnvHostKey, "/tmp/key")
	t.Setenv(EnvIdleTimeout, "5m")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.Address)
	assert.Equal(t, "/tmp/key", cfg.Server.HostKey)
	assert.Equal(t, 5*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestDotEnvFile(t *testing.T) {
	_, work := isolate(t)
	os.Unsetenv(EnvSSHAddr) //nolint:errcheck
	writeFile(t, filepath.Join(work, ".env"), EnvSSHAddr+"=:4000\n")
	t.Cleanup(func() { os.Unsetenv(EnvSSHAddr) }) //nolint:errcheck

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Server.Address)
}

func TestInvalidEnvKeepsDefault(t *testing.T) {
	isolate(t)
	t.Setenv(EnvFPS, "fast")
	t.Setenv(EnvIdleTimeout, "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Display.FPS)
	assert.Equal(t, 10*time.Minute, cfg.Server.IdleTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"fps too low", func(c *Config) { c.Display.FPS = 0 }, "fps"},
		{"fps too high", func(c *Config) { c.Display.FPS = 1000 }, "fps"},
		{"bad color", func(c *Config) { c.Display.LockedColor = "gray" }, "locked_color"},
		{"no address", func(c *Config) { c.Server.Address = "" }, "address"},
		{"negative timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }, "idle_timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }, "quit"},
		{"empty key", func(c *Config) { c.Keys.Pause = []string{""} }, "pause"},
		{"duplicate key", func(c *Config) { c.Keys.NewGame = []string{"p"} }, "bound to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	v, err := ParseHexColor("#A0A0A0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xA0A0A0), v)

	v, err = ParseHexColor("ff0000")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000), v)

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "nonsense"
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestBindingsOrder(t *testing.T) {
	b := Default().Keys.Bindings()
	require.Len(t, b, 9)
	assert.Equal(t, "rotate_left", b[0].Name)
	assert.Equal(t, []string{"up", "x"}, b[0].Keys)
	assert.Equal(t, "screenshot", b[8].Name)
}
