package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "classic", cfg.Site.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("missing file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facultypage.yml")
	data := `
server:
  addr: "127.0.0.1:9000"
  write_timeout: 30s
site:
  theme: slate
  base_url: https://example.edu/
log:
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Server.Addr = "127.0.0.1:9000"
	want.Server.WriteTimeout = 30 * time.Second
	want.Site.Theme = "slate"
	want.Site.BaseURL = "https://example.edu/"
	want.Log.Development = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facultypage.yml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  theme: slate\n"), 0o644))
	t.Setenv("FACULTYPAGE_SITE__THEME", "classic")
	t.Setenv("FACULTYPAGE_SESSION__SECURE", "true")
	t.Setenv("FACULTYPAGE_SERVER__IDLE_TIMEOUT", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Site.Theme)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "reading config")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facultypage.yml")
	original := DefaultConfig()
	original.Server.Addr = ":9999"
	original.Session.Lifetime = 90 * time.Minute
	original.Log.Level = "debug"
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLWritesDurationsAsStrings(t *testing.T) {
	out, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "read_timeout: 10s")
	assert.Contains(t, string(out), "cleanup_interval: 1m0s")
	assert.NotContains(t, string(out), "10000000000")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
		{"bad addr", func(c *Config) { c.Server.Addr = "8080" }, "invalid server.addr"},
		{"zero timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server.read_timeout must be positive"},
		{"negative cleanup", func(c *Config) { c.Session.CleanupInterval = -time.Second }, "session.cleanup_interval"},
		{"no cookie", func(c *Config) { c.Session.CookieName = "" }, "session.cookie_name is required"},
		{"no theme", func(c *Config) { c.Site.Theme = "" }, "site.theme is required"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}

	cfg := DefaultConfig()
	cfg.Session.CleanupInterval = 0
	assert.NoError(t, cfg.Validate())
}
