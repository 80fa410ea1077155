// Package config loads server configuration from defaults, an optional YAML
// file and FACULTYPAGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: FACULTYPAGE_SERVER__ADDR sets server.addr.
const EnvPrefix = "FACULTYPAGE_"

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "facultypage.yml"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Session: SessionConfig{
			CookieName:      "facultypage_session",
			Lifetime:        12 * time.Hour,
			CleanupInterval: time.Minute,
		},
		Site: SiteConfig{
			Theme: "classic",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration contains usable values. Themes are
// checked by the site when it is built.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	} else if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errs = append(errs, fmt.Errorf("invalid server.addr %q: %w", c.Server.Addr, err))
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.request_timeout":  c.Server.RequestTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"session.lifetime":        c.Session.Lifetime,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.Session.CleanupInterval < 0 {
		errs = append(errs, errors.New("session.cleanup_interval must be non-negative"))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name is required"))
	}
	if c.Site.Theme == "" {
		errs = append(errs, errors.New("site.theme is required"))
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err))
	}
	return errors.Join(errs...)
}
