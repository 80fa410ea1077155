package config

import "time"

// Config is the top-level server configuration, corresponding to facultypage.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Session SessionConfig `yaml:"session" koanf:"session"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// SessionConfig controls where a visitor's UI state lives. A zero
// CleanupInterval disables the goroutine purging expired sessions.
type SessionConfig struct {
	CookieName      string        `yaml:"cookie_name" koanf:"cookie_name"`
	Lifetime        time.Duration `yaml:"lifetime" koanf:"lifetime"`
	Secure          bool          `yaml:"secure" koanf:"secure"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" koanf:"cleanup_interval"`
}

// SiteConfig selects how the page looks.
type SiteConfig struct {
	Theme   string `yaml:"theme" koanf:"theme"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}
