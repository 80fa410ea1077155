package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jackielii/facultypage/internal/config"
	"github.com/jackielii/facultypage/internal/logging"
	"github.com/jackielii/facultypage/internal/site"
)

// overrides holds flag values that take precedence over the config file.
type overrides struct {
	addr  string
	theme string
	// oneShot commands build the site without serving it and keep no sessions
	oneShot bool
}

func (o overrides) apply(cfg *config.Config) {
	if o.addr != "" {
		cfg.Server.Addr = o.addr
	}
	if o.theme != "" {
		cfg.Site.Theme = o.theme
	}
	if o.oneShot {
		cfg.Session.CleanupInterval = 0
	}
}

func loadConfig(o overrides) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newSite loads the configuration and builds the site. The caller closes the
// site and syncs the logger.
func newSite(o overrides) (*site.Site, *zap.Logger, error) {
	cfg, err := loadConfig(o)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	s, err := site.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("building site: %w", err)
	}
	return s, logger, nil
}
