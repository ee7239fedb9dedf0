// Package server wires configuration parsing and startup for the web server
// process.
package server

import (
	"context"
	"flag"
	"fmt"

	platformconfig "github.com/ikavisbode/v0-iia/internal/platform/config"
	"github.com/ikavisbode/v0-iia/internal/web"
)

// Config holds the server command configuration. Environment values seed the
// defaults; flags override them.
type Config struct {
	HTTPAddr       string `env:"IIA_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentDir     string `env:"IIA_CONTENT_DIR" envDefault:"data"`
	ContentBaseURL string `env:"IIA_CONTENT_BASE_URL"`
	AnalyticsID    string `env:"IIA_ANALYTICS_ID"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with the data/ JSON tree and images")
	fs.StringVar(&cfg.ContentBaseURL, "content-base-url", cfg.ContentBaseURL, "external content host (defaults to own /data routes)")
	fs.StringVar(&cfg.AnalyticsID, "analytics-id", cfg.AnalyticsID, "analytics measurement id")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:       cfg.HTTPAddr,
		ContentDir:     cfg.ContentDir,
		ContentBaseURL: cfg.ContentBaseURL,
		AnalyticsID:    cfg.AnalyticsID,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
