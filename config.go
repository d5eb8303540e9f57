package seokit

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/robots"
	"github.com/eringen/seokit/sitemap"
)

// RobotsSettings are the site-file inputs to the robots.txt policy.
type RobotsSettings struct {
	AdditionalDisallows []string      `yaml:"additional_disallows"`
	CustomRules         []robots.Rule `yaml:"custom_rules"`
	CrawlDelay          *float64      `yaml:"crawl_delay"`
	SitemapURL          string        `yaml:"sitemap_url"`
	Host                string        `yaml:"host"`
}

// SiteConfig holds all configuration for a seokit site. SEO values come from
// the environment; SEO here only overrides what is set.
type SiteConfig struct {
	Addr         string        `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string        `yaml:"database_path"` // SQLite page store; empty disables it
	CacheTTL     time.Duration `yaml:"cache_ttl"`     // Sitemap cache TTL (default 5min)

	MaxSitemapEntries int    `yaml:"max_sitemap_entries"` // Entries per sitemap file (default 50000)
	LogoPath          string `yaml:"logo_path"`           // Local logo file probed for its dimensions
	PreviewRateLimit  int    `yaml:"preview_rate_limit"`  // Preview requests per IP per minute (default 30)

	SEO    config.SEOConfig `yaml:"seo"`
	Robots RobotsSettings   `yaml:"robots"`
	Routes []sitemap.Entry  `yaml:"routes"`
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.MaxSitemapEntries <= 0 {
		c.MaxSitemapEntries = sitemap.MaxEntriesPerFile
	}
	if c.PreviewRateLimit <= 0 {
		c.PreviewRateLimit = 30
	}
}

// LoadSiteConfig reads a YAML site file. A missing path yields the zero
// config.
func LoadSiteConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("seokit: read site config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("seokit: parse site config %s: %w", path, err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithRoutes adds sitemap routes next to the configured static entries and
// the page store.
func WithRoutes(routes ...sitemap.Route) Option {
	return func(a *App) {
		a.routes = append(a.routes, routes...)
	}
}

// WithLogger sets the logger used by the app and the sitemap generator.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithStore uses an already opened page store instead of DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithGetenv replaces the environment lookup used to resolve SEO settings.
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) {
		a.getenv = getenv
	}
}
