// Package seokit serves the SEO artifacts of a site: robots.txt, sitemaps
// split at the 50,000 URL limit, and structured data built from the
// environment-resolved SEO configuration.
//
// Sitemap entries come from three places: static routes in the site file,
// routes registered with WithRoutes, and published pages in the SQLite page
// store. seokit merges them, normalizes and validates them, and serves the
// result from a short-lived cache.
package seokit

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/jsonld"
	"github.com/eringen/seokit/robots"
	"github.com/eringen/seokit/sitemap"
)

// App is the central seokit application. It wires together the store,
// sitemap cache, handlers, and middleware.
type App struct {
	Config SiteConfig
	SEO    config.SEOConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *SitemapCache
	Logger *zap.Logger

	routes    []sitemap.Route
	getenv    func(string) string
	logo      *jsonld.Image
	limiter   *RequestLimiter
	ownsStore bool
}

// New creates a new App. SEO settings are resolved from the environment
// (and a .env file, when present) and overlaid with cfg.SEO.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if a.getenv == nil {
		_ = godotenv.Load()
		a.getenv = os.Getenv
	}
	a.SEO = config.Overlay(a.getenv, cfg.SEO)
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	gen := &sitemap.Generator{
		BaseURL:    a.SEO.BaseURL,
		MaxEntries: a.Config.MaxSitemapEntries,
		Logger:     a.Logger.Named("sitemap"),
	}
	a.Cache = NewSitemapCache(gen, a.SitemapRoutes, a.Config.CacheTTL)
	return a
}

// Init opens the page store, probes the logo, and installs middleware and
// routes. Start calls it; tests call it directly and serve through Echo.
func (a *App) Init() error {
	if a.Store == nil && a.Config.DatabasePath != "" {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("seokit: init store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}

	if a.Config.LogoPath != "" {
		logoURL := a.SEO.Organization.Logo
		if logoURL == "" {
			logoURL = "/" + path.Base(a.Config.LogoPath)
		}
		logo, err := ProbeLogo(a.Config.LogoPath, logoURL)
		if err != nil {
			a.Logger.Warn("logo probe failed", zap.String("path", a.Config.LogoPath), zap.Error(err))
		} else {
			a.logo = &logo
		}
	}

	for _, w := range a.Warnings() {
		a.Logger.Warn("seo configuration", zap.String("warning", w))
	}

	a.limiter = NewRequestLimiter(a.Config.PreviewRateLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("serving",
		zap.String("addr", a.Config.Addr),
		zap.String("base_url", a.SEO.BaseURL),
		zap.String("environment", a.SEO.Environment.Name),
		zap.Bool("indexing", a.SEO.IndexingEnabled()))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/sitemap-:file", a.handleSitemapChild)
	e.GET("/_seo/preview", a.handlePreview, a.limiter.Middleware)
}

// SitemapRoutes returns every route that feeds the sitemap: the site file's
// static entries, routes added with WithRoutes, then the page store.
func (a *App) SitemapRoutes() []sitemap.Route {
	var routes []sitemap.Route
	if len(a.Config.Routes) > 0 {
		routes = append(routes, sitemap.StaticRoute("config", a.Config.Routes...))
	}
	routes = append(routes, a.routes...)
	if a.Store != nil {
		routes = append(routes, a.Store.Route("pages"))
	}
	return routes
}

// RobotsOptions combines the resolved SEO config with the site file's
// robots settings.
func (a *App) RobotsOptions() robots.Options {
	opts := robots.OptionsFromConfig(a.SEO)
	r := a.Config.Robots
	opts.AdditionalDisallows = r.AdditionalDisallows
	opts.CustomRules = r.CustomRules
	opts.CrawlDelay = r.CrawlDelay
	opts.SitemapURL = r.SitemapURL
	opts.Host = r.Host
	return opts
}

// Warnings reports SEO configuration and robots policy problems.
func (a *App) Warnings() []string {
	warnings := a.SEO.Validate()
	return append(warnings, robots.Validate(a.RobotsOptions())...)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.Store != nil && a.ownsStore {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
