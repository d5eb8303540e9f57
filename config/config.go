// Package config resolves site-wide SEO settings from the environment.
//
// A resolved SEOConfig is a plain value: resolve it once per process or
// request and pass it to the robots and sitemap generators by parameter.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Resolve.
const (
	EnvSiteURL         = "SITE_URL"
	EnvSiteName        = "SITE_NAME"
	EnvSiteDescription = "SITE_DESCRIPTION"
	EnvTwitterHandle   = "TWITTER_HANDLE"
	EnvFacebookAppID   = "FACEBOOK_APP_ID"
	EnvLocale          = "SITE_LOCALE"
	EnvEnvironment     = "APP_ENV"
	EnvIndexing        = "SEO_INDEXING"
)

// Environment tags.
const (
	Development = "development"
	Staging     = "staging"
	Preview     = "preview"
	Production  = "production"
)

const (
	defaultSiteURL  = "http://localhost:3000"
	defaultSiteName = "Site"
	defaultLocale   = "en_US"
)

// Metadata holds page metadata defaults.
type Metadata struct {
	Title         string   `yaml:"title"`
	TitleTemplate string   `yaml:"title_template"`
	Description   string   `yaml:"description"`
	Locale        string   `yaml:"locale"`
	Keywords      []string `yaml:"keywords"`
}

// Twitter holds Twitter card settings.
type Twitter struct {
	Handle string `yaml:"handle"`
	Site   string `yaml:"site"`
	Card   string `yaml:"card"`
}

// OpenGraph holds Open Graph defaults.
type OpenGraph struct {
	Type          string `yaml:"type"`
	SiteName      string `yaml:"site_name"`
	Locale        string `yaml:"locale"`
	Image         string `yaml:"image"`
	FacebookAppID string `yaml:"facebook_app_id"`
}

// Organization describes the site owner.
type Organization struct {
	Name   string   `yaml:"name"`
	URL    string   `yaml:"url"`
	Logo   string   `yaml:"logo"`
	Email  string   `yaml:"email"`
	Phone  string   `yaml:"phone"`
	SameAs []string `yaml:"same_as"`
}

// Environment describes where the site is running.
type Environment struct {
	URL             string `yaml:"url"`
	Name            string `yaml:"name"`
	IndexingEnabled *bool  `yaml:"indexing_enabled"`
}

// Features toggles optional outputs by name.
type Features map[string]bool

// Known feature names.
const (
	FeatureStructuredData = "structured_data"
	FeatureSitemap        = "sitemap"
	FeatureRobots         = "robots"
	FeatureBreadcrumbs    = "breadcrumbs"
)

// SEOConfig is the site-wide SEO configuration. BaseURL never ends in a
// slash.
type SEOConfig struct {
	SiteName        string       `yaml:"site_name"`
	BaseURL         string       `yaml:"base_url"`
	DefaultMetadata Metadata     `yaml:"default_metadata"`
	Twitter         Twitter      `yaml:"twitter"`
	OpenGraph       OpenGraph    `yaml:"open_graph"`
	Organization    Organization `yaml:"organization"`
	Robots          Robots       `yaml:"robots"`
	Environment     Environment  `yaml:"environment"`
	Features        Features     `yaml:"features"`
}

// FromEnv loads a .env file when present and resolves the configuration
// from the process environment.
func FromEnv() SEOConfig {
	_ = godotenv.Load()
	return Resolve(os.Getenv)
}

// Resolve derives the configuration from getenv. Empty values count as
// unset.
func Resolve(getenv func(string) string) SEOConfig {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	siteURL := TrimBaseURL(env(EnvSiteURL, defaultSiteURL))
	name := env(EnvSiteName, defaultSiteName)
	locale := env(EnvLocale, defaultLocale)
	envName := env(EnvEnvironment, Development)
	indexing := ResolveIndexing(envName, getenv(EnvIndexing))

	return SEOConfig{
		SiteName: name,
		BaseURL:  siteURL,
		DefaultMetadata: Metadata{
			Title:         name,
			TitleTemplate: "%s | " + name,
			Description:   env(EnvSiteDescription, ""),
			Locale:        locale,
		},
		Twitter: Twitter{
			Handle: env(EnvTwitterHandle, ""),
			Site:   env(EnvTwitterHandle, ""),
			Card:   "summary_large_image",
		},
		OpenGraph: OpenGraph{
			Type:          "website",
			SiteName:      name,
			Locale:        locale,
			FacebookAppID: env(EnvFacebookAppID, ""),
		},
		Organization: Organization{
			Name: name,
			URL:  siteURL,
		},
		Robots: RobotsFor(indexing),
		Environment: Environment{
			URL:             siteURL,
			Name:            envName,
			IndexingEnabled: Bool(indexing),
		},
		Features: Features{
			FeatureStructuredData: true,
			FeatureSitemap:        true,
			FeatureRobots:         true,
			FeatureBreadcrumbs:    true,
		},
	}
}

// ResolveIndexing applies the indexing rule: an explicit override wins
// ("true" or "1" enable, any other value disables); without one, only the
// production environment is indexable.
func ResolveIndexing(environment, override string) bool {
	if o := strings.TrimSpace(override); o != "" {
		return o == "true" || o == "1"
	}
	return environment == Production
}

// TrimBaseURL strips whitespace and trailing slashes.
func TrimBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// IsProduction reports whether the environment tag is exactly "production".
func (c SEOConfig) IsProduction() bool {
	return c.Environment.Name == Production
}

// IndexingEnabled reports the resolved indexing flag. An unset flag falls
// back to the environment rule.
func (c SEOConfig) IndexingEnabled() bool {
	if c.Environment.IndexingEnabled != nil {
		return *c.Environment.IndexingEnabled
	}
	return c.IsProduction()
}

// Enabled reports whether a feature is on. Unknown features are off.
func (f Features) Enabled(name string) bool {
	return f[name]
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
