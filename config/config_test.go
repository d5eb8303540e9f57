package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fakeEnv(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestResolveDefaults(t *testing.T) {
	cfg := Resolve(fakeEnv(nil))
	if cfg.BaseURL != defaultSiteURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, defaultSiteURL)
	}
	if cfg.SiteName != defaultSiteName {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, defaultSiteName)
	}
	if cfg.Environment.Name != Development {
		t.Errorf("Environment.Name = %q, want %q", cfg.Environment.Name, Development)
	}
	if cfg.IndexingEnabled() {
		t.Error("indexing should be disabled outside production")
	}
	if diff := cmp.Diff(RobotsFor(false), cfg.Robots); diff != "" {
		t.Errorf("Robots mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveStripsTrailingSlash(t *testing.T) {
	cfg := Resolve(fakeEnv(map[string]string{EnvSiteURL: "https://example.com///"}))
	if cfg.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://example.com")
	}
	if cfg.Environment.URL != cfg.BaseURL {
		t.Errorf("Environment.URL = %q, want %q", cfg.Environment.URL, cfg.BaseURL)
	}
}

func TestResolveReadsEnvironment(t *testing.T) {
	cfg := Resolve(fakeEnv(map[string]string{
		EnvSiteURL:         "https://example.com",
		EnvSiteName:        "Example",
		EnvSiteDescription: "An example site",
		EnvTwitterHandle:   "@example",
		EnvFacebookAppID:   "1234",
		EnvLocale:          "de_DE",
		EnvEnvironment:     Production,
	}))
	if cfg.DefaultMetadata.Description != "An example site" {
		t.Errorf("Description = %q", cfg.DefaultMetadata.Description)
	}
	if cfg.Twitter.Handle != "@example" {
		t.Errorf("Twitter.Handle = %q", cfg.Twitter.Handle)
	}
	if cfg.OpenGraph.FacebookAppID != "1234" {
		t.Errorf("FacebookAppID = %q", cfg.OpenGraph.FacebookAppID)
	}
	if cfg.OpenGraph.Locale != "de_DE" || cfg.DefaultMetadata.Locale != "de_DE" {
		t.Errorf("locale not propagated: %q / %q", cfg.OpenGraph.Locale, cfg.DefaultMetadata.Locale)
	}
	if !cfg.IsProduction() || !cfg.IndexingEnabled() {
		t.Error("production should be indexable")
	}
	if diff := cmp.Diff(RobotsFor(true), cfg.Robots); diff != "" {
		t.Errorf("Robots mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveIndexing(t *testing.T) {
	tests := []struct {
		env      string
		override string
		want     bool
	}{
		{Production, "", true},
		{Staging, "", false},
		{Development, "", false},
		{"Production", "", false},
		{Staging, "true", true},
		{Staging, "1", true},
		{Production, "false", false},
		{Production, "yes", false},
		{Production, "0", false},
	}
	for _, tt := range tests {
		if got := ResolveIndexing(tt.env, tt.override); got != tt.want {
			t.Errorf("ResolveIndexing(%q, %q) = %v, want %v", tt.env, tt.override, got, tt.want)
		}
	}
}

func TestRobotsString(t *testing.T) {
	if got, want := RobotsFor(true).String(), "index, follow, max-image-preview:large, max-snippet:160"; got != want {
		t.Errorf("RobotsFor(true).String() = %q, want %q", got, want)
	}
	if got, want := RobotsFor(false).String(), "noindex, nofollow, noarchive, max-image-preview:none, max-snippet:0"; got != want {
		t.Errorf("RobotsFor(false).String() = %q, want %q", got, want)
	}
}

func TestMergePreservesSiblings(t *testing.T) {
	base := SEOConfig{Robots: Robots{Index: Bool(true), Follow: Bool(true)}}
	override := SEOConfig{Robots: Robots{Index: Bool(false)}}

	got := Merge(base, override)
	want := Robots{Index: Bool(false), Follow: Bool(true)}
	if diff := cmp.Diff(want, got.Robots); diff != "" {
		t.Errorf("merged Robots mismatch (-want +got):\n%s", diff)
	}
	if !*base.Robots.Index {
		t.Error("Merge must not modify base")
	}
}

func TestMergeNestedConfigs(t *testing.T) {
	base := Resolve(fakeEnv(map[string]string{
		EnvSiteURL:       "https://example.com",
		EnvTwitterHandle: "@example",
		EnvEnvironment:   Production,
	}))
	override := SEOConfig{
		BaseURL:         "https://www.example.com/",
		DefaultMetadata: Metadata{Description: "Page description"},
		Twitter:         Twitter{Card: "summary"},
		Organization:    Organization{Logo: "/logo.png"},
		Environment:     Environment{IndexingEnabled: Bool(false)},
		Features:        Features{FeatureBreadcrumbs: false},
	}

	got := Merge(base, override)
	if got.BaseURL != "https://www.example.com" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if got.DefaultMetadata.Description != "Page description" || got.DefaultMetadata.Title != base.DefaultMetadata.Title {
		t.Errorf("DefaultMetadata = %+v", got.DefaultMetadata)
	}
	if got.Twitter.Card != "summary" || got.Twitter.Handle != "@example" {
		t.Errorf("Twitter = %+v", got.Twitter)
	}
	if got.Organization.Logo != "/logo.png" || got.Organization.Name != base.Organization.Name {
		t.Errorf("Organization = %+v", got.Organization)
	}
	if got.Environment.Name != Production || got.IndexingEnabled() {
		t.Errorf("Environment = %+v", got.Environment)
	}
	if got.Features.Enabled(FeatureBreadcrumbs) || !got.Features.Enabled(FeatureSitemap) {
		t.Errorf("Features = %v", got.Features)
	}
	if !base.Features.Enabled(FeatureBreadcrumbs) {
		t.Error("Merge must not modify base features")
	}
}

func TestValidate(t *testing.T) {
	good := Resolve(fakeEnv(map[string]string{EnvSiteURL: "https://example.com", EnvLocale: "en_US"}))
	if issues := good.Validate(); len(issues) != 0 {
		t.Errorf("Validate() = %v, want none", issues)
	}

	bad := good
	bad.BaseURL = "example.com"
	bad.DefaultMetadata.Locale = "not a locale"
	if issues := bad.Validate(); len(issues) != 2 {
		t.Errorf("Validate() = %v, want 2 issues", issues)
	}
}

func TestOverlayRederivesIndexing(t *testing.T) {
	got := Overlay(fakeEnv(nil), SEOConfig{Environment: Environment{Name: Production}})
	if !got.IndexingEnabled() {
		t.Error("overriding the environment to production should enable indexing")
	}
	if diff := cmp.Diff(RobotsFor(true), got.Robots); diff != "" {
		t.Errorf("Robots mismatch (-want +got):\n%s", diff)
	}

	got = Overlay(fakeEnv(map[string]string{EnvIndexing: "false"}), SEOConfig{Environment: Environment{Name: Production}})
	if got.IndexingEnabled() {
		t.Error("an explicit SEO_INDEXING=false should still win")
	}

	got = Overlay(fakeEnv(map[string]string{EnvEnvironment: Production}), SEOConfig{SiteName: "Docs"})
	if !got.IndexingEnabled() || got.SiteName != "Docs" {
		t.Errorf("Overlay without environment override = %+v", got.Environment)
	}
}
