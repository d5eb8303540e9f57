package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Merge overlays override on base. Each nested sub-config is merged field by
// field: non-empty strings, non-nil pointers and non-nil slices from
// override win, everything else is inherited from base. Features merge per
// key. Neither argument is modified.
func Merge(base, override SEOConfig) SEOConfig {
	out := base
	out.SiteName = pickString(base.SiteName, override.SiteName)
	if override.BaseURL != "" {
		out.BaseURL = TrimBaseURL(override.BaseURL)
	}
	out.DefaultMetadata = mergeMetadata(base.DefaultMetadata, override.DefaultMetadata)
	out.Twitter = Twitter{
		Handle: pickString(base.Twitter.Handle, override.Twitter.Handle),
		Site:   pickString(base.Twitter.Site, override.Twitter.Site),
		Card:   pickString(base.Twitter.Card, override.Twitter.Card),
	}
	out.OpenGraph = OpenGraph{
		Type:          pickString(base.OpenGraph.Type, override.OpenGraph.Type),
		SiteName:      pickString(base.OpenGraph.SiteName, override.OpenGraph.SiteName),
		Locale:        pickString(base.OpenGraph.Locale, override.OpenGraph.Locale),
		Image:         pickString(base.OpenGraph.Image, override.OpenGraph.Image),
		FacebookAppID: pickString(base.OpenGraph.FacebookAppID, override.OpenGraph.FacebookAppID),
	}
	out.Organization = Organization{
		Name:   pickString(base.Organization.Name, override.Organization.Name),
		URL:    pickString(base.Organization.URL, override.Organization.URL),
		Logo:   pickString(base.Organization.Logo, override.Organization.Logo),
		Email:  pickString(base.Organization.Email, override.Organization.Email),
		Phone:  pickString(base.Organization.Phone, override.Organization.Phone),
		SameAs: pickStrings(base.Organization.SameAs, override.Organization.SameAs),
	}
	out.Robots = mergeRobots(base.Robots, override.Robots)
	out.Environment = Environment{
		URL:             pickString(base.Environment.URL, override.Environment.URL),
		Name:            pickString(base.Environment.Name, override.Environment.Name),
		IndexingEnabled: pickBool(base.Environment.IndexingEnabled, override.Environment.IndexingEnabled),
	}
	out.Features = mergeFeatures(base.Features, override.Features)
	return out
}

// Overlay resolves the configuration from getenv and merges override onto
// it. When override names an environment but leaves the indexing flag unset,
// indexing and the robots directive are derived again for that environment.
func Overlay(getenv func(string) string, override SEOConfig) SEOConfig {
	out := Merge(Resolve(getenv), override)
	if override.Environment.Name != "" && override.Environment.IndexingEnabled == nil {
		indexing := ResolveIndexing(out.Environment.Name, getenv(EnvIndexing))
		out.Environment.IndexingEnabled = Bool(indexing)
		out.Robots = mergeRobots(RobotsFor(indexing), override.Robots)
	}
	return out
}

func mergeMetadata(base, override Metadata) Metadata {
	return Metadata{
		Title:         pickString(base.Title, override.Title),
		TitleTemplate: pickString(base.TitleTemplate, override.TitleTemplate),
		Description:   pickString(base.Description, override.Description),
		Locale:        pickString(base.Locale, override.Locale),
		Keywords:      pickStrings(base.Keywords, override.Keywords),
	}
}

func mergeRobots(base, override Robots) Robots {
	return Robots{
		Index:           pickBool(base.Index, override.Index),
		Follow:          pickBool(base.Follow, override.Follow),
		NoArchive:       pickBool(base.NoArchive, override.NoArchive),
		MaxImagePreview: pickString(base.MaxImagePreview, override.MaxImagePreview),
		MaxSnippet:      pickInt(base.MaxSnippet, override.MaxSnippet),
	}
}

func mergeFeatures(base, override Features) Features {
	if base == nil && override == nil {
		return nil
	}
	out := make(Features, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func pickString(base, override string) string {
	if override != "" {
		return override
	}
	return base
}

func pickStrings(base, override []string) []string {
	if override != nil {
		return append([]string(nil), override...)
	}
	return base
}

func pickBool(base, override *bool) *bool {
	if override != nil {
		return Bool(*override)
	}
	return base
}

func pickInt(base, override *int) *int {
	if override != nil {
		return Int(*override)
	}
	return base
}

// Validate reports configuration problems without failing.
func (c SEOConfig) Validate() []string {
	var issues []string
	if u, err := url.Parse(c.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		issues = append(issues, fmt.Sprintf("base URL %q is not a valid http(s) URL", c.BaseURL))
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		issues = append(issues, fmt.Sprintf("base URL %q must not end with a slash", c.BaseURL))
	}
	if loc := c.DefaultMetadata.Locale; loc != "" {
		if _, err := language.Parse(strings.ReplaceAll(loc, "_", "-")); err != nil {
			issues = append(issues, fmt.Sprintf("locale %q is not a valid language tag", loc))
		}
	}
	if c.SiteName == "" {
		issues = append(issues, "site name is empty")
	}
	return issues
}
