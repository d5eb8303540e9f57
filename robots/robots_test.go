package robots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/seokit/config"
)

func productionOptions() Options {
	return Options{
		Environment: config.Production,
		BaseURL:     "https://example.com",
	}
}

func TestNonProductionLockdown(t *testing.T) {
	for _, env := range []string{config.Staging, config.Development, config.Preview, ""} {
		p := Generate(Options{
			Environment:         env,
			BaseURL:             "https://staging.example.com",
			SitemapURL:          "/sitemap.xml",
			Host:                "staging.example.com",
			AdditionalDisallows: []string{"/tmp/"},
			CustomRules:         []Rule{{UserAgents: []string{"Googlebot"}, Allow: []string{"/"}}},
			CrawlDelay:          Seconds(5),
		})
		require.Len(t, p.Rules, 1, env)
		assert.Equal(t, []string{"*"}, p.Rules[0].UserAgents)
		assert.Equal(t, []string{"/"}, p.Rules[0].Disallow)
		assert.Empty(t, p.Rules[0].Allow)
		assert.Nil(t, p.Rules[0].CrawlDelay)
		assert.Empty(t, p.Sitemap, env)
		assert.Empty(t, p.Host, env)
		assert.Equal(t, "User-agent: *\nDisallow: /\n\n", ToText(p))
	}
}

func TestProductionWithIndexingDisabledIsLocked(t *testing.T) {
	opts := productionOptions()
	opts.Indexing = config.Bool(false)
	assert.Equal(t, Lockdown(), Generate(opts))
}

func TestProductionPolicy(t *testing.T) {
	opts := productionOptions()
	opts.AdditionalDisallows = []string{"/drafts/", "/api/"}
	opts.CrawlDelay = Seconds(2)
	opts.CustomRules = []Rule{
		{UserAgents: []string{"GPTBot"}, Disallow: []string{"/"}},
		{UserAgents: []string{"Bingbot", "Slurp"}, Allow: []string{"/"}, CrawlDelay: Seconds(10)},
	}

	p := Generate(opts)
	require.Len(t, p.Rules, 3)

	base := p.Rules[0]
	assert.Equal(t, []string{"*"}, base.UserAgents)
	assert.Equal(t, []string{"/"}, base.Allow)
	assert.Equal(t, append(append([]string(nil), DefaultDisallows...), "/drafts/"), base.Disallow)
	assert.Equal(t, 2.0, *base.CrawlDelay)

	assert.Equal(t, 2.0, *p.Rules[1].CrawlDelay, "custom rule inherits the crawl delay")
	assert.Equal(t, 10.0, *p.Rules[2].CrawlDelay, "custom rule keeps its own crawl delay")

	assert.Equal(t, "https://example.com/sitemap.xml", p.Sitemap)
	assert.Equal(t, "https://example.com", p.Host)
}

func TestGenerateSkipsRulesWithoutUserAgents(t *testing.T) {
	opts := productionOptions()
	opts.CustomRules = []Rule{
		{Disallow: []string{"/secret/"}},
		{UserAgents: []string{" "}, Disallow: []string{"/blank/"}},
		{UserAgents: []string{"Googlebot", " "}, Disallow: []string{"/private/"}},
	}

	p := Generate(opts)
	require.Len(t, p.Rules, 2)
	assert.Equal(t, []string{"Googlebot"}, p.Rules[1].UserAgents)

	text := ToText(p)
	assert.NotContains(t, text, "/secret/")
	assert.NotContains(t, text, "/blank/")
	assert.NotContains(t, text, "User-agent: \n")
}

func TestGenerateDoesNotAliasDefaults(t *testing.T) {
	opts := productionOptions()
	opts.AdditionalDisallows = []string{"/x/"}
	_ = Generate(opts)
	assert.Len(t, DefaultDisallows, 6)
	assert.NotContains(t, DefaultDisallows, "/x/")
}

func TestToTextProduction(t *testing.T) {
	p := Policy{
		Rules: []Rule{
			{UserAgents: []string{"*"}, Allow: []string{"/"}, Disallow: []string{"/api/", "/admin/"}, CrawlDelay: Seconds(1.5)},
			{UserAgents: []string{"Googlebot", "Bingbot"}, Disallow: []string{"/private/"}},
		},
		Sitemap: "https://example.com/sitemap.xml",
		Host:    "https://example.com",
	}
	want := strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /api/",
		"Disallow: /admin/",
		"Crawl-delay: 1.5",
		"",
		"User-agent: Googlebot",
		"User-agent: Bingbot",
		"Disallow: /private/",
		"",
		"Sitemap: https://example.com/sitemap.xml",
		"Host: https://example.com",
		"",
	}, "\n")
	assert.Equal(t, want, ToText(p))
}

func TestSitemapURLOverrides(t *testing.T) {
	opts := productionOptions()
	opts.SitemapURL = "/sitemaps/main.xml"
	assert.Equal(t, "https://example.com/sitemaps/main.xml", Generate(opts).Sitemap)

	opts.SitemapURL = "https://cdn.example.com/sitemap.xml"
	opts.Host = "example.com"
	p := Generate(opts)
	assert.Equal(t, "https://cdn.example.com/sitemap.xml", p.Sitemap)
	assert.Equal(t, "example.com", p.Host)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Resolve(func(key string) string {
		return map[string]string{
			config.EnvSiteURL:     "https://example.com/",
			config.EnvEnvironment: config.Production,
		}[key]
	})
	opts := OptionsFromConfig(cfg)
	assert.True(t, opts.Open())
	assert.Equal(t, "https://example.com", opts.BaseURL)

	cfg.Environment.IndexingEnabled = config.Bool(false)
	assert.False(t, OptionsFromConfig(cfg).Open())
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(productionOptions()))

	opts := Options{
		Environment: config.Production,
		BaseURL:     "example.com",
		SitemapURL:  "/sitemap.xml",
		CrawlDelay:  Seconds(-1),
		CustomRules: []Rule{
			{Disallow: []string{"/"}},
			{UserAgents: []string{"Googlebot", " "}, CrawlDelay: Seconds(-3)},
		},
	}
	warnings := Validate(opts)
	assert.Len(t, warnings, 6)
}

func TestValidateWarnsAboutIgnoredRules(t *testing.T) {
	opts := Options{
		Environment: config.Staging,
		BaseURL:     "https://staging.example.com",
		CustomRules: []Rule{{UserAgents: []string{"*"}, Allow: []string{"/"}}},
	}
	warnings := Validate(opts)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ignored")
}

func TestValidateSitemapURL(t *testing.T) {
	opts := productionOptions()
	opts.SitemapURL = "https://"
	assert.Len(t, Validate(opts), 1)

	opts.SitemapURL = "https://example.com/sitemap.xml"
	assert.Empty(t, Validate(opts))
}
