// Package robots derives a robots.txt policy from the site environment.
//
// Outside production the policy is always a blanket disallow for every
// agent. Custom rules are ignored there and Validate reports that they were.
package robots

import (
	"strings"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/urlutil"
)

// DefaultDisallows are blocked for every agent in production: API and admin
// routes, private areas, build output and raw data files.
var DefaultDisallows = []string{
	"/api/",
	"/admin/",
	"/private/",
	"/_next/",
	"/_build/",
	"/*.json$",
}

// Rule is one User-agent block.
type Rule struct {
	UserAgents []string `yaml:"user_agents"`
	Allow      []string `yaml:"allow"`
	Disallow   []string `yaml:"disallow"`
	CrawlDelay *float64 `yaml:"crawl_delay"`
}

// Policy is a complete robots.txt document.
type Policy struct {
	Rules   []Rule
	Sitemap string
	Host    string
}

// Options are the inputs to Generate. Indexing, when set, can only tighten
// the policy: an explicit false locks production down as well.
type Options struct {
	Environment         string
	Indexing            *bool
	BaseURL             string
	SitemapURL          string
	Host                string
	AdditionalDisallows []string
	CustomRules         []Rule
	CrawlDelay          *float64
}

// OptionsFromConfig seeds Options from a resolved SEO configuration.
func OptionsFromConfig(cfg config.SEOConfig) Options {
	return Options{
		Environment: cfg.Environment.Name,
		Indexing:    config.Bool(cfg.IndexingEnabled()),
		BaseURL:     cfg.BaseURL,
	}
}

// Open reports whether opts describe a crawlable site.
func (o Options) Open() bool {
	if o.Environment != config.Production {
		return false
	}
	return o.Indexing == nil || *o.Indexing
}

// Lockdown is the policy served by every non-production site.
func Lockdown() Policy {
	return Policy{Rules: []Rule{{UserAgents: []string{"*"}, Disallow: []string{"/"}}}}
}

// Generate returns the policy for opts.
func Generate(opts Options) Policy {
	if !opts.Open() {
		return Lockdown()
	}

	base := Rule{
		UserAgents: []string{"*"},
		Allow:      []string{"/"},
		Disallow:   dedupe(append(append([]string(nil), DefaultDisallows...), opts.AdditionalDisallows...)),
		CrawlDelay: opts.CrawlDelay,
	}
	rules := []Rule{base}
	for _, r := range opts.CustomRules {
		r.UserAgents = userAgents(r.UserAgents)
		if len(r.UserAgents) == 0 {
			continue
		}
		if r.CrawlDelay == nil {
			r.CrawlDelay = opts.CrawlDelay
		}
		rules = append(rules, r)
	}

	return Policy{
		Rules:   rules,
		Sitemap: sitemapURL(opts),
		Host:    host(opts),
	}
}

// userAgents returns the non-blank agents of a rule, trimmed. A rule left
// with none would print directives outside any User-agent group.
func userAgents(in []string) []string {
	var out []string
	for _, ua := range in {
		if ua = strings.TrimSpace(ua); ua != "" {
			out = append(out, ua)
		}
	}
	return out
}

func sitemapURL(opts Options) string {
	raw := opts.SitemapURL
	if raw == "" {
		raw = "/sitemap.xml"
	}
	if urlutil.IsAbsolute(raw) {
		return raw
	}
	b, err := urlutil.New(opts.BaseURL)
	if err != nil {
		return ""
	}
	abs, err := b.Absolute(raw)
	if err != nil {
		return ""
	}
	return abs
}

func host(opts Options) string {
	if opts.Host != "" {
		return opts.Host
	}
	return config.TrimBaseURL(opts.BaseURL)
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Seconds returns a crawl delay pointer for use in Options and Rule literals.
func Seconds(v float64) *float64 { return &v }
