package robots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/eringen/seokit/urlutil"
)

// ToText renders p in robots.txt grammar. Every rule block ends with a blank
// line; Sitemap and Host follow the last block.
func ToText(p Policy) string {
	var b strings.Builder
	for _, r := range p.Rules {
		for _, ua := range r.UserAgents {
			b.WriteString("User-agent: " + ua + "\n")
		}
		for _, path := range r.Allow {
			b.WriteString("Allow: " + path + "\n")
		}
		for _, path := range r.Disallow {
			b.WriteString("Disallow: " + path + "\n")
		}
		if r.CrawlDelay != nil {
			b.WriteString("Crawl-delay: " + strconv.FormatFloat(*r.CrawlDelay, 'f', -1, 64) + "\n")
		}
		b.WriteString("\n")
	}
	if p.Sitemap != "" {
		b.WriteString("Sitemap: " + p.Sitemap + "\n")
	}
	if p.Host != "" {
		b.WriteString("Host: " + p.Host + "\n")
	}
	return b.String()
}

// Validate checks opts and returns warnings. It never fails.
func Validate(opts Options) []string {
	var warnings []string

	base, baseErr := urlutil.New(opts.BaseURL)
	if baseErr != nil {
		warnings = append(warnings, fmt.Sprintf("base URL %q is invalid: %v", opts.BaseURL, baseErr))
	}

	if s := opts.SitemapURL; s != "" {
		switch {
		case urlutil.IsAbsolute(s):
			if u, err := url.Parse(s); err != nil || u.Host == "" {
				warnings = append(warnings, fmt.Sprintf("sitemap URL %q is invalid", s))
			}
		case baseErr == nil:
			if _, err := base.Absolute(s); err != nil {
				warnings = append(warnings, fmt.Sprintf("sitemap URL %q cannot be resolved against the base URL", s))
			}
		default:
			warnings = append(warnings, fmt.Sprintf("sitemap URL %q is relative but the base URL is invalid", s))
		}
	}

	if opts.CrawlDelay != nil && *opts.CrawlDelay < 0 {
		warnings = append(warnings, fmt.Sprintf("crawl delay %v must not be negative", *opts.CrawlDelay))
	}
	for i, r := range opts.CustomRules {
		if len(r.UserAgents) == 0 {
			warnings = append(warnings, fmt.Sprintf("custom rule %d has no user agent", i))
		}
		for _, ua := range r.UserAgents {
			if strings.TrimSpace(ua) == "" {
				warnings = append(warnings, fmt.Sprintf("custom rule %d has an empty user agent", i))
				break
			}
		}
		if r.CrawlDelay != nil && *r.CrawlDelay < 0 {
			warnings = append(warnings, fmt.Sprintf("custom rule %d crawl delay %v must not be negative", i, *r.CrawlDelay))
		}
	}

	if !opts.Open() && len(opts.CustomRules) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d custom rule(s) ignored: environment %q is not open to crawlers", len(opts.CustomRules), opts.Environment))
	}
	return warnings
}
