package seokit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/jsonld"
	"github.com/eringen/seokit/urlutil"
)

// SiteDocuments returns the Organization and WebSite documents for cfg.
// logo, when non-nil, replaces the configured logo URL with a probed image.
func SiteDocuments(cfg config.SEOConfig, logo *jsonld.Image) ([]jsonld.Document, error) {
	urls, err := urlutil.New(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	b := jsonld.NewBuilder(urls)

	org := cfg.Organization
	orgProps := jsonld.OrganizationProps{
		Name:      org.Name,
		URL:       org.URL,
		Email:     org.Email,
		Telephone: org.Phone,
		SameAs:    org.SameAs,
	}
	switch {
	case logo != nil:
		orgProps.Logo = logo
	case org.Logo != "":
		orgProps.Logo = &jsonld.Image{URL: org.Logo}
	}
	orgDoc, err := b.Organization(orgProps)
	if err != nil {
		return nil, err
	}

	site, err := b.WebSite(jsonld.WebSiteProps{
		Name:        cfg.SiteName,
		Description: cfg.DefaultMetadata.Description,
		InLanguage:  languageTag(cfg.DefaultMetadata.Locale),
		Publisher:   jsonld.Org{Name: org.Name, URL: org.URL},
	})
	if err != nil {
		return nil, err
	}
	return []jsonld.Document{orgDoc, site}, nil
}

// PageDocument returns a WebPage document for path, with a breadcrumb trail
// built from its segments when breadcrumbs are enabled. The page URL is the
// canonical one.
func PageDocument(cfg config.SEOConfig, path string) (jsonld.Document, error) {
	urls, err := urlutil.New(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	canonical, err := urls.Canonical(path)
	if err != nil {
		return nil, err
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	props := jsonld.WebPageProps{
		Name:        cfg.DefaultMetadata.Title,
		URL:         canonical,
		Description: cfg.DefaultMetadata.Description,
		InLanguage:  languageTag(cfg.DefaultMetadata.Locale),
		IsPartOf:    "/",
	}
	if cfg.Features.Enabled(config.FeatureBreadcrumbs) {
		props.Breadcrumb = Breadcrumbs(path)
	}
	return jsonld.NewBuilder(urls).WebPage(props)
}

// Breadcrumbs derives a trail from a URL path: Home, then one item per
// segment, each pointing at the path up to and including it.
func Breadcrumbs(path string) []jsonld.BreadcrumbItem {
	items := []jsonld.BreadcrumbItem{{Name: "Home", Item: "/"}}
	prefix := ""
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		prefix += "/" + seg
		items = append(items, jsonld.BreadcrumbItem{Name: segmentName(seg), Item: prefix})
	}
	return items
}

func segmentName(seg string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(seg))
	if len(words) == 0 {
		return seg
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// languageTag turns a locale such as "en_US" into "en-US".
func languageTag(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}
