package jsonld

import (
	"strings"

	"github.com/eringen/seokit/urlutil"
)

// searchTermPlaceholder and searchQueryInput are the fixed SearchAction
// contract understood by search engines.
const (
	searchTermPlaceholder = "{search_term_string}"
	searchQueryInput      = "required name=search_term_string"
)

// Builder turns typed props into root schema.org documents. Relative URLs in
// props are resolved against the builder's base URL.
type Builder struct {
	urls urlutil.Builder
}

// NewBuilder returns a Builder that resolves URLs with urls.
func NewBuilder(urls urlutil.Builder) Builder {
	return Builder{urls: urls}
}

// ContactPoint is one customer-facing contact channel.
type ContactPoint struct {
	Type      string // e.g. "customer support"
	Telephone string
	Email     string
	Languages []string
}

// OrganizationProps describes the site owner.
type OrganizationProps struct {
	Name          string
	URL           string
	Logo          *Image
	Description   string
	Email         string
	Telephone     string
	Address       PostalAddress
	ContactPoints []ContactPoint
	SameAs        []string
}

// Organization builds an Organization document.
func (b Builder) Organization(p OrganizationProps) (Document, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: "Organization", Field: "name"}
	}
	doc := Document{"@type": "Organization", "name": p.Name}
	if err := b.setURL(doc, "url", p.URL); err != nil {
		return nil, err
	}
	if p.Logo != nil && p.Logo.URL != "" {
		logo, err := b.image(*p.Logo)
		if err != nil {
			return nil, err
		}
		doc["logo"] = logo
	}
	setString(doc, "description", p.Description)
	setString(doc, "email", p.Email)
	setString(doc, "telephone", p.Telephone)
	if !p.Address.empty() {
		doc["address"] = p.Address.node()
	}
	if len(p.ContactPoints) > 0 {
		points := make([]Document, 0, len(p.ContactPoints))
		for _, cp := range p.ContactPoints {
			n := Document{"@type": "ContactPoint"}
			setString(n, "contactType", cp.Type)
			setString(n, "telephone", cp.Telephone)
			setString(n, "email", cp.Email)
			setStrings(n, "availableLanguage", cp.Languages)
			points = append(points, n)
		}
		doc["contactPoint"] = points
	}
	setStrings(doc, "sameAs", p.SameAs)
	return WithContext(doc), nil
}

// WebSiteProps describes the site as a whole. SearchURL enables the
// sitelinks search box; "{search_term_string}" is appended when absent.
type WebSiteProps struct {
	Name        string
	URL         string
	Description string
	InLanguage  string
	SearchURL   string
	Publisher   Agent
}

// WebSite builds a WebSite document.
func (b Builder) WebSite(p WebSiteProps) (Document, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: "WebSite", Field: "name"}
	}
	doc := Document{"@type": "WebSite", "name": p.Name}
	url := p.URL
	if url == "" {
		url = "/"
	}
	if err := b.setURL(doc, "url", url); err != nil {
		return nil, err
	}
	setString(doc, "description", p.Description)
	setString(doc, "inLanguage", p.InLanguage)
	if err := b.setAgent(doc, "publisher", p.Publisher, "Organization"); err != nil {
		return nil, err
	}
	if p.SearchURL != "" {
		target, err := b.searchTemplate(p.SearchURL)
		if err != nil {
			return nil, err
		}
		doc["potentialAction"] = Document{
			"@type": "SearchAction",
			"target": Document{
				"@type":       "EntryPoint",
				"urlTemplate": target,
			},
			"query-input": searchQueryInput,
		}
	}
	return WithContext(doc), nil
}

// searchTemplate resolves only the part of raw before the placeholder, so
// the braces are never percent-encoded. A template without a placeholder gets
// one appended.
func (b Builder) searchTemplate(raw string) (string, error) {
	prefix, rest := raw, searchTermPlaceholder
	if i := strings.Index(raw, searchTermPlaceholder); i >= 0 {
		prefix, rest = raw[:i], raw[i:]
	}
	target, err := b.urls.Absolute(prefix)
	if err != nil {
		return "", err
	}
	return target + rest, nil
}

// WebPageProps describes a single page. IsPartOf is the URL of the WebSite
// the page belongs to; Breadcrumb items become a nested BreadcrumbList.
type WebPageProps struct {
	Name          string
	URL           string
	Description   string
	InLanguage    string
	IsPartOf      string
	Breadcrumb    []BreadcrumbItem
	PrimaryImage  *Image
	DatePublished string
	DateModified  string
}

// WebPage builds a WebPage document.
func (b Builder) WebPage(p WebPageProps) (Document, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: "WebPage", Field: "name"}
	}
	doc := Document{"@type": "WebPage", "name": p.Name}
	if err := b.setURL(doc, "url", p.URL); err != nil {
		return nil, err
	}
	if p.URL != "" {
		doc["@id"] = doc["url"]
	}
	setString(doc, "description", p.Description)
	setString(doc, "inLanguage", p.InLanguage)
	if p.IsPartOf != "" {
		site, err := b.urls.Absolute(p.IsPartOf)
		if err != nil {
			return nil, err
		}
		doc["isPartOf"] = Document{"@type": "WebSite", "@id": site, "url": site}
	}
	if len(p.Breadcrumb) > 0 {
		list, err := b.breadcrumbList(p.Breadcrumb)
		if err != nil {
			return nil, err
		}
		doc["breadcrumb"] = list
	}
	if p.PrimaryImage != nil && p.PrimaryImage.URL != "" {
		img, err := b.image(*p.PrimaryImage)
		if err != nil {
			return nil, err
		}
		doc["primaryImageOfPage"] = img
	}
	setString(doc, "datePublished", p.DatePublished)
	setString(doc, "dateModified", p.DateModified)
	return WithContext(doc), nil
}
