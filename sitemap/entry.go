// Package sitemap turns route descriptors into validated, size-limited
// sitemap files and the index that points at them.
package sitemap

import (
	"context"
	"time"
)

// MaxEntriesPerFile is the protocol limit of URLs in one sitemap file.
const MaxEntriesPerFile = 50000

// ChangeFrequency is the <changefreq> hint.
type ChangeFrequency string

const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

// Valid reports whether f is one of the protocol values.
func (f ChangeFrequency) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// Alternate is a localized version of an entry's page.
type Alternate struct {
	Hreflang string `yaml:"hreflang"`
	Href     string `yaml:"href"`
}

// Entry is one crawlable URL. URL may be relative before normalization.
// LastModified is an ISO-8601 date or timestamp; Priority nil means unset.
type Entry struct {
	URL             string          `yaml:"url"`
	LastModified    string          `yaml:"last_modified"`
	ChangeFrequency ChangeFrequency `yaml:"change_frequency"`
	Priority        *float64        `yaml:"priority"`
	Alternates      []Alternate     `yaml:"alternates"`
}

// Languages returns the alternates keyed by locale code.
func (e Entry) Languages() map[string]string {
	if len(e.Alternates) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Alternates))
	for _, a := range e.Alternates {
		out[a.Hreflang] = a.Href
	}
	return out
}

// Priority returns a pointer to p for use in Entry literals.
func Priority(p float64) *float64 { return &p }

// Timestamp formats t the way entries store LastModified.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Route is a named producer of entries. Path identifies the route in logs.
type Route struct {
	Path    string
	Entries func(ctx context.Context) ([]Entry, error)
}

// StaticRoute returns a Route that always yields entries.
func StaticRoute(path string, entries ...Entry) Route {
	return Route{
		Path: path,
		Entries: func(context.Context) ([]Entry, error) {
			return entries, nil
		},
	}
}

// IndexEntry points a sitemap index at one child sitemap.
type IndexEntry struct {
	URL          string
	LastModified string
}

// Result is the outcome of one generation run.
type Result struct {
	// Entries are the normalized entries in route order.
	Entries []Entry
	// Chunks splits Entries into files of at most the configured size.
	Chunks [][]Entry
	// Index is set only when there is more than one chunk.
	Index []IndexEntry
	// Issues are validation warnings; the caller decides whether to fail.
	Issues Issues
	// Failed lists the paths of routes whose producers failed.
	Failed []string
}

// NeedsIndex reports whether the result must be served as a sitemap index.
func (r *Result) NeedsIndex() bool {
	return len(r.Chunks) > 1
}
