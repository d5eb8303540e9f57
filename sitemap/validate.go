package sitemap

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"
)

// Issues is a list of human-readable validation warnings.
type Issues []string

// Err folds the issues into one error, or returns nil when there are none.
func (is Issues) Err() error {
	var err *multierror.Error
	for _, s := range is {
		err = multierror.Append(err, errors.New(s))
	}
	return err.ErrorOrNil()
}

var lastModLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseLastModified parses the date formats accepted in LastModified.
func ParseLastModified(s string) (time.Time, error) {
	for _, layout := range lastModLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ValidateEntries checks entries and returns every problem found. It never
// fails; callers choose whether issues abort a build.
func ValidateEntries(entries []Entry) Issues {
	var issues Issues
	for i, e := range entries {
		add := func(format string, args ...any) {
			issues = append(issues, fmt.Sprintf("entry %d (%s): ", i, e.URL)+fmt.Sprintf(format, args...))
		}
		if !validAbsoluteURL(e.URL) {
			add("invalid URL")
		}
		if p := e.Priority; p != nil && !(*p >= 0 && *p <= 1) {
			add("priority %v is outside [0, 1]", *e.Priority)
		}
		if e.LastModified != "" {
			if _, err := ParseLastModified(e.LastModified); err != nil {
				add("invalid lastModified %q", e.LastModified)
			}
		}
		if e.ChangeFrequency != "" && !e.ChangeFrequency.Valid() {
			add("invalid changeFrequency %q", e.ChangeFrequency)
		}
		for _, a := range e.Alternates {
			if !validAbsoluteURL(a.Href) {
				add("invalid alternate URL %q for %q", a.Href, a.Hreflang)
			}
			if a.Hreflang != "x-default" {
				if _, err := language.Parse(a.Hreflang); err != nil {
					add("invalid hreflang %q", a.Hreflang)
				}
			}
		}
	}
	return issues
}

func validAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
