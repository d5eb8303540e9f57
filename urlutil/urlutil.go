// Package urlutil builds absolute and canonical URLs against a site base URL.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
)

// ErrInvalidURL is matched by every ConstructionError.
var ErrInvalidURL = errors.New("invalid url")

// ConstructionError reports a base URL or path that cannot form a valid URL.
type ConstructionError struct {
	Input string
	Err   error
}

func (e *ConstructionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("urlutil: cannot build url from %q", e.Input)
	}
	return fmt.Sprintf("urlutil: cannot build url from %q: %v", e.Input, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidURL) match any construction failure.
func (e *ConstructionError) Is(target error) bool { return target == ErrInvalidURL }

var (
	absolutePattern = regexp.MustCompile(`(?i)^https?://`)
	slashRun        = regexp.MustCompile(`/{2,}`)
)

// IsAbsolute reports whether s starts with an http or https scheme.
func IsAbsolute(s string) bool {
	return absolutePattern.MatchString(s)
}

// Builder resolves paths against a validated base URL.
type Builder struct {
	base string
}

// New validates baseURL and returns a Builder rooted at it.
// The stored base never has a trailing slash.
func New(baseURL string) (Builder, error) {
	base, err := normalizeBase(baseURL)
	if err != nil {
		return Builder{}, err
	}
	return Builder{base: base}, nil
}

// MustNew is like New but panics on an invalid base URL.
func MustNew(baseURL string) Builder {
	b, err := New(baseURL)
	if err != nil {
		panic(err)
	}
	return b
}

// BaseURL returns the normalized base URL.
func (b Builder) BaseURL() string { return b.base }

func normalizeBase(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", &ConstructionError{Input: raw, Err: errors.New("empty base url")}
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", &ConstructionError{Input: raw, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ConstructionError{Input: raw, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return "", &ConstructionError{Input: raw, Err: errors.New("missing host")}
	}
	return trimmed, nil
}

// BuildOptions describes one URL to build. BaseURL, when set, overrides the
// builder's base. Nil query values are left out of the query string.
type BuildOptions struct {
	BaseURL string
	Path    string
	Locale  string
	Query   map[string]any
}

// Build joins base, locale and path with single slashes and appends the
// encoded query.
func (b Builder) Build(opts BuildOptions) (string, error) {
	base := b.base
	if opts.BaseURL != "" {
		var err error
		if base, err = normalizeBase(opts.BaseURL); err != nil {
			return "", err
		}
	}
	if base == "" {
		return "", &ConstructionError{Input: opts.Path, Err: errors.New("no base url configured")}
	}

	p := joinPath(opts.Locale, opts.Path)
	raw := base + p
	u, err := url.Parse(raw)
	if err != nil {
		return "", &ConstructionError{Input: raw, Err: err}
	}

	if q := encodeQuery(opts.Query); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}
	return u.String(), nil
}

func joinPath(locale, p string) string {
	var parts []string
	if l := strings.Trim(locale, "/"); l != "" {
		parts = append(parts, l)
	}
	if s := strings.TrimLeft(p, "/"); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		if p != "" {
			return "/"
		}
		return ""
	}
	return slashRun.ReplaceAllString("/"+strings.Join(parts, "/"), "/")
}

func encodeQuery(q map[string]any) string {
	if len(q) == 0 {
		return ""
	}
	vals := url.Values{}
	for k, v := range q {
		if isNil(v) {
			continue
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			v = rv.Elem().Interface()
		}
		vals.Set(k, fmt.Sprint(v))
	}
	return vals.Encode()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Absolute returns pathOrURL unchanged when it is already an http(s) URL and
// resolves it against the base URL otherwise. Query and fragment are kept.
func (b Builder) Absolute(pathOrURL string) (string, error) {
	if IsAbsolute(pathOrURL) {
		return pathOrURL, nil
	}
	p, suffix := pathOrURL, ""
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p, suffix = p[:i], p[i:]
	}
	if p == "" {
		p = "/"
	}
	out, err := b.Build(BuildOptions{Path: p})
	if err != nil {
		return "", err
	}
	out += suffix
	if _, err := url.Parse(out); err != nil {
		return "", &ConstructionError{Input: pathOrURL, Err: err}
	}
	return out, nil
}

// Canonical returns the absolute form of pathOrURL without tracking
// parameters.
func (b Builder) Canonical(pathOrURL string) (string, error) {
	abs, err := b.Absolute(pathOrURL)
	if err != nil {
		return "", err
	}
	return StripTracking(abs)
}

// IsTrackingParam reports whether key is a known click or campaign tracker.
func IsTrackingParam(key string) bool {
	k := strings.ToLower(key)
	return strings.HasPrefix(k, "utm_") || k == "gclid" || k == "fbclid"
}

// StripTracking removes tracking parameters from rawURL. Remaining
// parameters keep their order and encoding.
func StripTracking(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &ConstructionError{Input: rawURL, Err: err}
	}
	if u.RawQuery == "" {
		u.ForceQuery = false
		return u.String(), nil
	}
	pairs := strings.Split(u.RawQuery, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if dec, err := url.QueryUnescape(key); err == nil {
			key = dec
		}
		if IsTrackingParam(key) {
			continue
		}
		kept = append(kept, pair)
	}
	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String(), nil
}
