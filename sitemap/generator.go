package sitemap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/seokit/urlutil"
)

// Defaults applied to entries that leave the field unset.
const (
	DefaultChangeFrequency = Weekly
	DefaultPriority        = 0.5
)

// Generator runs the collect, normalize, validate, split and index pipeline.
// The zero value of every optional field selects a default.
type Generator struct {
	BaseURL                string
	MaxEntries             int
	DefaultChangeFrequency ChangeFrequency
	DefaultPriority        *float64
	Now                    func() time.Time
	Logger                 *zap.Logger
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) maxEntries() int {
	if g.MaxEntries <= 0 {
		return MaxEntriesPerFile
	}
	return g.MaxEntries
}

// Generate collects entries from routes and runs the full pipeline. It
// fails only when the base URL is unusable; route failures and invalid
// entries are reported in the Result.
func (g *Generator) Generate(ctx context.Context, routes []Route) (*Result, error) {
	urls, err := urlutil.New(g.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	collected, failed := g.Collect(ctx, routes)
	entries := g.normalize(urls, collected)
	chunks := Split(entries, g.maxEntries())

	res := &Result{
		Entries: entries,
		Chunks:  chunks,
		Issues:  ValidateEntries(entries),
		Failed:  failed,
	}
	if len(chunks) > 1 {
		res.Index = IndexEntries(urls.BaseURL(), len(chunks), g.now())
	}
	if len(res.Issues) > 0 {
		g.logger().Warn("sitemap has validation issues",
			zap.Int("issues", len(res.Issues)),
			zap.Strings("first", res.Issues[:min(len(res.Issues), 5)]))
	}
	g.logger().Debug("sitemap generated",
		zap.Int("entries", len(entries)),
		zap.Int("chunks", len(chunks)),
		zap.Int("failed_routes", len(failed)))
	return res, nil
}

// Collect runs every route producer concurrently. A producer that returns an
// error or panics is logged with its path and skipped; the others are
// unaffected. Entries keep route order, then producer order.
func (g *Generator) Collect(ctx context.Context, routes []Route) ([]Entry, []string) {
	results := make([][]Entry, len(routes))
	errs := make([]error, len(routes))

	var eg errgroup.Group
	for i, r := range routes {
		i, r := i, r
		eg.Go(func() error {
			results[i], errs[i] = runRoute(ctx, r)
			return nil
		})
	}
	_ = eg.Wait()

	var (
		entries []Entry
		failed  []string
	)
	for i, r := range routes {
		if errs[i] != nil {
			g.logger().Error("sitemap route failed",
				zap.String("route", r.Path),
				zap.Error(errs[i]))
			failed = append(failed, r.Path)
			continue
		}
		entries = append(entries, results[i]...)
	}
	return entries, failed
}

func runRoute(ctx context.Context, r Route) (entries []Entry, err error) {
	defer func() {
		if p := recover(); p != nil {
			entries, err = nil, fmt.Errorf("panic: %v", p)
		}
	}()
	if r.Entries == nil {
		return nil, fmt.Errorf("route has no entry producer")
	}
	return r.Entries(ctx)
}

// Normalize resolves entry URLs against the base URL and fills in defaults.
// Entries whose URL cannot be resolved keep it unchanged so validation can
// report them.
func (g *Generator) Normalize(entries []Entry) ([]Entry, error) {
	urls, err := urlutil.New(g.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	return g.normalize(urls, entries), nil
}

func (g *Generator) normalize(urls urlutil.Builder, entries []Entry) []Entry {
	freq := g.DefaultChangeFrequency
	if freq == "" {
		freq = DefaultChangeFrequency
	}
	priority := DefaultPriority
	if g.DefaultPriority != nil {
		priority = *g.DefaultPriority
	}
	now := Timestamp(g.now())
	log := g.logger()

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		var defaulted []string
		if abs, err := urls.Absolute(e.URL); err == nil {
			e.URL = abs
		}
		if e.LastModified == "" {
			e.LastModified = now
			defaulted = append(defaulted, "lastModified")
		}
		if e.ChangeFrequency == "" {
			e.ChangeFrequency = freq
			defaulted = append(defaulted, "changeFrequency")
		}
		if e.Priority == nil {
			e.Priority = Priority(priority)
			defaulted = append(defaulted, "priority")
		} else {
			e.Priority = Priority(*e.Priority)
		}
		if len(e.Alternates) > 0 {
			alts := make([]Alternate, len(e.Alternates))
			for i, a := range e.Alternates {
				if abs, err := urls.Absolute(a.Href); err == nil {
					a.Href = abs
				}
				alts[i] = a
			}
			e.Alternates = alts
		}
		if len(defaulted) > 0 {
			log.Debug("sitemap entry defaults applied",
				zap.String("url", e.URL),
				zap.Strings("defaulted", defaulted))
		}
		out = append(out, e)
	}
	return out
}
