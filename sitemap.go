package seokit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/eringen/seokit/sitemap"
)

// WriteSitemapFiles writes res into dir: a single sitemap.xml urlset, or a
// sitemap.xml index plus one sitemap-N.xml per chunk. It returns the written
// paths in order.
func WriteSitemapFiles(dir string, res *sitemap.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("seokit: create sitemap dir: %w", err)
	}

	var written []string
	write := func(name string, fn func(*os.File) error) error {
		p := filepath.Join(dir, name)
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("seokit: write %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	if !res.NeedsIndex() {
		err := write("sitemap.xml", func(f *os.File) error {
			return sitemap.WriteURLSet(f, res.Entries)
		})
		return written, err
	}

	if err := write("sitemap.xml", func(f *os.File) error {
		return sitemap.WriteIndex(f, res.Index)
	}); err != nil {
		return written, err
	}
	for i, chunk := range res.Chunks {
		name := strings.TrimPrefix(sitemap.ChildPath(i), "/")
		if err := write(name, func(f *os.File) error {
			return sitemap.WriteURLSet(f, chunk)
		}); err != nil {
			return written, err
		}
	}
	return written, nil
}

// SitemapProblems folds validation issues and failed routes into one error,
// or nil when the run was clean.
func SitemapProblems(res *sitemap.Result) error {
	var result *multierror.Error
	if err := res.Issues.Err(); err != nil {
		result = multierror.Append(result, err)
	}
	for _, route := range res.Failed {
		result = multierror.Append(result, fmt.Errorf("route %s failed", route))
	}
	return result.ErrorOrNil()
}
