package seokit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/eringen/seokit/sitemap"
)

func generate(t *testing.T, size int, entries ...sitemap.Entry) *sitemap.Result {
	t.Helper()
	gen := &sitemap.Generator{BaseURL: "https://example.com", MaxEntries: size}
	res, err := gen.Generate(context.Background(), []sitemap.Route{sitemap.StaticRoute("static", entries...)})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func TestWriteSitemapFilesSingle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := generate(t, 0, sitemap.Entry{URL: "/"}, sitemap.Entry{URL: "/about"})

	written, err := WriteSitemapFiles(dir, res)
	if err != nil {
		t.Fatalf("WriteSitemapFiles failed: %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "sitemap.xml" {
		t.Fatalf("written = %v, want only sitemap.xml", written)
	}
	data, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<loc>https://example.com/about</loc>") {
		t.Errorf("sitemap.xml missing /about:\n%s", data)
	}
}

func TestWriteSitemapFilesIndex(t *testing.T) {
	dir := t.TempDir()
	res := generate(t, 1, sitemap.Entry{URL: "/a"}, sitemap.Entry{URL: "/b"}, sitemap.Entry{URL: "/c"})

	written, err := WriteSitemapFiles(dir, res)
	if err != nil {
		t.Fatalf("WriteSitemapFiles failed: %v", err)
	}
	var names []string
	for _, p := range written {
		names = append(names, filepath.Base(p))
	}
	want := "sitemap.xml sitemap-0.xml sitemap-1.xml sitemap-2.xml"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
	index, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "<sitemapindex") {
		t.Errorf("sitemap.xml is not an index:\n%s", index)
	}
	child, err := os.ReadFile(filepath.Join(dir, "sitemap-2.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(child), "<loc>https://example.com/c</loc>") {
		t.Errorf("sitemap-2.xml missing /c:\n%s", child)
	}
}

func TestSitemapProblems(t *testing.T) {
	clean := generate(t, 0, sitemap.Entry{URL: "/"})
	if err := SitemapProblems(clean); err != nil {
		t.Errorf("SitemapProblems(clean) = %v, want nil", err)
	}

	dirty := generate(t, 0, sitemap.Entry{URL: "/", Priority: sitemap.Priority(2)})
	dirty.Failed = []string{"blog"}
	err := SitemapProblems(dirty)
	if err == nil {
		t.Fatal("expected an error")
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("error type = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(merr.Errors), merr.Errors)
	}
	if !strings.Contains(err.Error(), "route blog failed") {
		t.Errorf("error %q does not name the failed route", err)
	}
}
