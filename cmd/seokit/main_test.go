package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose, outDir, strict = "", false, "public", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func production(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("SITE_NAME", "Example")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEO_INDEXING", "")
}

func writeSiteFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seokit dev\n", out)
}

func TestRobotsCommand(t *testing.T) {
	production(t)
	site := writeSiteFile(t, "robots:\n  additional_disallows: [\"/drafts/\"]\n")

	out, err := run(t, "robots", "--config", site)
	require.NoError(t, err)
	assert.Contains(t, out, "Disallow: /drafts/\n")
	assert.Contains(t, out, "Sitemap: https://example.com/sitemap.xml\n")
}

func TestRobotsCommandStaging(t *testing.T) {
	t.Setenv("SITE_URL", "https://staging.example.com")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("SEO_INDEXING", "")
	site := writeSiteFile(t, "robots:\n  custom_rules:\n    - user_agents: [Googlebot]\n      allow: [\"/\"]\n")

	out, err := run(t, "robots", "--config", site)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: ")
	assert.True(t, strings.HasSuffix(out, "User-agent: *\nDisallow: /\n\n"), out)
}

func TestSitemapCommand(t *testing.T) {
	production(t)
	site := writeSiteFile(t, "routes:\n  - url: /\n  - url: /about\n")
	dir := t.TempDir()

	out, err := run(t, "sitemap", "--config", site, "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "sitemap.xml"))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://example.com/about</loc>")
}

func TestSitemapCommandStrict(t *testing.T) {
	production(t)
	site := writeSiteFile(t, "routes:\n  - url: /\n    priority: 2\n")

	_, err := run(t, "sitemap", "--config", site, "--out", t.TempDir())
	require.NoError(t, err, "issues are warnings without --strict")

	_, err = run(t, "sitemap", "--config", site, "--out", t.TempDir(), "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0, 1]")
}

func TestValidateCommand(t *testing.T) {
	production(t)
	out, err := run(t, "validate", "--config", writeSiteFile(t, "routes:\n  - url: /\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	t.Setenv("SITE_URL", "example.com")
	_, err = run(t, "validate")
	assert.Error(t, err)
}

func TestMissingSiteFile(t *testing.T) {
	_, err := run(t, "robots", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
