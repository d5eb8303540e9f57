package seokit

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/robots"
	"github.com/eringen/seokit/sitemap"
)

const mimeXML = "application/xml; charset=utf-8"

func (a *App) handleRobots(c echo.Context) error {
	opts := a.RobotsOptions()
	// The feature toggle can only drop the file from an open site; anything
	// else keeps serving the lockdown policy.
	if opts.Open() && !a.SEO.Features.Enabled(config.FeatureRobots) {
		return echo.ErrNotFound
	}
	policy := robots.Generate(opts)
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(robots.ToText(policy)))
}

func (a *App) handleSitemap(c echo.Context) error {
	if !a.SEO.Features.Enabled(config.FeatureSitemap) {
		return echo.ErrNotFound
	}
	res, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if res.NeedsIndex() {
		err = sitemap.WriteIndex(&buf, res.Index)
	} else {
		err = sitemap.WriteURLSet(&buf, res.Entries)
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, mimeXML, buf.Bytes())
}

func (a *App) handleSitemapChild(c echo.Context) error {
	if !a.SEO.Features.Enabled(config.FeatureSitemap) {
		return echo.ErrNotFound
	}
	name := c.Param("file")
	if !strings.HasSuffix(name, ".xml") {
		return echo.ErrNotFound
	}
	n, err := strconv.Atoi(strings.TrimSuffix(name, ".xml"))
	if err != nil || n < 0 {
		return echo.ErrNotFound
	}
	res, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	if !res.NeedsIndex() || n >= len(res.Chunks) {
		return echo.ErrNotFound
	}
	var buf bytes.Buffer
	if err := sitemap.WriteURLSet(&buf, res.Chunks[n]); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, mimeXML, buf.Bytes())
}

func (a *App) handlePreview(c echo.Context) error {
	page := c.QueryParam("path")
	if page == "" {
		page = "/"
	}
	head, err := a.PageHead(page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return Render(c, previewPage(head))
}

// PageHead assembles the head metadata and structured data for path.
func (a *App) PageHead(path string) (Head, error) {
	head, err := NewHead(a.SEO, path)
	if err != nil {
		return Head{}, err
	}
	if !a.SEO.Features.Enabled(config.FeatureStructuredData) {
		return head, nil
	}
	docs, err := SiteDocuments(a.SEO, a.logo)
	if err != nil {
		return Head{}, err
	}
	pageDoc, err := PageDocument(a.SEO, path)
	if err != nil {
		return Head{}, err
	}
	head.Documents = append(docs, pageDoc)
	return head, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		_ = c.String(code, http.StatusText(code))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
