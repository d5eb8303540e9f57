package seokit

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/seokit/config"
	"github.com/eringen/seokit/jsonld"
	"github.com/eringen/seokit/urlutil"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// Head is the metadata a page puts in its <head>.
type Head struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	Locale      string
	OpenGraph   config.OpenGraph
	Twitter     config.Twitter
	Documents   []jsonld.Document
}

// NewHead derives head metadata for path from cfg. The canonical URL has
// tracking parameters removed.
func NewHead(cfg config.SEOConfig, path string) (Head, error) {
	urls, err := urlutil.New(cfg.BaseURL)
	if err != nil {
		return Head{}, err
	}
	canonical, err := urls.Canonical(path)
	if err != nil {
		return Head{}, err
	}
	return Head{
		Title:       cfg.DefaultMetadata.Title,
		Description: cfg.DefaultMetadata.Description,
		Canonical:   canonical,
		Robots:      cfg.Robots.String(),
		Locale:      cfg.DefaultMetadata.Locale,
		OpenGraph:   cfg.OpenGraph,
		Twitter:     cfg.Twitter,
	}, nil
}

// Component renders the head tags, structured data included.
func (h Head) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", templ.EscapeString(h.Title)); err != nil {
			return err
		}
		metas := []struct{ attr, key, value string }{
			{"name", "description", h.Description},
			{"name", "robots", h.Robots},
			{"property", "og:type", h.OpenGraph.Type},
			{"property", "og:site_name", h.OpenGraph.SiteName},
			{"property", "og:locale", h.OpenGraph.Locale},
			{"property", "og:url", h.Canonical},
			{"property", "og:image", h.OpenGraph.Image},
			{"property", "fb:app_id", h.OpenGraph.FacebookAppID},
			{"name", "twitter:card", h.Twitter.Card},
			{"name", "twitter:site", h.Twitter.Site},
			{"name", "twitter:creator", h.Twitter.Handle},
		}
		for _, m := range metas {
			if m.value == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "<meta %s=\"%s\" content=\"%s\">\n",
				m.attr, m.key, templ.EscapeString(m.value)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "<link rel=\"canonical\" href=\"%s\">\n", templ.EscapeString(h.Canonical)); err != nil {
			return err
		}
		if len(h.Documents) == 0 {
			return nil
		}
		return jsonld.Script(h.Documents...).Render(ctx, w)
	})
}

func previewPage(h Head) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := languageTag(h.Locale)
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", templ.EscapeString(lang)); err != nil {
			return err
		}
		if err := h.Component().Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "</head>\n<body>\n<h1>%s</h1>\n<p>%s</p>\n</body>\n</html>\n",
			templ.EscapeString(h.Title), templ.EscapeString(h.Canonical))
		return err
	})
}
