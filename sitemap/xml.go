package sitemap

import (
	"encoding/xml"
	"io"
	"math"
	"strconv"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr,omitempty"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string      `xml:"loc"`
	Alternates []xhtmlLink `xml:"xhtml:link"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapIndex struct {
	XMLName  xml.Name   `xml:"sitemapindex"`
	XMLNS    string     `xml:"xmlns,attr"`
	Sitemaps []indexXML `xml:"sitemap"`
}

type indexXML struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteURLSet writes entries as a sitemap urlset document.
func WriteURLSet(w io.Writer, entries []Entry) error {
	set := urlSet{XMLNS: sitemapNS, URLs: make([]urlXML, 0, len(entries))}
	for _, e := range entries {
		u := urlXML{
			Loc:        e.URL,
			LastMod:    formatLastMod(e.LastModified),
			ChangeFreq: string(e.ChangeFrequency),
		}
		if e.Priority != nil && !math.IsNaN(*e.Priority) {
			u.Priority = strconv.FormatFloat(*e.Priority, 'f', -1, 64)
		}
		for _, a := range e.Alternates {
			u.Alternates = append(u.Alternates, xhtmlLink{Rel: "alternate", Hreflang: a.Hreflang, Href: a.Href})
		}
		if len(u.Alternates) > 0 {
			set.XHTML = xhtmlNS
		}
		set.URLs = append(set.URLs, u)
	}
	return encode(w, set)
}

// WriteIndex writes a sitemapindex document.
func WriteIndex(w io.Writer, index []IndexEntry) error {
	idx := sitemapIndex{XMLNS: sitemapNS, Sitemaps: make([]indexXML, 0, len(index))}
	for _, e := range index {
		idx.Sitemaps = append(idx.Sitemaps, indexXML{Loc: e.URL, LastMod: formatLastMod(e.LastModified)})
	}
	return encode(w, idx)
}

func encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// formatLastMod rewrites parseable dates as RFC3339 and passes anything else
// through.
func formatLastMod(s string) string {
	if s == "" {
		return ""
	}
	t, err := ParseLastModified(s)
	if err != nil {
		return s
	}
	return Timestamp(t)
}
