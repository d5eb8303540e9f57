package seokit

import "github.com/eringen/seokit/sitemap"

// Page is one crawlable page stored in SQLite and listed in the sitemap.
type Page struct {
	Path            string
	UpdatedAt       string // ISO-8601 date or timestamp
	ChangeFrequency sitemap.ChangeFrequency
	Priority        *float64
	Published       bool
}

// Entry converts the page into an unnormalized sitemap entry.
func (p Page) Entry() sitemap.Entry {
	return sitemap.Entry{
		URL:             p.Path,
		LastModified:    p.UpdatedAt,
		ChangeFrequency: p.ChangeFrequency,
		Priority:        p.Priority,
	}
}
