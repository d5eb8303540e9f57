package seokit

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/seokit/sitemap"
)

// Store wraps a SQLite database of pages that feed the sitemap.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the sitemap read while pages are written; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    path TEXT PRIMARY KEY,
    updated_at TEXT NOT NULL DEFAULT '',
    change_freq TEXT NOT NULL DEFAULT '',
    priority REAL,
    published INTEGER NOT NULL DEFAULT 1
);
`)
	return err
}

// SavePage upserts a page. The path is stored with a single leading slash.
func (s *Store) SavePage(p Page) error {
	published := 0
	if p.Published {
		published = 1
	}
	var priority sql.NullFloat64
	if p.Priority != nil {
		priority = sql.NullFloat64{Float64: *p.Priority, Valid: true}
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO pages (path, updated_at, change_freq, priority, published) VALUES (?, ?, ?, ?, ?)`,
		normalizePath(p.Path), p.UpdatedAt, string(p.ChangeFrequency), priority, published)
	return err
}

// GetPage returns a page by path regardless of published status.
func (s *Store) GetPage(path string) (Page, error) {
	row := s.db.QueryRow(`SELECT path, updated_at, change_freq, priority, published FROM pages WHERE path = ?`, normalizePath(path))
	return scanPage(row)
}

// DeletePage removes a page by path.
func (s *Store) DeletePage(path string) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE path = ?`, normalizePath(path))
	return err
}

// ListPages returns all published pages ordered by path.
func (s *Store) ListPages(ctx context.Context) ([]Page, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, updated_at, change_freq, priority, published FROM pages WHERE published = 1 ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Route exposes the published pages as a sitemap route labelled label.
func (s *Store) Route(label string) sitemap.Route {
	return sitemap.Route{
		Path: label,
		Entries: func(ctx context.Context) ([]sitemap.Entry, error) {
			pages, err := s.ListPages(ctx)
			if err != nil {
				return nil, err
			}
			entries := make([]sitemap.Entry, 0, len(pages))
			for _, p := range pages {
				entries = append(entries, p.Entry())
			}
			return entries, nil
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(r rowScanner) (Page, error) {
	var (
		p         Page
		freq      string
		priority  sql.NullFloat64
		published int
	)
	if err := r.Scan(&p.Path, &p.UpdatedAt, &freq, &priority, &published); err != nil {
		return Page{}, err
	}
	p.ChangeFrequency = sitemap.ChangeFrequency(freq)
	if priority.Valid {
		v := priority.Float64
		p.Priority = &v
	}
	p.Published = published == 1
	return p, nil
}

func normalizePath(p string) string {
	return "/" + strings.TrimLeft(strings.TrimSpace(p), "/")
}
