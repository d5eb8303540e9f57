package sitemap

import (
	"fmt"
	"strings"
	"time"
)

// Split cuts entries into consecutive chunks of at most size entries,
// keeping order. A non-positive size uses MaxEntriesPerFile. Empty input
// yields no chunks.
func Split(entries []Entry, size int) [][]Entry {
	if size <= 0 {
		size = MaxEntriesPerFile
	}
	if len(entries) == 0 {
		return nil
	}
	chunks := make([][]Entry, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		chunks = append(chunks, entries[start:end:end])
	}
	return chunks
}

// ChildPath returns the path of the n-th child sitemap.
func ChildPath(n int) string {
	return fmt.Sprintf("/sitemap-%d.xml", n)
}

// IndexEntries returns one index entry per chunk, in chunk order, all
// stamped with now.
func IndexEntries(baseURL string, chunks int, now time.Time) []IndexEntry {
	base := strings.TrimRight(baseURL, "/")
	stamp := Timestamp(now)
	out := make([]IndexEntry, chunks)
	for i := range out {
		out[i] = IndexEntry{URL: base + ChildPath(i), LastModified: stamp}
	}
	return out
}
