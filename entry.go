package permalink

import (
	"context"
	"time"
)

// Entry represents one resolved content file in the site's slug index.
// The slug is the lookup key the content pipeline uses; uniqueness
// across the corpus is enforced by consumers, never by the resolvers.
type Entry struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Path        string    `json:"path"`
	Convention  string    `json:"convention"`
	ContentHash string    `json:"contentHash"`
	ScannedAt   time.Time `json:"scannedAt"`
}

// Validate returns an error if the entry contains invalid fields.
// An empty slug is legal: a path that is purely a date or index marker
// resolves to one.
func (e *Entry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	if e.Convention == "" {
		return Errorf(EINVALID, "entry convention required")
	}
	return nil
}

// EntryService represents a service for managing slug index entries.
type EntryService interface {
	// CreateEntry creates a new entry.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntryBySlug retrieves an entry by its slug.
	// Returns ENOTFOUND if no entry has the slug.
	FindEntryBySlug(ctx context.Context, slug string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, ordered by slug.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// DeleteEntriesByConvention removes all entries recorded for a convention.
	DeleteEntriesByConvention(ctx context.Context, convention string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Slug       *string `json:"slug"`
	Convention *string `json:"convention"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FindDuplicateSlugs returns, for each slug shared by more than one
// entry, the paths that resolved to it. Detection is exact: a false
// positive here would report a phantom collision to the site author.
func FindDuplicateSlugs(entries []*Entry) map[string][]string {
	bySlug := make(map[string][]string)
	for _, e := range entries {
		bySlug[e.Slug] = append(bySlug[e.Slug], e.Path)
	}

	dups := make(map[string][]string)
	for slug, paths := range bySlug {
		if len(paths) > 1 {
			dups[slug] = paths
		}
	}
	return dups
}
