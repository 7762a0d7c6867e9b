package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgrzesik/permalink"
)

// Compile-time interface verification.
var _ permalink.EntryService = (*EntryService)(nil)

// EntryService implements permalink.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry creates a new entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *permalink.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	if entry.ScannedAt.IsZero() {
		entry.ScannedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, slug, path, convention, content_hash, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Slug, entry.Path, entry.Convention, entry.ContentHash,
		entry.ScannedAt.Format(time.RFC3339))

	return err
}

// FindEntryBySlug retrieves an entry by its slug. When the index holds
// duplicates for the slug, the first by path order is returned.
func (s *EntryService) FindEntryBySlug(ctx context.Context, slug string) (*permalink.Entry, error) {
	var entry permalink.Entry
	var scannedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, path, convention, content_hash, scanned_at
		FROM entries
		WHERE slug = ?
		ORDER BY path
		LIMIT 1
	`, slug).Scan(&entry.ID, &entry.Slug, &entry.Path, &entry.Convention, &entry.ContentHash, &scannedAt)

	if err == sql.ErrNoRows {
		return nil, permalink.Errorf(permalink.ENOTFOUND, "entry with slug %q not found", slug)
	}
	if err != nil {
		return nil, err
	}

	entry.ScannedAt, err = parseRFC3339(scannedAt, "scanned_at")
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by slug
// then path for deterministic output.
func (s *EntryService) FindEntries(ctx context.Context, filter permalink.EntryFilter) ([]*permalink.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, slug, path, convention, content_hash, scanned_at FROM entries WHERE 1=1")

	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Convention != nil {
		query.WriteString(" AND convention = ?")
		args = append(args, *filter.Convention)
	}

	query.WriteString(" ORDER BY slug, path")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*permalink.Entry
	for rows.Next() {
		var entry permalink.Entry
		var scannedAt string

		if err := rows.Scan(&entry.ID, &entry.Slug, &entry.Path, &entry.Convention, &entry.ContentHash, &scannedAt); err != nil {
			return nil, err
		}

		entry.ScannedAt, err = parseRFC3339(scannedAt, "scanned_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntriesByConvention removes all entries recorded for a convention.
func (s *EntryService) DeleteEntriesByConvention(ctx context.Context, convention string) error {
	if convention == "" {
		return permalink.Errorf(permalink.EINVALID, "convention required")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE convention = ?`, convention); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	return nil
}
