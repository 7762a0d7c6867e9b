// Package fs provides filesystem-backed content scanning for permalink.
package fs

import (
	"context"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pgrzesik/permalink"
	"golang.org/x/sync/errgroup"
)

// Scanner walks content directories and resolves every content file
// into a slug index entry. The slug core itself does no I/O; all
// filesystem access lives here.
type Scanner struct {
	// Resolver converts each file path into its slug.
	Resolver permalink.SlugResolver

	// Convention is recorded on every produced entry.
	Convention string

	// Dirs are the content directories to walk.
	Dirs []string

	// Exts are the file extensions to include. Defaults to [".md"].
	Exts []string

	// Concurrency limits parallel file resolution. Defaults to 8.
	Concurrency int
}

// Scan resolves every matching file under the configured directories.
// Entries come back sorted by path for deterministic build output.
//
// Resolver errors abort the scan: a misplaced file reflects a
// structural problem in the content tree and will not become right by
// re-walking it.
func (s *Scanner) Scan(ctx context.Context) ([]*permalink.Entry, error) {
	paths, err := s.collect()
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	entries := make([]*permalink.Entry, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := s.resolveOne(p)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// collect gathers the matching file paths from all configured
// directories, sorted for a stable walk order.
func (s *Scanner) collect() ([]string, error) {
	exts := s.Exts
	if len(exts) == 0 {
		exts = []string{".md"}
	}

	var paths []string
	for _, dir := range s.Dirs {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(p))
			for _, want := range exts {
				if ext == strings.ToLower(want) {
					paths = append(paths, p)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// resolveOne resolves a single file into an entry. The content hash
// covers the raw bytes; the file is never parsed.
func (s *Scanner) resolveOne(path string) (*permalink.Entry, error) {
	slug, err := s.Resolver.Resolve(filepath.ToSlash(path))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &permalink.Entry{
		Slug:        slug,
		Path:        filepath.ToSlash(path),
		Convention:  s.Convention,
		ContentHash: hashBytes(data),
		ScannedAt:   time.Now().UTC(),
	}, nil
}

// hashBytes computes xxHash of the content and returns a hex string.
func hashBytes(data []byte) string {
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
