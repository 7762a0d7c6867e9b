package main

import (
	"fmt"
	"sort"

	"github.com/pgrzesik/permalink"
	"github.com/pgrzesik/permalink/fs"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	roots := c.Root
	if len(roots) == 0 {
		roots = c.Dirs
	}

	resolver, err := newResolver(c.Convention, roots)
	if err != nil {
		return err
	}

	scanner := &fs.Scanner{
		Resolver:   maybeLogResolver(resolver, deps),
		Convention: c.Convention,
		Dirs:       c.Dirs,
		Exts:       c.Ext,
	}

	entries, err := scanner.Scan(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", permalink.ErrorMessage(err))
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", e.Slug, e.Path)
	}

	// Slug uniqueness is this pipeline's responsibility, not the
	// resolvers'. Report every collision before failing.
	if dups := permalink.FindDuplicateSlugs(entries); len(dups) > 0 {
		slugs := make([]string, 0, len(dups))
		for slug := range dups {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)

		for _, slug := range slugs {
			fmt.Fprintf(deps.Stderr, "duplicate slug %q:\n", slug)
			for _, p := range dups[slug] {
				fmt.Fprintf(deps.Stderr, "  %s\n", p)
			}
		}
		return permalink.Errorf(permalink.ECONFLICT, "%d duplicate slug(s) found", len(dups))
	}

	if c.Index {
		if err := deps.Entries.DeleteEntriesByConvention(deps.Ctx, c.Convention); err != nil {
			return err
		}
		for _, e := range entries {
			if err := deps.Entries.CreateEntry(deps.Ctx, e); err != nil {
				return err
			}
		}
		fmt.Fprintf(deps.Stdout, "Indexed %d entries.\n", len(entries))
	}

	return nil
}
