package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pgrzesik/permalink"
	"github.com/pgrzesik/permalink/etree"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, permalink.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", permalink.ErrorMessage(err))
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer := etree.NewSitemapWriter(c.BaseURL)
	if err := writer.WriteSitemap(out, entries); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Wrote sitemap for %d entries to %s\n", len(entries), c.Out)
	}
	return nil
}
