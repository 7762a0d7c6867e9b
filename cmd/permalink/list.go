package main

import (
	"fmt"

	"github.com/pgrzesik/permalink"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := permalink.EntryFilter{}
	if c.Convention != "" {
		filter.Convention = &c.Convention
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", permalink.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'permalink scan --index' to build the index.")
		return nil
	}

	for _, e := range entries {
		slug := e.Slug
		if slug == "" {
			slug = `""`
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", slug, e.Convention, e.Path)
	}

	return nil
}
