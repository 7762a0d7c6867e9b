package main

import (
	"fmt"
	"path/filepath"

	"github.com/pgrzesik/permalink"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	resolver, err := newResolver(c.Convention, c.Root)
	if err != nil {
		return err
	}

	slug, err := maybeLogResolver(resolver, deps).Resolve(filepath.ToSlash(c.Path))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", permalink.ErrorMessage(err))
		return err
	}

	// A purely date/index path legally resolves to the empty slug;
	// quote it so the output stays visible.
	if slug == "" {
		fmt.Fprintln(deps.Stdout, `""`)
		return nil
	}
	fmt.Fprintln(deps.Stdout, slug)
	return nil
}
