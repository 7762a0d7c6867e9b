package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pgrzesik/permalink"
	permaslog "github.com/pgrzesik/permalink/slog"
	"github.com/pgrzesik/permalink/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
	DB      *sqlite.DB
	Entries permalink.EntryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log resolution details to stderr"`

	Resolve ResolveCmd `cmd:"" help:"Resolve a content file path to its slug"`
	Scan    ScanCmd    `cmd:"" help:"Scan content directories and report slugs"`
	List    ListCmd    `cmd:"" help:"List indexed entries"`
	Sitemap SitemapCmd `cmd:"" help:"Write a sitemap.xml from the index"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Path       string   `arg:"" help:"Content file path"`
	Convention string   `short:"c" default:"post" enum:"post,topic,page,research" help:"Naming convention"`
	Root       []string `short:"r" help:"Content root (repeatable for the topic convention; defaults to the working directory)"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Dirs       []string `arg:"" help:"Content directories to scan"`
	Convention string   `short:"c" default:"post" enum:"post,topic,page,research" help:"Naming convention"`
	Root       []string `short:"r" help:"Content root (defaults to the scanned directories)"`
	Ext        []string `help:"File extensions to include" default:".md"`
	Index      bool     `help:"Persist entries to the index database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Convention string `short:"c" help:"Only list entries for this convention"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string `required:"" help:"Site base URL, e.g. https://example.com"`
	Out     string `short:"o" help:"Output file (defaults to stdout)"`
}

// maybeLogResolver wraps a resolver with logging when --verbose is set.
func maybeLogResolver(r permalink.SlugResolver, deps *Dependencies) permalink.SlugResolver {
	if !deps.Verbose {
		return r
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
	return permaslog.NewLoggingResolver(r, logger)
}

// newResolver builds the resolver for a convention over the given roots.
func newResolver(convention string, roots []string) (permalink.SlugResolver, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	switch convention {
	case permalink.ConventionPost:
		return permalink.NewPostResolver(roots[0]), nil
	case permalink.ConventionTopic:
		return permalink.NewTopicResolver(roots...), nil
	case permalink.ConventionPage:
		return permalink.NewPageResolver(roots[0]), nil
	case permalink.ConventionResearch:
		return &permalink.PageResolver{Root: roots[0], DisableDates: true}, nil
	}
	return nil, permalink.Errorf(permalink.EINVALID, "unknown convention %q", convention)
}
