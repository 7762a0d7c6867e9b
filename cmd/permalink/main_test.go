package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/pgrzesik/permalink/cmd/permalink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a throwaway database.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

// writeFile creates path (and its parents) under root with the given content.
func writeFile(t *testing.T, root, path, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"resolve", "scan", "list", "sitemap"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestCmdResolve(t *testing.T) {
	t.Parallel()

	t.Run("prints the slug for a post path", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"resolve", "posts/deep-dives/2023-08-10-some-text/some-file.md",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "deep-dives/some-text-some-file\n", stdout.String())
	})

	t.Run("quotes the empty slug", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"resolve", "posts/2023-08-10/index.md",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "\"\"\n", stdout.String())
	})

	t.Run("fails for a path outside the root", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"resolve", "--root", "/site/content", "/elsewhere/posts/2023-08-10-a.md",
		}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "/elsewhere/posts/2023-08-10-a.md")
		assert.Empty(t, stdout.String())
	})

	t.Run("resolves a topic README across multiple roots", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"resolve", "--convention", "topic",
			"--root", "/site/wiki", "--root", "/site/notes",
			"/site/notes/golang/README.md",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "golang\n", stdout.String())
	})
}

func TestCmdScan(t *testing.T) {
	t.Parallel()

	t.Run("lists resolved slugs for a content tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "posts/2023-08-10-some-slug.md", "# Post")
		writeFile(t, root, "posts/system-design-fundamentals/2025-04-01-caching.md", "# Caching")

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scan", root}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "some-slug")
		assert.Contains(t, stdout.String(), "system-design-fundamentals/caching")
	})

	t.Run("reports duplicate slugs and fails", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "posts/2023-08-10-caching.md", "# One")
		writeFile(t, root, "posts/2024-01-01-caching.md", "# Two")

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scan", root}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "duplicate slug")
		assert.Contains(t, stderr.String(), "caching")
	})

	t.Run("indexes entries for later listing", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "posts/2023-08-10-some-slug.md", "# Post")

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scan", "--index", root}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Indexed 1 entries.")

		stdout.Reset()
		err = m.Run(context.Background(), []string{"list"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "some-slug")
	})
}

func TestCmdList_EmptyIndex(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No entries found")
}

func TestCmdSitemap(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "posts/2023-08-10-some-slug.md", "# Post")

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"scan", "--index", root}, stdout, stderr)
	require.NoError(t, err)

	stdout.Reset()
	err = m.Run(context.Background(), []string{"sitemap", "--base-url", "https://example.com"}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "<loc>https://example.com/some-slug</loc>")
	assert.Contains(t, stdout.String(), "urlset")
}
