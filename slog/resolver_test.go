package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pgrzesik/permalink"
	"github.com/pgrzesik/permalink/mock"
	permaslog "github.com/pgrzesik/permalink/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs path, slug and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(path string) (string, error) {
				return "deep-dives/some-text", nil
			},
		}

		resolver := permaslog.NewLoggingResolver(inner, logger)
		slug, err := resolver.Resolve("/c/posts/deep-dives/2023-08-10-some-text.md")

		require.NoError(t, err)
		assert.Equal(t, "deep-dives/some-text", slug)
		output := buf.String()
		assert.Contains(t, output, "resolve")
		assert.Contains(t, output, "path=/c/posts/deep-dives/2023-08-10-some-text.md")
		assert.Contains(t, output, "slug=deep-dives/some-text")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(path string) (string, error) {
				return "", permalink.Errorf(permalink.EROOTMISMATCH, "path %q is outside content root", path)
			},
		}

		resolver := permaslog.NewLoggingResolver(inner, logger)
		_, err := resolver.Resolve("/stray.md")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "resolve")
		assert.Contains(t, buf.String(), "err=")
	})
}
