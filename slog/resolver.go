// Package slog provides logging decorators for permalink services
// using the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/pgrzesik/permalink"
)

// Ensure LoggingResolver implements permalink.SlugResolver.
var _ permalink.SlugResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a SlugResolver with per-resolution logging.
type LoggingResolver struct {
	next   permalink.SlugResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next permalink.SlugResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(path string) (slug string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"path", path,
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(path)
}
