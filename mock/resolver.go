// Package mock provides function-field mock implementations of
// permalink interfaces for testing.
package mock

import "github.com/pgrzesik/permalink"

var _ permalink.SlugResolver = (*Resolver)(nil)

// Resolver is a mock implementation of permalink.SlugResolver.
type Resolver struct {
	ResolveFn func(path string) (string, error)
}

func (r *Resolver) Resolve(path string) (string, error) {
	return r.ResolveFn(path)
}
