package permalink

import (
	"path"
	"strings"
)

// Convention names recorded on index entries.
const (
	ConventionPost     = "post"
	ConventionTopic    = "topic"
	ConventionPage     = "page"
	ConventionResearch = "research"
)

// SlugResolver converts a content file path into its canonical slug.
//
// Paths are slash-separated; callers holding OS paths convert with
// filepath.ToSlash first. Resolvers are pure: output depends only on
// the input path and the immutable root configuration, so a resolver
// may be shared across goroutines without coordination.
type SlugResolver interface {
	// Resolve returns the slug for path.
	// Returns EROOTMISMATCH if path is not under a configured root.
	Resolve(path string) (string, error)
}

// Compile-time interface verification.
var (
	_ SlugResolver = (*PostResolver)(nil)
	_ SlugResolver = (*TopicResolver)(nil)
	_ SlugResolver = (*PageResolver)(nil)
)

// PostResolver resolves blog-post paths. Root is the content directory
// holding the post-type folders; the first segment after the root (the
// post-type folder) is always stripped before partitioning, regardless
// of date rules.
type PostResolver struct {
	Root string
}

// NewPostResolver returns a PostResolver anchored at root.
func NewPostResolver(root string) *PostResolver {
	return &PostResolver{Root: root}
}

// Resolve returns the slug for p.
//
//	posts/deep-dives/2023-08-10-some-text/some-file.md → deep-dives/some-text-some-file
//	posts/2023-08-10-deep-dives/some-text/some-file.md → deep-dives-some-text-some-file
//	posts/2023-08-10/index.md                          → "" (empty string)
func (r *PostResolver) Resolve(p string) (string, error) {
	segments, err := relativeSegments(r.Root, p)
	if err != nil {
		return "", err
	}

	// Drop the post-type folder.
	segments = segments[1:]

	folder, parts := partition(segments, true)
	return assemble(folder, parts), nil
}

// TopicResolver resolves README-indexed topic paths. Roots are
// candidate content directories tried in order; the first root that is
// an ancestor of the path wins.
type TopicResolver struct {
	Roots []string
}

// NewTopicResolver returns a TopicResolver over the given root
// candidates, tried in order.
func NewTopicResolver(roots ...string) *TopicResolver {
	return &TopicResolver{Roots: roots}
}

// Resolve returns the parent directory's relative path, "/"-joined
// verbatim, as the slug. The file itself must be named README in any
// case and with any single extension; anything else is EBADFILENAME.
// No date logic and no hierarchy flattening apply.
func (r *TopicResolver) Resolve(p string) (string, error) {
	var rel string
	found := false
	for _, root := range r.Roots {
		if s, err := relativeTo(root, p); err == nil {
			rel = s
			found = true
			break
		}
	}
	if !found {
		return "", Errorf(EROOTMISMATCH, "path %q is outside the configured content roots", p)
	}

	segments := splitSegments(rel)
	if len(segments) == 0 {
		return "", Errorf(EROOTMISMATCH, "path %q does not name a file under its content root", p)
	}

	last := len(segments) - 1
	name := strings.TrimSuffix(segments[last], path.Ext(segments[last]))
	if !strings.EqualFold(name, "README") {
		return "", Errorf(EBADFILENAME, "topic file %q must be named README", p)
	}

	return strings.Join(segments[:last], "/"), nil
}

// PageResolver resolves generic content paths: the whole relative path
// after the root is partitioned directly, with no post-type strip.
// DisableDates turns off date classification entirely, which suits
// unstructured in-research trees where date-like folder names carry no
// meaning; only the index-marker rule applies there.
type PageResolver struct {
	Root         string
	DisableDates bool
}

// NewPageResolver returns a date-aware PageResolver anchored at root.
func NewPageResolver(root string) *PageResolver {
	return &PageResolver{Root: root}
}

// Resolve returns the slug for p.
func (r *PageResolver) Resolve(p string) (string, error) {
	segments, err := relativeSegments(r.Root, p)
	if err != nil {
		return "", err
	}

	folder, parts := partition(segments, !r.DisableDates)
	return assemble(folder, parts), nil
}

// relativeSegments validates that p descends from root and returns the
// path components between them, with exactly one extension stripped
// from the final component.
func relativeSegments(root, p string) ([]string, error) {
	rel, err := relativeTo(root, p)
	if err != nil {
		return nil, err
	}

	segments := splitSegments(rel)
	if len(segments) == 0 {
		return nil, Errorf(EROOTMISMATCH, "path %q does not name a file under root %q", p, root)
	}

	last := len(segments) - 1
	segments[last] = strings.TrimSuffix(segments[last], path.Ext(segments[last]))
	return segments, nil
}

// relativeTo returns p relative to root, or EROOTMISMATCH when root is
// not an ancestor of p. Matching is ancestor-based on cleaned paths:
// "/a/bc" is not under "/a/b".
func relativeTo(root, p string) (string, error) {
	cleanRoot := path.Clean(root)
	cleanPath := path.Clean(p)

	if cleanRoot == "." {
		// Relative paths are anchored at the working root.
		if cleanPath == "." || path.IsAbs(cleanPath) || cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
			return "", Errorf(EROOTMISMATCH, "path %q is outside content root %q", p, root)
		}
		return cleanPath, nil
	}

	prefix := cleanRoot + "/"
	if cleanRoot == "/" {
		prefix = "/"
	}
	if cleanPath == cleanRoot || !strings.HasPrefix(cleanPath, prefix) {
		return "", Errorf(EROOTMISMATCH, "path %q is outside content root %q", p, root)
	}
	return strings.TrimPrefix(cleanPath, prefix), nil
}

// splitSegments splits a relative path into its non-empty components.
func splitSegments(rel string) []string {
	var segments []string
	for _, seg := range strings.Split(rel, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
