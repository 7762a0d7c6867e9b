package permalink

import "strings"

// assemble joins the folder-structure prefix with "/" and the slug
// parts with "-", separating the two groups with "/" only when both
// are non-empty. The result is normalized. Both groups empty yields
// the empty string, a legal slug for a path that is purely a date or
// index marker.
func assemble(folder, slugParts []string) string {
	prefix := strings.Join(folder, "/")
	parts := strings.Join(slugParts, "-")

	var slug string
	switch {
	case prefix == "":
		slug = parts
	case parts == "":
		slug = prefix
	default:
		slug = prefix + "/" + parts
	}
	return Normalize(slug)
}

// Normalize removes hyphen artifacts from a slug: leading and trailing
// hyphens, runs of hyphens, and hyphens directly adjacent to a "/"
// (left behind by empty slug-part joins). Normalize is idempotent:
// applying it twice yields the same result as once.
func Normalize(slug string) string {
	var sb strings.Builder
	sb.Grow(len(slug))

	for i := 0; i < len(slug); i++ {
		if slug[i] != '-' {
			sb.WriteByte(slug[i])
			continue
		}

		// Scan the full hyphen run, then decide whether one survives.
		j := i
		for j < len(slug) && slug[j] == '-' {
			j++
		}
		atStart := i == 0 || slug[i-1] == '/'
		atEnd := j == len(slug) || slug[j] == '/'
		if !atStart && !atEnd {
			sb.WriteByte('-')
		}
		i = j - 1
	}

	return sb.String()
}
