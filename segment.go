package permalink

import "strings"

// SegmentKind classifies a single path segment.
type SegmentKind int

// Segment kinds, in classification priority order.
const (
	// KindPlain is any segment with no special meaning.
	KindPlain SegmentKind = iota

	// KindDateOnly is a segment that is exactly a YYYY-MM-DD date.
	KindDateOnly

	// KindDateWithSlug is a YYYY-MM-DD date followed by "-" and at
	// least one further character of slug text.
	KindDateWithSlug

	// KindIndexMarker is a trailing "index" or "README" segment.
	KindIndexMarker
)

// Segment is the classification of one path component.
type Segment struct {
	// Raw is the segment text as it appears in the path.
	Raw string

	// Kind tags how the segment participates in slug construction.
	Kind SegmentKind

	// Text is the slug text captured after the date prefix.
	// Set only for KindDateWithSlug.
	Text string
}

// dateLen is the length of the YYYY-MM-DD date grammar.
const dateLen = len("2006-01-02")

// ClassifySegment classifies one path segment. last reports whether
// the segment is the final component of the path. Classification is
// total: every string maps to some kind.
//
// Rules, in priority order:
//
//	last, equals "index" or "README" (case-insensitive) → KindIndexMarker
//	exactly YYYY-MM-DD                                  → KindDateOnly
//	YYYY-MM-DD followed by "-" and ≥1 character         → KindDateWithSlug
//	anything else                                       → KindPlain
func ClassifySegment(raw string, last bool) Segment {
	if last && isIndexMarker(raw) {
		return Segment{Raw: raw, Kind: KindIndexMarker}
	}
	if hasDatePrefix(raw) {
		if len(raw) == dateLen {
			return Segment{Raw: raw, Kind: KindDateOnly}
		}
		if raw[dateLen] == '-' && len(raw) > dateLen+1 {
			return Segment{Raw: raw, Kind: KindDateWithSlug, Text: raw[dateLen+1:]}
		}
	}
	return Segment{Raw: raw, Kind: KindPlain}
}

// hasDatePrefix reports whether s begins with the 10-character
// numeric-dashed date grammar. Checked byte-wise so classification
// does not depend on a pattern engine's anchoring or greediness.
func hasDatePrefix(s string) bool {
	if len(s) < dateLen {
		return false
	}
	for i := 0; i < dateLen; i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isIndexMarker(s string) bool {
	return strings.EqualFold(s, "index") || strings.EqualFold(s, "README")
}
