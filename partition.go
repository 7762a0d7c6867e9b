package permalink

// partition walks segments in order and splits them into the
// folder-structure prefix (plain segments seen before the first
// date-bearing segment) and the slug parts (everything from that
// segment onward).
//
// A date-bearing segment's own captured text always lands in
// slugParts: the foundDate flip happens atomically with that push.
// This is what makes a date at the root of a path collapse the whole
// path into a hyphenated slug, while a date sitting deeper preserves
// the root-level folders as a "/"-joined prefix.
//
// A path with no date-bearing segment collapses entirely into
// slugParts; the folder prefix only exists relative to a date.
//
// dates=false disables date classification: every date-like segment
// is treated as plain and only the index-marker rule applies.
func partition(segments []string, dates bool) (folder, slugParts []string) {
	foundDate := false
	for i, raw := range segments {
		seg := ClassifySegment(raw, i == len(segments)-1)
		if !dates && (seg.Kind == KindDateOnly || seg.Kind == KindDateWithSlug) {
			seg = Segment{Raw: raw, Kind: KindPlain}
		}
		switch seg.Kind {
		case KindIndexMarker:
			// Dropped entirely.
		case KindDateOnly:
			foundDate = true
		case KindDateWithSlug:
			foundDate = true
			slugParts = append(slugParts, seg.Text)
		case KindPlain:
			if foundDate {
				slugParts = append(slugParts, seg.Raw)
			} else {
				folder = append(folder, seg.Raw)
			}
		}
	}
	if !foundDate {
		return nil, folder
	}
	return folder, slugParts
}
