package permalink_test

import (
	"testing"

	"github.com/pgrzesik/permalink"
	"github.com/stretchr/testify/assert"
)

func TestClassifySegment(t *testing.T) {
	t.Parallel()

	t.Run("classifies exact date as DateOnly", func(t *testing.T) {
		t.Parallel()

		seg := permalink.ClassifySegment("2023-08-10", false)

		assert.Equal(t, permalink.KindDateOnly, seg.Kind)
		assert.Equal(t, "2023-08-10", seg.Raw)
	})

	t.Run("classifies date with trailing text as DateWithSlug", func(t *testing.T) {
		t.Parallel()

		seg := permalink.ClassifySegment("2023-08-10-some-text", false)

		assert.Equal(t, permalink.KindDateWithSlug, seg.Kind)
		assert.Equal(t, "some-text", seg.Text)
	})

	t.Run("classifies trailing index as IndexMarker", func(t *testing.T) {
		t.Parallel()

		seg := permalink.ClassifySegment("index", true)

		assert.Equal(t, permalink.KindIndexMarker, seg.Kind)
	})

	t.Run("classifies trailing README as IndexMarker case-insensitively", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"README", "readme", "Readme", "INDEX", "Index"} {
			seg := permalink.ClassifySegment(raw, true)
			assert.Equal(t, permalink.KindIndexMarker, seg.Kind, "segment %q", raw)
		}
	})

	t.Run("index marker rule only applies to the last segment", func(t *testing.T) {
		t.Parallel()

		seg := permalink.ClassifySegment("index", false)

		assert.Equal(t, permalink.KindPlain, seg.Kind)
	})

	t.Run("rejects near-miss date grammars", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"2023-8-10",      // single-digit month
			"20230810",       // no dashes
			"2023_08_10",     // wrong separator
			"2023-08-1",      // too short
			"2023-08-10x",    // no dash before the slug text
			"2023-08-10-",    // dash but no slug text
			"x2023-08-10",    // date not at the start
			"some-2023-file", // dashes in the wrong places
			"",               // empty segment
		} {
			seg := permalink.ClassifySegment(raw, false)
			assert.Equal(t, permalink.KindPlain, seg.Kind, "segment %q", raw)
		}
	})

	t.Run("date digits are not validated as a calendar date", func(t *testing.T) {
		t.Parallel()

		// The grammar is purely positional: 4 digits, dash, 2 digits,
		// dash, 2 digits.
		seg := permalink.ClassifySegment("9999-99-99", false)

		assert.Equal(t, permalink.KindDateOnly, seg.Kind)
	})

	t.Run("captures unicode slug text", func(t *testing.T) {
		t.Parallel()

		seg := permalink.ClassifySegment("2023-08-10-čłánek-o-go", false)

		assert.Equal(t, permalink.KindDateWithSlug, seg.Kind)
		assert.Equal(t, "čłánek-o-go", seg.Text)
	})
}
