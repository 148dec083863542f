// Package vocab extracts vocabulary terms from a markdown vocabulary
// document. A term lives on a "## N. Term" heading line; the text after the
// first dot is the term, lower-cased for consistent matching downstream.
package vocab

import (
	"strings"
)

const headingMarker = "##"

// ExtractTerms parses vocabulary-document text into an ordered list of
// normalized (lower-cased, trimmed) terms. Document order and duplicates are
// preserved. Terms that normalize to the empty string are skipped entirely,
// so they never show up as zero-count entries. A document without heading
// lines yields an empty list; there is no error case.
func ExtractTerms(vocabText string) []string {
	var terms []string

	for _, line := range strings.Split(vocabText, "\n") {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, headingMarker) {
			continue
		}

		term := termFromHeading(stripped)
		if term != "" {
			terms = append(terms, term)
		}
	}

	return terms
}

// termFromHeading pulls the raw term out of a heading line. Everything up to
// and including the first dot is discarded ("## 1. Generative AI" ->
// "Generative AI"); headings without a dot keep the text after the marker.
func termFromHeading(heading string) string {
	raw := heading
	if idx := strings.Index(heading, "."); idx >= 0 {
		raw = heading[idx+1:]
	} else {
		raw = strings.TrimPrefix(heading, headingMarker)
	}
	return strings.ToLower(strings.TrimSpace(raw))
}
