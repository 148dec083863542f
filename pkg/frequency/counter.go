// Package frequency counts whole-word occurrences of vocabulary terms in a
// research document. Matching is case-insensitive and exact: no stemming, no
// fuzzy matching, and a term never matches inside a larger word.
package frequency

import (
	"regexp"
	"strings"
)

// Count returns a map with one entry per distinct normalized term, valued by
// the number of non-overlapping whole-word matches in text, counted
// left-to-right. Terms absent from the text get a 0 entry. Terms are counted
// independently, so overlapping vocabularies ("ai" and "generative ai") each
// count their own matches over the same spans.
//
// Counting is a pure function of its inputs: the same (text, terms) pair
// always yields the same map, and term order never affects counts. Duplicate
// terms collapse to a single map entry.
func Count(text string, terms []string) map[string]int {
	frequencies := make(map[string]int, len(terms))
	textLower := strings.ToLower(text)

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			frequencies[term] = 0
			continue
		}

		frequencies[term] = countTerm(textLower, term)
	}

	return frequencies
}

// countTerm counts whole-word matches of a single already-lowered term.
// The term is escaped so characters like "." or "+" match literally, and
// anchored on both sides with word boundaries so "token" never matches
// inside "tokenization". Multi-word terms match boundary-to-boundary across
// the whole phrase, internal whitespace exactly as written.
func countTerm(textLower, term string) int {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	return len(pattern.FindAllStringIndex(textLower, -1))
}
