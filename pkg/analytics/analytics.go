// Package analytics produces general keyword statistics for the research
// document, independent of the vocabulary list. The run summary uses it to
// show what the document talks about beyond the tracked terms.
package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// stopwords are skipped during keyword analysis. The list targets English
// prose; it can be extended as needed.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "almost": {}, "also": {}, "although": {}, "always": {}, "am": {},
	"among": {}, "an": {}, "and": {}, "another": {}, "any": {}, "are": {},
	"around": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "enough": {}, "etc": {}, "even": {}, "ever": {},
	"every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {},

	"just": {},

	"less": {}, "like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "more": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"neither": {}, "never": {}, "no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "or": {}, "other": {}, "our": {}, "out": {}, "over": {},
	"own": {},

	"per": {}, "perhaps": {},

	"rather": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"something": {}, "still": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"then": {}, "there": {}, "therefore": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "thus": {}, "to": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"used": {}, "using": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},
}

type Analytics struct{}

// IsStopword reports whether a word is filtered out of keyword analysis.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency tokenizes text on whitespace, strips surrounding
// punctuation, drops stopwords, and returns per-word counts.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep only lowercase letters and digits
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, exists := stopwords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopKeywords returns the n most frequent non-stopword words as "word:count"
// strings, ordered by count descending and then alphabetically so repeated
// runs emit identical summaries.
func (a *Analytics) TopKeywords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := n
	if len(counts) < limit {
		limit = len(counts)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", counts[i].Word, counts[i].Count)
	}

	return keywords
}
