package graphmodel

import "sort"

// termCount pairs a term with its frequency so the map can be sorted.
type termCount struct {
	Term  string
	Count int
}

// usedTerms returns the terms with a positive count, sorted by count
// descending and then alphabetically. The alphabetical tie-break makes the
// ordering stable and reproducible regardless of map iteration order.
func usedTerms(freq map[string]int) []termCount {
	used := make([]termCount, 0, len(freq))
	for term, count := range freq {
		if count > 0 {
			used = append(used, termCount{Term: term, Count: count})
		}
	}

	sort.Slice(used, func(i, j int) bool {
		if used[i].Count != used[j].Count {
			return used[i].Count > used[j].Count
		}
		return used[i].Term < used[j].Term
	})

	return used
}

// TopTerms returns the k most frequent used terms, ties broken
// alphabetically on the normalized term string. Terms with a zero count are
// never selected. The result preserves the (count desc, term asc) order.
func TopTerms(freq map[string]int, k int) []string {
	used := usedTerms(freq)

	limit := k
	if len(used) < limit {
		limit = len(used)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = used[i].Term
	}

	return top
}
