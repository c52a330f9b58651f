package resource

// CountBy tallies records by the value the classifier returns. Callers pass
// the full unfiltered collection: summary counters always reflect global
// state, never the active filter.
func CountBy[T any](records []T, classify func(record T) string) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		counts[classify(record)]++
	}
	return counts
}

// CountWhere counts records satisfying the predicate.
func CountWhere[T any](records []T, predicate func(record T) bool) int {
	total := 0
	for _, record := range records {
		if predicate(record) {
			total++
		}
	}
	return total
}
