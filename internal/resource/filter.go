package resource

// FilterAll is the sentinel predicate value that disables a predicate, the
// equivalent of leaving the query parameter unset.
const FilterAll = "all"

// Predicates maps a field name to the exact value it must equal. Empty and
// FilterAll values are ignored.
type Predicates map[string]string

// FieldFunc resolves a named field on a record to its comparable string
// value. The second return reports whether the record carries the field at
// all; a record without an actively filtered field is excluded.
type FieldFunc[T any] func(record T, field string) (string, bool)

// Filter returns the subsequence of records matching every active predicate.
// Matching is exact string equality, predicates are ANDed, and input order is
// preserved.
func Filter[T any](records []T, predicates Predicates, field FieldFunc[T]) []T {
	active := make(Predicates, len(predicates))
	for name, want := range predicates {
		if want == "" || want == FilterAll {
			continue
		}
		active[name] = want
	}
	if len(active) == 0 {
		return records
	}

	matched := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAll(record, active, field) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matchesAll[T any](record T, active Predicates, field FieldFunc[T]) bool {
	for name, want := range active {
		value, ok := field(record, name)
		if !ok || value != want {
			return false
		}
	}
	return true
}
