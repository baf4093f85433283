package fitclient

// Dated is implemented by records keyed by their YYYY-MM-DD date.
type Dated interface {
	DateKey() string
}

// UpsertByDate returns list with entry replacing the first element of the
// same date, or with entry prepended when no element has that date.
// list is not modified.
func UpsertByDate[T Dated](list []T, entry T) []T {
	for i := range list {
		if list[i].DateKey() == entry.DateKey() {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = entry
			return out
		}
	}
	return Prepend(list, entry)
}

// Prepend returns a new slice with entry in front of list.
func Prepend[T any](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}
