package domain

// Page is the shared windowed view returned by every list operation.
// NextOffset is non-nil iff the collection has more elements beyond the
// returned window.
type Page[T any] struct {
	Items      []T
	NextOffset *int
}

// Paginate applies the offset/limit windowing contract. It looks ahead by one
// element so that a separate count query is never needed: when more than limit
// elements remain past offset, the first limit of them are returned together
// with NextOffset = offset + limit. An offset beyond the collection yields an
// empty page. Negative offsets and non-positive limits fall back to 0 and 10.
func Paginate[T any](offset, limit int, items []T) Page[T] {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}

	if offset >= len(items) {
		return Page[T]{Items: []T{}}
	}

	window := items[offset:]
	if len(window) > limit {
		next := offset + limit
		return Page[T]{Items: window[:limit], NextOffset: &next}
	}
	return Page[T]{Items: window}
}
