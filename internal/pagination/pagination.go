package pagination

// Page is one window over a listing.
type Page[T any] struct {
	Items   []T
	Number  int
	Total   int
	Count   int
	PerPage int
}

// Paginate clamps page to the available range and returns that window. Asking
// for a page past the end yields the last page, never an empty slice of a
// non-empty listing.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = 1
	}

	total := (len(items) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}

	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:   items[start:end],
		Number:  page,
		Total:   total,
		Count:   len(items),
		PerPage: perPage,
	}
}

// Offset is the zero based position of the first item on the page.
func (p Page[T]) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.Total
}

func (p Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}
