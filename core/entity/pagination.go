package entity

// Pagination is a page of items cut from a larger, already filtered list.
type Pagination[T any] struct {
	Items      []T
	TotalItems int
	TotalPages int
	PageNumber int
	PageSize   int
}

// Paginate slices items into the requested page. Out of range pages are empty.
func Paginate[T any](items []T, pageNumber, pageSize int) Pagination[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	total := len(items)
	pages := 0
	if total > 0 {
		pages = (total-1)/pageSize + 1
	}

	// compared before multiplying so huge page numbers cannot overflow
	var page []T
	if pageNumber <= pages {
		start := (pageNumber - 1) * pageSize
		end := min(start+pageSize, total)
		page = items[start:end]
	} else {
		page = items[total:]
	}

	return Pagination[T]{
		Items:      page,
		TotalItems: total,
		TotalPages: pages,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}
