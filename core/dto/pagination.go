package dto

import "event-portal/core/entity"

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// ToPagination maps a page through fn, keeping the paging metadata.
func ToPagination[E, T any](p entity.Pagination[E], fn func(E) T) Pagination[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Pagination[T]{
		Items:      items,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
