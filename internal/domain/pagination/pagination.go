// Package pagination implements the generic page-slicing algorithm shared by
// every listing usecase. It operates on an already-filtered, already-ordered
// in-memory sequence and never reorders it.
package pagination

import (
	domainerrors "timesheet/internal/domain/errors"
)

// DefaultPageSize is applied by callers when the request carries no explicit
// page size.
const DefaultPageSize = 10

// Page is the immutable result of slicing one page out of an ordered
// sequence. It is constructed per request and never persisted.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether a page with a higher number holds any items.
func (p *Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// HasPrevious reports whether the page number is past the first page.
func (p *Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

// Paginate slices the requested page out of items.
//
// pageNumber and pageSize must both be positive; anything else is rejected
// with ErrInvalidPagination instead of producing an undefined slice. Pages
// past the end of the sequence return an empty Items slice, not an error.
func Paginate[T any](items []T, pageNumber, pageSize int) (*Page[T], error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, domainerrors.ErrInvalidPagination.WrapMessage("paginate")
	}

	totalCount := len(items)
	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}

	// Comparing against totalPages before computing the offset keeps the
	// multiplication below from overflowing on absurd page numbers.
	if pageNumber > totalPages {
		return &Page[T]{
			Items:      make([]T, 0),
			PageNumber: pageNumber,
			PageSize:   pageSize,
			TotalCount: totalCount,
			TotalPages: totalPages,
		}, nil
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return &Page[T]{
		Items:      page,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}
