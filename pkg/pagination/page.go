package pagination

import (
	"math"
	"slices"
)

// Page is the normalised shape every list endpoint resolves to.
type Page[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// MakePage fills missing metadata with zero. TotalPages is derived from
// total and pageSize when the server omits it and both are known.
func MakePage[T any](items []T, total, totalPages, currentPage, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	if totalPages <= 0 && total > 0 && pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return &Page[T]{
		Items:       items,
		Total:       max(total, 0),
		TotalPages:  max(totalPages, 0),
		CurrentPage: max(currentPage, 0),
		PageSize:    max(pageSize, 0),
	}
}

func (p *Page[T]) HasNext() bool {
	return p != nil && p.CurrentPage < p.TotalPages
}

func (p *Page[T]) HasPrevious() bool {
	return p != nil && p.CurrentPage > 1
}

// Clone copies the page and its item slice. Items themselves are shared.
func (p *Page[T]) Clone() *Page[T] {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Items = slices.Clone(p.Items)

	if clone.Items == nil {
		clone.Items = []T{}
	}

	return &clone
}

// HydratePage maps the items of a page while keeping its metadata.
func HydratePage[S any, D any](source *Page[S], mapper func(S) D) *Page[D] {
	if source == nil {
		return MakePage[D](nil, 0, 0, 0, 0)
	}

	mapped := make([]D, len(source.Items))
	for i, item := range source.Items {
		mapped[i] = mapper(item)
	}

	return &Page[D]{
		Items:       mapped,
		Total:       source.Total,
		TotalPages:  source.TotalPages,
		CurrentPage: source.CurrentPage,
		PageSize:    source.PageSize,
	}
}
