// Package paging holds the page request and response envelope shared by the
// services and the HTTP layer.
package paging

const (
	DefaultSize = 15
	MaxSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"size"`
}

// Normalize clamps p to a valid page: Number at least 1 and Size in
// [1, MaxSize], with DefaultSize when unset.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Number - 1) * p.Size
}

// Result is one page of items plus the total number of matching rows.
type Result[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewResult builds the envelope for items fetched with p.
func NewResult[T any](items []T, p Page, total int) Result[T] {
	p = p.Normalize()
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = (total + p.Size - 1) / p.Size
	}
	return Result[T]{
		Items:      items,
		Page:       p.Number,
		Size:       p.Size,
		Total:      total,
		TotalPages: pages,
	}
}

// Map converts the items of r, keeping the paging metadata.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, len(r.Items))
	for i, item := range r.Items {
		out[i] = fn(item)
	}
	return Result[U]{
		Items:      out,
		Page:       r.Page,
		Size:       r.Size,
		Total:      r.Total,
		TotalPages: r.TotalPages,
	}
}
