// Package view derives the filtered, paginated view a user browses over
// the catalog. The filtered subsequence is recomputed from the query on
// demand; only the query and the current page number are state.
package view

import (
	"strconv"
	"strings"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/domain/product"
)

// DefaultPageSize matches the generated gallery grid (4 columns x 5 rows).
const DefaultPageSize = 20

// Engine owns the free-text query and the current page over a catalog.
type Engine struct {
	store    *catalog.Store
	pageSize int

	query string
	page  int
}

// NewEngine creates an Engine on page 1 with an empty query. A
// non-positive pageSize falls back to DefaultPageSize.
func NewEngine(store *catalog.Store, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		store:    store,
		pageSize: pageSize,
		page:     1,
	}
}

// SetQuery replaces the search query and returns the user to page 1.
// Resetting the page on every query change is deliberate: new results
// always start from their first page.
func (e *Engine) SetQuery(text string) {
	e.query = strings.ToLower(text)
	e.page = 1
}

// Query returns the current query text (lowercased).
func (e *Engine) Query() string {
	return e.query
}

// Filtered returns the products whose name contains the query,
// case-insensitively, preserving catalog order. An empty query matches
// the whole catalog.
func (e *Engine) Filtered() []product.Product {
	all := e.store.All()
	if e.query == "" {
		return all
	}
	out := make([]product.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), e.query) {
			out = append(out, p)
		}
	}
	return out
}

// FilteredCount returns the size of the filtered view.
func (e *Engine) FilteredCount() int {
	return len(e.Filtered())
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// PageCount reports the number of pages over the filtered view, never
// less than 1: an empty result still renders one empty page.
func (e *Engine) PageCount() int {
	return pageCount(e.FilteredCount(), e.pageSize)
}

// Page returns the current page, clamped against the current filtered
// view size.
func (e *Engine) Page() int {
	return clamp(e.page, 1, e.PageCount())
}

// SetPage moves to page n, clamped to [1, PageCount]. Out-of-range
// requests are clamped, never rejected.
func (e *Engine) SetPage(n int) {
	e.page = clamp(n, 1, e.PageCount())
}

// GoToPage parses a page number entered as text and navigates to it,
// clamped. Non-numeric input changes nothing. It reports whether the
// current page changed.
func (e *Engine) GoToPage(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	before := e.Page()
	e.SetPage(n)
	return e.Page() != before
}

// PageItems returns the slice of the filtered view shown on the current
// page. The last page may be short; an empty view yields an empty page.
func (e *Engine) PageItems() []product.Product {
	filtered := e.Filtered()
	page := clamp(e.page, 1, pageCount(len(filtered), e.pageSize))

	start := (page - 1) * e.pageSize
	if start >= len(filtered) {
		return []product.Product{}
	}
	end := start + e.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageOffset returns the index within the filtered view of the first
// item on the current page. Gallery cards use it to address products by
// filtered position when opening the detail modal.
func (e *Engine) PageOffset() int {
	return (e.Page() - 1) * e.pageSize
}

func pageCount(filtered, pageSize int) int {
	n := (filtered + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
