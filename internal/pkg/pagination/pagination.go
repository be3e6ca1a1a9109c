package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	DefaultSize = 6
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// Meta describes a sliced page for templates.
type Meta struct {
	Total       int
	CurrentPage int
	TotalPage   int
	Size        int
	HasNextPage bool
	HasPrevPage bool
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context, defaultSize int) Query {
	if defaultSize <= 0 {
		defaultSize = DefaultSize
	}
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", strconv.Itoa(defaultSize)), defaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Slice returns the requested page of items. A page past the end clamps to
// the last non-empty page so stale links never render an empty list.
func Slice[T any](items []T, q Query) ([]T, Meta) {
	total := len(items)
	size := q.Size
	if size < 1 {
		size = DefaultSize
	}

	totalPage := (total + size - 1) / size
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPage > 0 && page > totalPage {
		page = totalPage
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	meta := Meta{
		Total:       total,
		CurrentPage: page,
		TotalPage:   totalPage,
		Size:        size,
		HasNextPage: page < totalPage,
		HasPrevPage: page > 1,
	}
	return items[start:end], meta
}

// Pages lists page numbers for pager links.
func (m Meta) Pages() []int {
	pages := make([]int, 0, m.TotalPage)
	for i := 1; i <= m.TotalPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
