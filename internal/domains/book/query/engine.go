// Package query implements the catalog view pipeline: filter by
// category, filter by free-text query, sort, paginate. The engine is
// pure and stateless; it is re-run on every user interaction over an
// already-loaded collection.
package query

import (
	"sort"
	"strings"

	"safaia-backend/internal/domains/book/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll passes every category through the filter.
const CategoryAll = "All"

// Sort strategies.
const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortTitle       = "title"
	SortRecommended = "recommended"
)

// Params is one catalog view request. Page is 1-based.
type Params struct {
	Category string
	Query    string
	Sort     string
	Page     int
}

// Result is one page of the filtered, sorted collection.
type Result struct {
	Books      []model.Book
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Engine applies the filter → sort → paginate pipeline. The taxonomy
// and page size come from configuration, not constants, so the same
// engine serves catalogs with different taxonomies.
type Engine struct {
	categories []string
	pageSize   int
	locale     language.Tag
}

// New creates an engine. pageSize must be positive.
func New(categories []string, pageSize int) *Engine {
	return &Engine{
		categories: categories,
		pageSize:   pageSize,
		locale:     language.Polish,
	}
}

// Categories returns the configured taxonomy with the "All" sentinel
// prepended, in display order.
func (e *Engine) Categories() []string {
	out := make([]string, 0, len(e.categories)+1)
	out = append(out, CategoryAll)
	return append(out, e.categories...)
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// Run applies all four stages and returns the requested page.
func (e *Engine) Run(books []model.Book, p Params) Result {
	filtered := e.FilterCategory(books, p.Category)
	filtered = e.Search(filtered, p.Query)
	sorted := e.Sort(filtered, p.Sort)
	return e.Paginate(sorted, p.Page)
}

// FilterCategory keeps records whose category equals the selection
// exactly (case-sensitive). Empty selection and the "All" sentinel pass
// everything through.
func (e *Engine) FilterCategory(books []model.Book, category string) []model.Book {
	if category == "" || category == CategoryAll {
		return books
	}

	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Search keeps records where the lower-cased query is a substring of
// the title, the author name, or any tag. An empty query passes the
// collection through unchanged.
func (e *Engine) Search(books []model.Book, query string) []model.Book {
	if query == "" {
		return books
	}

	lower := strings.ToLower(query)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.MatchesQuery(lower) {
			out = append(out, b)
		}
	}
	return out
}

// Sort returns a new ordering of the collection. All strategies use a
// stable sort so equal keys keep their relative order, which makes
// repeated sorts deterministic.
func (e *Engine) Sort(books []model.Book, strategy string) []model.Book {
	sorted := make([]model.Book, len(books))
	copy(sorted, books)

	switch strategy {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PublishedAt().After(sorted[j].PublishedAt())
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PublishedAt().Before(sorted[j].PublishedAt())
		})
	case SortTitle:
		// Locale-aware comparison: Polish diacritics sort next to
		// their base letters, not after "z" in code-point order.
		col := collate.New(e.locale)
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortRecommended:
		// Stable partition: recommended records first, both groups
		// keeping their pre-sort relative order.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Recommended && !sorted[j].Recommended
		})
	}

	return sorted
}

// Paginate slices the requested 1-based page. A page past the end
// yields an empty slice, not an error.
func (e *Engine) Paginate(books []model.Book, page int) Result {
	if page < 1 {
		page = 1
	}

	total := len(books)
	totalPages := (total + e.pageSize - 1) / e.pageSize

	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Books:      books[start:end],
		Total:      total,
		Page:       page,
		PageSize:   e.pageSize,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
