package query

import (
	"fmt"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// MaxTermLength bounds the free-text search term.
const MaxTermLength = 256

// Sort is the result ordering strategy.
type Sort string

// Sort key constants.
const (
	// Relevance orders by descending relevance score.
	Relevance Sort = "relevance"
	// Year orders by the type's year-like attribute, newest first.
	Year Sort = "year"
	// Title orders by locale-aware title comparison.
	Title Sort = "title"
	// Secondary orders by the type-specific secondary key
	// (location for works, name for scholars).
	Secondary Sort = "secondary"
)

// IsValid checks if the sort key is one of the supported values.
func (s Sort) IsValid() bool {
	return s == Relevance || s == Year || s == Title || s == Secondary
}

// YearRange is an inclusive [min, max] year constraint.
type YearRange struct {
	min int
	max int
}

// NewYearRange validates and creates a year range.
func NewYearRange(min, max int) (YearRange, error) {
	if min > max {
		return YearRange{}, fmt.Errorf("year range min %d exceeds max %d", min, max)
	}
	return YearRange{min: min, max: max}, nil
}

// Min returns the inclusive lower bound.
func (r YearRange) Min() int { return r.min }

// Max returns the inclusive upper bound.
func (r YearRange) Max() int { return r.max }

// Contains reports whether the year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.min && year <= r.max
}

// Filters holds the conjunctive filter dimensions of a query. Absent
// dimensions are no-ops.
type Filters struct {
	kinds      []content.Kind
	categories []string
	regions    []string
	yearRange  *YearRange
}

// NewFilters validates and creates a filter set.
func NewFilters(kinds []content.Kind, categories, regions []string, yearRange *YearRange) (Filters, error) {
	for _, k := range kinds {
		if !k.IsValid() {
			return Filters{}, fmt.Errorf("invalid content kind: %q", k)
		}
	}
	return Filters{kinds: kinds, categories: categories, regions: regions, yearRange: yearRange}, nil
}

// Kinds returns the content-kind restriction; empty means all kinds.
func (f Filters) Kinds() []content.Kind { return f.kinds }

// Categories returns the category restriction for works.
func (f Filters) Categories() []string { return f.categories }

// Regions returns the region restriction for scholars.
func (f Filters) Regions() []string { return f.regions }

// YearRange returns the year constraint (nil when absent).
func (f Filters) YearRange() *YearRange { return f.yearRange }

// AllowsKind reports whether the kind restriction admits the given kind.
func (f Filters) AllowsKind(k content.Kind) bool {
	if len(f.kinds) == 0 {
		return true
	}
	for _, want := range f.kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Query is a validated search query. The term may be empty: an empty-term
// query matches the whole corpus at a baseline score.
type Query struct {
	term    string
	filters Filters
	sortBy  Sort
	limit   int
	offset  int
}

// New validates and normalizes query parameters. An empty sort defaults to
// relevance. Limit and offset are normalized to non-negative; a zero limit
// means the engine's configured page size applies.
func New(term string, filters Filters, sortBy Sort, limit, offset int) (Query, error) {
	if len(term) > MaxTermLength {
		return Query{}, fmt.Errorf("term too long (max %d chars)", MaxTermLength)
	}
	if sortBy == "" {
		sortBy = Relevance
	}
	if !sortBy.IsValid() {
		return Query{}, fmt.Errorf("invalid sort key: %q", sortBy)
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return Query{term: term, filters: filters, sortBy: sortBy, limit: limit, offset: offset}, nil
}

// Term returns the free-text search term (possibly empty).
func (q *Query) Term() string { return q.term }

// Filters returns the filter dimensions.
func (q *Query) Filters() Filters { return q.filters }

// SortBy returns the ordering strategy.
func (q *Query) SortBy() Sort { return q.sortBy }

// Limit returns the requested page size; zero when the caller left it unset.
func (q *Query) Limit() int { return q.limit }

// Offset returns the number of sorted results to skip.
func (q *Query) Offset() int { return q.offset }
