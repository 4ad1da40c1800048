package search

import (
	"strings"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
)

// matchesFilters applies every filter dimension conjunctively. Category and
// region predicates bind only to the content kind that carries the attribute;
// other kinds pass through unaffected. Year ranges skip documents with no
// year-like attribute rather than excluding them.
func matchesFilters(doc *document.Document, f query.Filters) bool {
	if !f.AllowsKind(doc.Kind()) {
		return false
	}
	if !matchesCategory(doc, f.Categories()) {
		return false
	}
	if !matchesRegion(doc, f.Regions()) {
		return false
	}
	return matchesYearRange(doc, f.YearRange())
}

func matchesCategory(doc *document.Document, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	switch doc.Kind() {
	case content.Work:
		return containsFold(categories, doc.Category())
	case content.Scholar, content.Biography:
		// Category is a work attribute; other kinds are unaffected.
		return true
	default:
		return true
	}
}

func matchesRegion(doc *document.Document, regions []string) bool {
	if len(regions) == 0 {
		return true
	}
	switch doc.Kind() {
	case content.Scholar:
		return containsFold(regions, doc.Region())
	case content.Work, content.Biography:
		// Region is a scholar attribute; other kinds are unaffected.
		return true
	default:
		return true
	}
}

func matchesYearRange(doc *document.Document, r *query.YearRange) bool {
	if r == nil {
		return true
	}
	year, ok := doc.Year().Get()
	if !ok {
		// No year-like attribute: skip the filter rather than exclude.
		return true
	}
	return r.Contains(year)
}

func containsFold(haystack []string, value string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, value) {
			return true
		}
	}
	return false
}
