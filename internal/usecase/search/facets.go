package search

import (
	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// Facets aggregates the filterable dimensions of the live corpus with record
// counts per value, for building filter UIs.
type Facets struct {
	Types      map[content.Kind]int
	Categories map[string]int
	Regions    map[string]int
	MinYear    int
	MaxYear    int
	HasYears   bool
}

// Facets computes the available filter values from the corpus snapshot.
func (s *Service) Facets() Facets {
	f := Facets{
		Types:      make(map[content.Kind]int),
		Categories: make(map[string]int),
		Regions:    make(map[string]int),
	}
	docs := s.corpus.Documents()
	for i := range docs {
		doc := &docs[i]
		f.Types[doc.Kind()]++
		if doc.Category() != "" {
			f.Categories[doc.Category()]++
		}
		if doc.Region() != "" {
			f.Regions[doc.Region()]++
		}
		if year, ok := doc.Year().Get(); ok {
			if !f.HasYears || year < f.MinYear {
				f.MinYear = year
			}
			if !f.HasYears || year > f.MaxYear {
				f.MaxYear = year
			}
			f.HasYears = true
		}
	}
	return f
}
