package search

import (
	"testing"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
)

// --- Mocks ---

type mockCorpus struct {
	works    []content.WorkRecord
	scholars []content.ScholarRecord
	facts    []content.BiographyFact
	docs     []document.Document
}

func (m *mockCorpus) Documents() []document.Document    { return m.docs }
func (m *mockCorpus) Works() []content.WorkRecord       { return m.works }
func (m *mockCorpus) Scholars() []content.ScholarRecord { return m.scholars }

func makeWork(t *testing.T, id, title, category, location string, year int, status, description string) content.WorkRecord {
	t.Helper()
	w, err := content.NewWork(id, title, category, location, year, status, description)
	if err != nil {
		t.Fatalf("content.NewWork: %v", err)
	}
	return w
}

func makeScholar(t *testing.T, p content.ScholarParams) content.ScholarRecord {
	t.Helper()
	s, err := content.NewScholar(p)
	if err != nil {
		t.Fatalf("content.NewScholar: %v", err)
	}
	return s
}

func makeFact(t *testing.T, id, section, title, text string, year, birthYear int) content.BiographyFact {
	t.Helper()
	f, err := content.NewBiographyFact(id, section, title, text, year, birthYear)
	if err != nil {
		t.Fatalf("content.NewBiographyFact: %v", err)
	}
	return f
}

// newTestCorpus builds a small mixed corpus shared by the engine tests.
func newTestCorpus(t *testing.T) *mockCorpus {
	t.Helper()

	pub, err := content.NewPublication(
		"Series and Standard", "Workshop methods after 1945.", 2011, []string{"prefabrication"},
	)
	if err != nil {
		t.Fatalf("content.NewPublication: %v", err)
	}

	c := &mockCorpus{
		works: []content.WorkRecord{
			makeWork(t, "maison-tropicale", "Maison Tropicale", "residential", "Niamey",
				1949, "relocated", "Prefabricated aluminium house shipped in pieces to West Africa."),
			makeWork(t, "cite-universitaire", "Cité Universitaire", "educational", "Nancy",
				1954, "extant", "Student housing with prefabricated facade panels."),
			makeWork(t, "maison-du-peuple", "Maison du Peuple", "civic", "Clichy",
				1939, "extant", "Covered market with a movable floor."),
		},
		scholars: []content.ScholarRecord{
			makeScholar(t, content.ScholarParams{
				ID:              "scholar-laurent",
				Name:            "Catherine Laurent",
				Institution:     "ENSA Nancy",
				Region:          "Grand Est",
				Specializations: []string{"prefabrication"},
				Biography:       "Historian of industrialised building.",
				Publications:    []content.Publication{pub},
			}),
			makeScholar(t, content.ScholarParams{
				ID:          "scholar-okafor",
				Name:        "Adaeze Okafor",
				Institution: "University of Lagos",
				Region:      "West Africa",
				Biography:   "Studies the afterlife of modern movement buildings.",
			}),
		},
		facts: []content.BiographyFact{
			makeFact(t, "bio-first-workshop", "early-life", "First workshop opens",
				"Opened a small atelier in Nancy.", 1924, 1901),
			makeFact(t, "bio-origins", "early-life", "Family origins",
				"Born into a family of artists.", 0, 0),
		},
	}
	for i := range c.works {
		c.docs = append(c.docs, document.FromWork(&c.works[i]))
	}
	for i := range c.scholars {
		c.docs = append(c.docs, document.FromScholar(&c.scholars[i]))
	}
	for i := range c.facts {
		c.docs = append(c.docs, document.FromBiographyFact(&c.facts[i]))
	}
	return c
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(newTestCorpus(t), Config{})
}

func makeQuery(t *testing.T, term string, filters query.Filters, sortBy query.Sort, limit, offset int) query.Query {
	t.Helper()
	q, err := query.New(term, filters, sortBy, limit, offset)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}

func makeFilters(t *testing.T, kinds []content.Kind, categories, regions []string, yearRange *query.YearRange) query.Filters {
	t.Helper()
	f, err := query.NewFilters(kinds, categories, regions, yearRange)
	if err != nil {
		t.Fatalf("query.NewFilters: %v", err)
	}
	return f
}
