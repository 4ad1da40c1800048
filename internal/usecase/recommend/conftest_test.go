package recommend

import (
	"testing"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
	domrec "github.com/atelier-modern/archivesearch/internal/domain/recommend"
)

// --- Mocks ---

type mockCorpus struct {
	works    []content.WorkRecord
	scholars []content.ScholarRecord
	facts    []content.BiographyFact
	byID     map[string]document.Document
}

func (m *mockCorpus) Works() []content.WorkRecord             { return m.works }
func (m *mockCorpus) Scholars() []content.ScholarRecord       { return m.scholars }
func (m *mockCorpus) BiographyFacts() []content.BiographyFact { return m.facts }

func (m *mockCorpus) DocumentByID(id string) (document.Document, bool) {
	doc, ok := m.byID[id]
	return doc, ok
}

func makeWork(t *testing.T, id, title, category, location string, year int, status string) content.WorkRecord {
	t.Helper()
	w, err := content.NewWork(id, title, category, location, year, status, "Archive entry for "+title+".")
	if err != nil {
		t.Fatalf("content.NewWork: %v", err)
	}
	return w
}

func makeScholar(t *testing.T, id, name, region string, specs []string) content.ScholarRecord {
	t.Helper()
	s, err := content.NewScholar(content.ScholarParams{
		ID:              id,
		Name:            name,
		Region:          region,
		Specializations: specs,
		Biography:       "Researcher profile for " + name + ".",
	})
	if err != nil {
		t.Fatalf("content.NewScholar: %v", err)
	}
	return s
}

func makeFact(t *testing.T, id, section, title string, year int) content.BiographyFact {
	t.Helper()
	f, err := content.NewBiographyFact(id, section, title, "Chapter note on "+title+".", year, 1901)
	if err != nil {
		t.Fatalf("content.NewBiographyFact: %v", err)
	}
	return f
}

// newTestCorpus builds the fixture shared by the recommender tests.
func newTestCorpus(t *testing.T) *mockCorpus {
	t.Helper()

	c := &mockCorpus{
		works: []content.WorkRecord{
			makeWork(t, "maison-tropicale", "Maison Tropicale", "residential", "Niamey", 1949, "relocated"),
			makeWork(t, "cite-universitaire", "Cité Universitaire", "educational", "Nancy", 1954, "extant"),
			makeWork(t, "maison-du-peuple", "Maison du Peuple", "civic", "Clichy", 1939, "extant"),
			makeWork(t, "ecole-de-villejuif", "École provisoire de Villejuif", "educational", "Villejuif", 1956, "demolished"),
		},
		scholars: []content.ScholarRecord{
			makeScholar(t, "scholar-laurent", "Catherine Laurent", "Grand Est",
				[]string{"prefabrication"}),
			makeScholar(t, "scholar-okafor", "Adaeze Okafor", "West Africa",
				[]string{"heritage conservation", "modern movement"}),
			makeScholar(t, "scholar-dubois", "Marie Dubois", "Île-de-France",
				[]string{"social housing", "prefabrication"}),
		},
		facts: []content.BiographyFact{
			makeFact(t, "bio-maxeville", "workshop-years", "Move to the Maxéville factory", 1948),
			makeFact(t, "bio-tropical", "workshop-years", "Tropical house commissions", 1949),
			makeFact(t, "bio-teaching", "later-years", "Teaching constructed culture", 1957),
		},
		byID: make(map[string]document.Document),
	}
	for i := range c.works {
		c.byID[c.works[i].ID()] = document.FromWork(&c.works[i])
	}
	for i := range c.scholars {
		c.byID[c.scholars[i].ID()] = document.FromScholar(&c.scholars[i])
	}
	for i := range c.facts {
		c.byID[c.facts[i].ID()] = document.FromBiographyFact(&c.facts[i])
	}
	return c
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(newTestCorpus(t), Config{})
}

func makeOptions(t *testing.T, maxResults int, kinds []content.Kind, excludeIDs []string) domrec.Options {
	t.Helper()
	opts, err := domrec.NewOptions(maxResults, kinds, excludeIDs)
	if err != nil {
		t.Fatalf("recommend.NewOptions: %v", err)
	}
	return opts
}
