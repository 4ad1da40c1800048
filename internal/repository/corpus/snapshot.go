package corpus

import (
	"fmt"

	"github.com/atelier-modern/archivesearch/internal/domain"
	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
)

// Snapshot is the immutable in-memory corpus. Normalized documents are built
// exactly once at construction; after that the snapshot is safe to share
// across concurrent callers without locking.
type Snapshot struct {
	works    []content.WorkRecord
	scholars []content.ScholarRecord
	facts    []content.BiographyFact
	docs     []document.Document
	byID     map[string]int
}

// NewSnapshot builds a snapshot from the three corpora, normalizing every
// record into its searchable document form. IDs must be unique across all
// content kinds.
func NewSnapshot(
	works []content.WorkRecord,
	scholars []content.ScholarRecord,
	facts []content.BiographyFact,
) (*Snapshot, error) {
	s := &Snapshot{
		works:    works,
		scholars: scholars,
		facts:    facts,
		docs:     make([]document.Document, 0, len(works)+len(scholars)+len(facts)),
		byID:     make(map[string]int, len(works)+len(scholars)+len(facts)),
	}
	for i := range works {
		if err := s.add(document.FromWork(&works[i])); err != nil {
			return nil, err
		}
	}
	for i := range scholars {
		if err := s.add(document.FromScholar(&scholars[i])); err != nil {
			return nil, err
		}
	}
	for i := range facts {
		if err := s.add(document.FromBiographyFact(&facts[i])); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Snapshot) add(doc document.Document) error {
	if _, exists := s.byID[doc.ID()]; exists {
		return fmt.Errorf("%w: duplicate corpus id %q", domain.ErrInvalidRecord, doc.ID())
	}
	s.byID[doc.ID()] = len(s.docs)
	s.docs = append(s.docs, doc)
	return nil
}

// Works returns the architectural works.
func (s *Snapshot) Works() []content.WorkRecord { return s.works }

// Scholars returns the scholars.
func (s *Snapshot) Scholars() []content.ScholarRecord { return s.scholars }

// BiographyFacts returns the biography facts.
func (s *Snapshot) BiographyFacts() []content.BiographyFact { return s.facts }

// Documents returns every normalized document, works first, then scholars,
// then biography facts, each group in corpus order.
func (s *Snapshot) Documents() []document.Document { return s.docs }

// DocumentByID looks up a normalized document by identifier.
func (s *Snapshot) DocumentByID(id string) (document.Document, bool) {
	i, ok := s.byID[id]
	if !ok {
		return document.Document{}, false
	}
	return s.docs[i], true
}

// Counts returns the number of records per content kind.
func (s *Snapshot) Counts() map[content.Kind]int {
	return map[content.Kind]int{
		content.Work:      len(s.works),
		content.Scholar:   len(s.scholars),
		content.Biography: len(s.facts),
	}
}
