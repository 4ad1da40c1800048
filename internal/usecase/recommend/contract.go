package recommend

import (
	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
)

// CorpusReader exposes the static corpus snapshot to the recommender.
type CorpusReader interface {
	Works() []content.WorkRecord
	Scholars() []content.ScholarRecord
	BiographyFacts() []content.BiographyFact
	DocumentByID(id string) (document.Document, bool)
}
