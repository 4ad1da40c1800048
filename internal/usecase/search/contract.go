package search

import (
	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/domain/document"
)

// CorpusReader exposes the static corpus snapshot to the search engine.
type CorpusReader interface {
	Documents() []document.Document
	Works() []content.WorkRecord
	Scholars() []content.ScholarRecord
}
