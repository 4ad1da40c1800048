package search

import (
	"strings"

	"github.com/atelier-modern/archivesearch/internal/domain/document"
)

// scoreCeiling normalizes summed field weights into [0, 1]. A title hit alone
// (weight 10) saturates the score.
const scoreCeiling = 10.0

// emptyTermBaseline is the fixed score every document receives for an
// empty-term query, so browsing queries return the full corpus ordered by a
// secondary criterion instead of nothing.
const emptyTermBaseline = 0.3

// Score computes the relevance of a document for a term: case-insensitive
// substring containment per weighted field, summed and normalized by the
// ceiling, clamped to 1.0. Ties are left to the sort engine.
func Score(doc *document.Document, term string) float64 {
	if term == "" {
		return emptyTermBaseline
	}
	needle := strings.ToLower(term)
	sum := 0.0
	for _, f := range doc.Fields() {
		if f.Text() == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f.Text()), needle) {
			sum += f.Weight()
		}
	}
	score := sum / scoreCeiling
	if score > 1.0 {
		score = 1.0
	}
	return score
}
