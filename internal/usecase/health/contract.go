package health

import "github.com/atelier-modern/archivesearch/internal/domain/content"

// CorpusCounter reports how many records each corpus holds.
type CorpusCounter interface {
	Counts() map[content.Kind]int
}
