package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atelier-modern/archivesearch/internal/domain/document"
	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
)

// scoredDoc pairs a document with its relevance score for one query.
type scoredDoc struct {
	doc   document.Document
	score float64
}

// sortDocs orders scored documents by the requested key. Every ordering is
// stable and total: relevance descends with insertion-order ties, year
// descends with missing years last, title and secondary ascend under
// locale-aware collation.
func sortDocs(docs []scoredDoc, sortBy query.Sort, lang language.Tag) {
	switch sortBy {
	case query.Relevance:
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].score > docs[j].score
		})
	case query.Year:
		sort.SliceStable(docs, func(i, j int) bool {
			yi, oki := docs[i].doc.Year().Get()
			yj, okj := docs[j].doc.Year().Get()
			if oki != okj {
				return oki // documents without a year sort last
			}
			return yi > yj
		})
	case query.Title:
		// A collator keeps internal buffers, so build one per sort.
		col := collate.New(lang)
		sort.SliceStable(docs, func(i, j int) bool {
			return col.CompareString(docs[i].doc.Title(), docs[j].doc.Title()) < 0
		})
	case query.Secondary:
		col := collate.New(lang)
		sort.SliceStable(docs, func(i, j int) bool {
			ki, kj := docs[i].doc.SecondaryKey(), docs[j].doc.SecondaryKey()
			if c := col.CompareString(ki, kj); c != 0 {
				return c < 0
			}
			return col.CompareString(docs[i].doc.Title(), docs[j].doc.Title()) < 0
		})
	}
}
