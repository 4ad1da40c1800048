package search

import (
	"golang.org/x/text/language"

	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
	"github.com/atelier-modern/archivesearch/internal/domain/search/result"
)

// Pagination defaults, used when the configuration leaves them unset.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Config tunes the search engine. Zero values fall back to defaults.
type Config struct {
	// Collation selects the language for title comparison.
	Collation language.Tag
	// ExcerptLength bounds result excerpts in runes.
	ExcerptLength int
	// SuggestionLimit caps autocomplete results.
	SuggestionLimit int
	// DefaultPageSize is the page size applied when a query gives none.
	DefaultPageSize int
	// MaxPageSize caps the page size a query may request.
	MaxPageSize int
}

func (c Config) withDefaults() Config {
	if c.Collation == language.Und {
		c.Collation = language.French
	}
	if c.ExcerptLength <= 0 {
		c.ExcerptLength = DefaultExcerptLength
	}
	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = DefaultSuggestionLimit
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = DefaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = MaxPageSize
	}
	return c
}

// Service runs queries against the static corpus snapshot. It is stateless
// between calls and safe for concurrent use.
type Service struct {
	corpus CorpusReader
	cfg    Config
}

// New creates a search service over a corpus snapshot.
func New(corpus CorpusReader, cfg Config) *Service {
	return &Service{corpus: corpus, cfg: cfg.withDefaults()}
}

// Search scores, filters, sorts, paginates, and excerpts the corpus for one
// query. A non-empty term drops documents with a zero score; an empty term
// matches the whole corpus at the baseline score.
func (s *Service) Search(q query.Query) []result.Result {
	docs := s.corpus.Documents()
	matched := make([]scoredDoc, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		score := Score(doc, q.Term())
		if q.Term() != "" && score == 0 {
			continue
		}
		if !matchesFilters(doc, q.Filters()) {
			continue
		}
		matched = append(matched, scoredDoc{doc: *doc, score: score})
	}

	sortDocs(matched, q.SortBy(), s.cfg.Collation)

	limit := q.Limit()
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if q.Offset() >= len(matched) {
		return []result.Result{}
	}
	matched = matched[q.Offset():]
	if len(matched) > limit {
		matched = matched[:limit]
	}

	results := make([]result.Result, 0, len(matched))
	for i := range matched {
		doc := &matched[i].doc
		results = append(results, result.New(
			doc.ID(),
			doc.Kind(),
			doc.Title(),
			Excerpt(doc.Body(), s.cfg.ExcerptLength),
			matched[i].score,
			doc.Meta(),
		))
	}
	return results
}

// Validate reports whether the query parameters form a well-shaped query.
// It never executes the query and has no side effects.
func (s *Service) Validate(term string, filters query.Filters, sortBy query.Sort) bool {
	_, err := query.New(term, filters, sortBy, 0, 0)
	return err == nil
}
