package result

import "github.com/atelier-modern/archivesearch/internal/domain/content"

// Result is a single search hit. Constructed fresh per query, never persisted.
type Result struct {
	id      string
	kind    content.Kind
	title   string
	excerpt string
	score   float64
	meta    map[string]string
}

// New creates a search result.
func New(id string, kind content.Kind, title, excerpt string, score float64, meta map[string]string) Result {
	return Result{id: id, kind: kind, title: title, excerpt: excerpt, score: score, meta: meta}
}

// ID returns the document identifier.
func (r *Result) ID() string { return r.id }

// Kind returns the content kind.
func (r *Result) Kind() content.Kind { return r.kind }

// Title returns the document title.
func (r *Result) Title() string { return r.title }

// Excerpt returns the bounded preview snippet.
func (r *Result) Excerpt() string { return r.excerpt }

// Score returns the relevance score in [0, 1].
func (r *Result) Score() float64 { return r.score }

// Meta returns presentation metadata for the hit.
func (r *Result) Meta() map[string]string { return r.meta }
