package recommend

import (
	"fmt"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// Recommendation option limits.
const (
	DefaultMaxResults = 6
	MaxMaxResults     = 20
)

// Item is a single recommendation. Unlike a search result it carries a
// human-readable reason explaining why it was surfaced.
type Item struct {
	id      string
	kind    content.Kind
	title   string
	excerpt string
	score   float64
	reason  string
	meta    map[string]string
}

// NewItem creates a recommendation item. The reason must be non-empty.
func NewItem(id string, kind content.Kind, title, excerpt string, score float64, reason string, meta map[string]string) (Item, error) {
	if reason == "" {
		return Item{}, fmt.Errorf("recommendation %q: reason is required", id)
	}
	return Item{id: id, kind: kind, title: title, excerpt: excerpt, score: score, reason: reason, meta: meta}, nil
}

// ID returns the recommended entity's identifier.
func (i *Item) ID() string { return i.id }

// Kind returns the content kind.
func (i *Item) Kind() content.Kind { return i.kind }

// Title returns the entity title.
func (i *Item) Title() string { return i.title }

// Excerpt returns the bounded preview snippet.
func (i *Item) Excerpt() string { return i.excerpt }

// Score returns the similarity score in [0, 1].
func (i *Item) Score() float64 { return i.score }

// Reason returns the explanation for the recommendation.
func (i *Item) Reason() string { return i.reason }

// Meta returns presentation metadata for the item.
func (i *Item) Meta() map[string]string { return i.meta }

// Options narrows and bounds a recommendation request.
type Options struct {
	maxResults   int
	includeKinds []content.Kind
	excludeIDs   map[string]struct{}
}

// NewOptions validates and normalizes recommendation options. A maxResults
// of zero means the engine's configured limit applies; requests above
// MaxMaxResults are clamped. All kinds are included unless narrowed.
func NewOptions(maxResults int, includeKinds []content.Kind, excludeIDs []string) (Options, error) {
	if maxResults < 0 {
		maxResults = 0
	}
	if maxResults > MaxMaxResults {
		maxResults = MaxMaxResults
	}
	for _, k := range includeKinds {
		if !k.IsValid() {
			return Options{}, fmt.Errorf("invalid content kind: %q", k)
		}
	}
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		if id != "" {
			excluded[id] = struct{}{}
		}
	}
	return Options{maxResults: maxResults, includeKinds: includeKinds, excludeIDs: excluded}, nil
}

// MaxResults returns the requested result cap, applied after global
// sorting; zero when the request left it unset.
func (o *Options) MaxResults() int { return o.maxResults }

// AllowsKind reports whether the kind restriction admits the given kind.
func (o *Options) AllowsKind(k content.Kind) bool {
	if len(o.includeKinds) == 0 {
		return true
	}
	for _, want := range o.includeKinds {
		if want == k {
			return true
		}
	}
	return false
}

// Excludes reports whether the id is on the exclusion list.
func (o *Options) Excludes(id string) bool {
	_, ok := o.excludeIDs[id]
	return ok
}
