package archive

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/atelier-modern/archivesearch/internal/domain"
	"github.com/atelier-modern/archivesearch/internal/domain/content"
	domrec "github.com/atelier-modern/archivesearch/internal/domain/recommend"
	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
	"github.com/atelier-modern/archivesearch/internal/domain/search/result"
	"github.com/atelier-modern/archivesearch/internal/repository/corpus"
	healthuc "github.com/atelier-modern/archivesearch/internal/usecase/health"
	recommenduc "github.com/atelier-modern/archivesearch/internal/usecase/recommend"
	searchuc "github.com/atelier-modern/archivesearch/internal/usecase/search"
)

// Config tunes the embedded engine. Zero values fall back to defaults.
type Config struct {
	// Collation is the BCP 47 tag for locale-aware title sorting (default fr).
	Collation string
	// ExcerptLength bounds excerpts in runes.
	ExcerptLength int
	// SuggestionLimit caps autocomplete results.
	SuggestionLimit int
	// DefaultPageSize is the page size applied when a search gives none.
	DefaultPageSize int
	// MaxPageSize caps the page size a search may request.
	MaxPageSize int
	// RecommendationLimit is the item cap applied when a recommendation
	// request gives none.
	RecommendationLimit int
}

// Engine wires the corpus snapshot and query services behind one type.
// Safe for concurrent use after construction.
type Engine struct {
	snapshot *corpus.Snapshot
	search   *searchuc.Service
	recs     *recommenduc.Service
	health   *healthuc.Service
}

// Open loads the corpus from dir and builds an engine over it.
func Open(dir string, cfg Config) (*Engine, error) {
	snap, err := corpus.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return NewEngine(snap, cfg)
}

// NewEngine builds an engine over an existing corpus snapshot.
func NewEngine(snap *corpus.Snapshot, cfg Config) (*Engine, error) {
	collation := language.French
	if cfg.Collation != "" {
		tag, err := language.Parse(cfg.Collation)
		if err != nil {
			return nil, fmt.Errorf("invalid collation tag %q: %w", cfg.Collation, err)
		}
		collation = tag
	}
	return &Engine{
		snapshot: snap,
		search: searchuc.New(snap, searchuc.Config{
			Collation:       collation,
			ExcerptLength:   cfg.ExcerptLength,
			SuggestionLimit: cfg.SuggestionLimit,
			DefaultPageSize: cfg.DefaultPageSize,
			MaxPageSize:     cfg.MaxPageSize,
		}),
		recs: recommenduc.New(snap, recommenduc.Config{
			ExcerptLength: cfg.ExcerptLength,
			MaxResults:    cfg.RecommendationLimit,
		}),
		health: healthuc.New(snap),
	}, nil
}

// Search runs a search query. Invalid parameters return an error without
// executing the query.
func (e *Engine) Search(params SearchParams) ([]SearchResult, error) {
	q, err := buildQuery(params)
	if err != nil {
		return nil, err
	}
	hits := e.search.Search(q)
	results := make([]SearchResult, len(hits))
	for i := range hits {
		results[i] = toSearchResult(&hits[i])
	}
	return results, nil
}

// ValidateQuery reports whether the parameters form a well-shaped query.
func (e *Engine) ValidateQuery(params SearchParams) bool {
	_, err := buildQuery(params)
	return err == nil
}

// AvailableFilters aggregates the filterable dimensions of the corpus.
func (e *Engine) AvailableFilters() Filters {
	facets := e.search.Facets()
	types := make(map[string]int, len(facets.Types))
	for kind, n := range facets.Types {
		types[string(kind)] = n
	}
	f := Filters{
		Types:      types,
		Categories: facets.Categories,
		Regions:    facets.Regions,
	}
	if facets.HasYears {
		f.YearRange = &YearSpan{Min: facets.MinYear, Max: facets.MaxYear}
	}
	return f
}

// Suggestions returns autocomplete candidates for a partial term.
func (e *Engine) Suggestions(partial string) []string {
	return e.search.Suggest(partial)
}

// WorkRecommendations returns content related to a work.
func (e *Engine) WorkRecommendations(workID string, params RecommendationParams) ([]RecommendationItem, error) {
	opts, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	return toRecommendations(e.recs.ForWork(workID, opts)), nil
}

// ScholarRecommendations returns content related to a scholar.
func (e *Engine) ScholarRecommendations(scholarID string, params RecommendationParams) ([]RecommendationItem, error) {
	opts, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	return toRecommendations(e.recs.ForScholar(scholarID, opts)), nil
}

// BiographyRecommendations returns content tied to a biography section.
func (e *Engine) BiographyRecommendations(section string, params RecommendationParams) ([]RecommendationItem, error) {
	opts, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	return toRecommendations(e.recs.ForBiographySection(section, opts)), nil
}

// GeneralRecommendations returns featured content with no seed.
func (e *Engine) GeneralRecommendations(params RecommendationParams) ([]RecommendationItem, error) {
	opts, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	return toRecommendations(e.recs.General(opts)), nil
}

// Health reports corpus availability.
func (e *Engine) Health() healthuc.Report {
	return e.health.Check()
}

func buildQuery(params SearchParams) (query.Query, error) {
	var yearRange *query.YearRange
	switch len(params.YearRange) {
	case 0:
	case 2:
		r, err := query.NewYearRange(params.YearRange[0], params.YearRange[1])
		if err != nil {
			return query.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
		}
		yearRange = &r
	default:
		return query.Query{}, fmt.Errorf("%w: year range must be [min, max], got %d values",
			domain.ErrInvalidQuery, len(params.YearRange))
	}

	filters, err := query.NewFilters(
		toKinds(params.ContentTypes),
		params.Categories,
		params.Regions,
		yearRange,
	)
	if err != nil {
		return query.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	q, err := query.New(params.Term, filters, query.Sort(params.SortBy), params.Limit, params.Offset)
	if err != nil {
		return query.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return q, nil
}

func buildOptions(params RecommendationParams) (domrec.Options, error) {
	opts, err := domrec.NewOptions(params.MaxResults, toKinds(params.IncludeTypes), params.ExcludeIDs)
	if err != nil {
		return domrec.Options{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return opts, nil
}

func toKinds(types []string) []content.Kind {
	kinds := make([]content.Kind, 0, len(types))
	for _, t := range types {
		kinds = append(kinds, content.Kind(t))
	}
	return kinds
}

func toSearchResult(r *result.Result) SearchResult {
	return SearchResult{
		ID:             r.ID(),
		Type:           string(r.Kind()),
		Title:          r.Title(),
		Excerpt:        r.Excerpt(),
		RelevanceScore: r.Score(),
		Metadata:       r.Meta(),
	}
}

func toRecommendations(items []domrec.Item) []RecommendationItem {
	out := make([]RecommendationItem, len(items))
	for i := range items {
		out[i] = RecommendationItem{
			ID:             items[i].ID(),
			Type:           string(items[i].Kind()),
			Title:          items[i].Title(),
			Excerpt:        items[i].Excerpt(),
			RelevanceScore: items[i].Score(),
			Reason:         items[i].Reason(),
			Metadata:       items[i].Meta(),
		}
	}
	return out
}
