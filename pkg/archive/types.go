package archive

// SearchParams are the raw inputs of one search query. Fields map 1:1 to the
// HTTP API's query parameters.
type SearchParams struct {
	Term         string
	ContentTypes []string
	Categories   []string
	Regions      []string
	YearRange    []int // empty, or [min, max]
	SortBy       string
	Limit        int
	Offset       int
}

// RecommendationParams narrow and bound one recommendation request.
type RecommendationParams struct {
	MaxResults   int
	IncludeTypes []string
	ExcludeIDs   []string
}

// SearchResult is a single search hit.
type SearchResult struct {
	ID             string
	Type           string
	Title          string
	Excerpt        string
	RelevanceScore float64
	Metadata       map[string]string
}

// RecommendationItem is a single recommendation with its explanation.
type RecommendationItem struct {
	ID             string
	Type           string
	Title          string
	Excerpt        string
	RelevanceScore float64
	Reason         string
	Metadata       map[string]string
}

// YearSpan is an inclusive year interval.
type YearSpan struct {
	Min int
	Max int
}

// Filters aggregates the filterable dimensions of the corpus with record
// counts per value.
type Filters struct {
	Types      map[string]int
	Categories map[string]int
	Regions    map[string]int
	YearRange  *YearSpan
}
