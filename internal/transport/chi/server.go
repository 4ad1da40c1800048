package chi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	domrec "github.com/atelier-modern/archivesearch/internal/domain/recommend"
	"github.com/atelier-modern/archivesearch/internal/domain/search/query"
	"github.com/atelier-modern/archivesearch/internal/domain/search/result"
	"github.com/atelier-modern/archivesearch/internal/metrics"
	healthuc "github.com/atelier-modern/archivesearch/internal/usecase/health"
	recommenduc "github.com/atelier-modern/archivesearch/internal/usecase/recommend"
	searchuc "github.com/atelier-modern/archivesearch/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
)

// Server serves the search and recommendation API.
type Server struct {
	search *searchuc.Service
	recs   *recommenduc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	recs *recommenduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{search: search, recs: recs, health: health, logger: logger}
}

// Routes registers every API route on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.handleSearch)
	r.Post("/search", s.handleSearchPost)
	r.Get("/search/suggestions", s.handleSuggestions)
	r.Get("/search/filters", s.handleFilters)
	r.Get("/recommendations", s.handleGeneralRecommendations)
	r.Get("/recommendations/works/{id}", s.handleWorkRecommendations)
	r.Get("/recommendations/scholars/{id}", s.handleScholarRecommendations)
	r.Get("/recommendations/biography/{section}", s.handleBiographyRecommendations)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// --- DTOs ---

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchResultDTO struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Excerpt        string            `json:"excerpt"`
	RelevanceScore float64           `json:"relevance_score"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type searchResponse struct {
	Results []searchResultDTO `json:"results"`
	Count   int               `json:"count"`
}

type recommendationDTO struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Excerpt        string            `json:"excerpt"`
	RelevanceScore float64           `json:"relevance_score"`
	Reason         string            `json:"reason"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type recommendationsResponse struct {
	Recommendations []recommendationDTO `json:"recommendations"`
	Count           int                 `json:"count"`
}

type yearRangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type filtersResponse struct {
	Types      map[string]int `json:"types"`
	Categories map[string]int `json:"categories"`
	Regions    map[string]int `json:"regions"`
	YearRange  *yearRangeDTO  `json:"year_range,omitempty"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// searchRequestBody is the POST /search payload. Term and SortBy are typed
// loosely so malformed payloads fail validation instead of JSON decoding.
type searchRequestBody struct {
	Term    any `json:"term"`
	Filters struct {
		ContentTypes []string `json:"content_types"`
		Categories   []string `json:"categories"`
		Regions      []string `json:"regions"`
		YearRange    []int    `json:"year_range"`
	} `json:"filters"`
	SortBy any `json:"sort_by"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// --- Search ---

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	yearRange, err := yearRangeFromParams(q.Get("year_min"), q.Get("year_max"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}
	filters, err := query.NewFilters(
		kindsFromParam(q.Get("types")),
		csvParam(q.Get("categories")),
		csvParam(q.Get("regions")),
		yearRange,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}
	searchQuery, err := query.New(
		q.Get("term"),
		filters,
		query.Sort(q.Get("sort")),
		intParam(q.Get("limit")),
		intParam(q.Get("offset")),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	s.runSearch(w, searchQuery)
}

func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	term, ok := stringOrEmpty(body.Term)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "term must be a string")
		return
	}
	sortBy, ok := stringOrEmpty(body.SortBy)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "sort_by must be a string")
		return
	}

	var yearRange *query.YearRange
	switch len(body.Filters.YearRange) {
	case 0:
	case 2:
		r, err := query.NewYearRange(body.Filters.YearRange[0], body.Filters.YearRange[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
			return
		}
		yearRange = &r
	default:
		writeError(w, http.StatusBadRequest, codeValidationFailed, "year_range must be [min, max]")
		return
	}

	kinds := make([]content.Kind, 0, len(body.Filters.ContentTypes))
	for _, t := range body.Filters.ContentTypes {
		kinds = append(kinds, content.Kind(t))
	}
	filters, err := query.NewFilters(kinds, body.Filters.Categories, body.Filters.Regions, yearRange)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}
	searchQuery, err := query.New(term, filters, query.Sort(sortBy), body.Limit, body.Offset)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	s.runSearch(w, searchQuery)
}

func (s *Server) runSearch(w http.ResponseWriter, q query.Query) {
	results := s.search.Search(q)

	metrics.SearchesTotal.WithLabelValues(string(q.SortBy())).Inc()
	if len(results) == 0 {
		metrics.SearchesEmpty.Inc()
	}

	items := make([]searchResultDTO, len(results))
	for i := range results {
		items[i] = searchResultToDTO(&results[i])
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: items, Count: len(items)})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	metrics.SuggestionsTotal.Inc()
	suggestions := s.search.Suggest(r.URL.Query().Get("term"))
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

func (s *Server) handleFilters(w http.ResponseWriter, _ *http.Request) {
	facets := s.search.Facets()

	types := make(map[string]int, len(facets.Types))
	for kind, n := range facets.Types {
		types[string(kind)] = n
	}
	resp := filtersResponse{
		Types:      types,
		Categories: facets.Categories,
		Regions:    facets.Regions,
	}
	if facets.HasYears {
		resp.YearRange = &yearRangeDTO{Min: facets.MinYear, Max: facets.MaxYear}
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- Recommendations ---

func (s *Server) handleWorkRecommendations(w http.ResponseWriter, r *http.Request) {
	s.runRecommendations(w, r, "work", func(opts domrec.Options) []domrec.Item {
		return s.recs.ForWork(chi.URLParam(r, "id"), opts)
	})
}

func (s *Server) handleScholarRecommendations(w http.ResponseWriter, r *http.Request) {
	s.runRecommendations(w, r, "scholar", func(opts domrec.Options) []domrec.Item {
		return s.recs.ForScholar(chi.URLParam(r, "id"), opts)
	})
}

func (s *Server) handleBiographyRecommendations(w http.ResponseWriter, r *http.Request) {
	s.runRecommendations(w, r, "biography", func(opts domrec.Options) []domrec.Item {
		return s.recs.ForBiographySection(chi.URLParam(r, "section"), opts)
	})
}

func (s *Server) handleGeneralRecommendations(w http.ResponseWriter, r *http.Request) {
	s.runRecommendations(w, r, "general", func(opts domrec.Options) []domrec.Item {
		return s.recs.General(opts)
	})
}

func (s *Server) runRecommendations(
	w http.ResponseWriter, r *http.Request,
	seedKind string, run func(domrec.Options) []domrec.Item,
) {
	q := r.URL.Query()
	opts, err := domrec.NewOptions(
		intParam(q.Get("max_results")),
		kindsFromParam(q.Get("include_types")),
		csvParam(q.Get("exclude_ids")),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	metrics.RecommendationsTotal.WithLabelValues(seedKind).Inc()

	items := run(opts)
	dtos := make([]recommendationDTO, len(items))
	for i := range items {
		dtos[i] = recommendationToDTO(&items[i])
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: dtos, Count: len(dtos)})
}

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
		"counts": report.Counts,
	})
}

// --- Helpers ---

func searchResultToDTO(r *result.Result) searchResultDTO {
	return searchResultDTO{
		ID:             r.ID(),
		Type:           string(r.Kind()),
		Title:          r.Title(),
		Excerpt:        r.Excerpt(),
		RelevanceScore: r.Score(),
		Metadata:       r.Meta(),
	}
}

func recommendationToDTO(i *domrec.Item) recommendationDTO {
	return recommendationDTO{
		ID:             i.ID(),
		Type:           string(i.Kind()),
		Title:          i.Title(),
		Excerpt:        i.Excerpt(),
		RelevanceScore: i.Score(),
		Reason:         i.Reason(),
		Metadata:       i.Meta(),
	}
}

func yearRangeFromParams(minStr, maxStr string) (*query.YearRange, error) {
	if minStr == "" && maxStr == "" {
		return nil, nil
	}
	min, err := strconv.Atoi(minStr)
	if err != nil {
		return nil, err
	}
	max, err := strconv.Atoi(maxStr)
	if err != nil {
		return nil, err
	}
	r, err := query.NewYearRange(min, max)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func kindsFromParam(raw string) []content.Kind {
	values := csvParam(raw)
	kinds := make([]content.Kind, 0, len(values))
	for _, v := range values {
		kinds = append(kinds, content.Kind(v))
	}
	return kinds
}

func csvParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func intParam(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// stringOrEmpty unwraps a loosely typed JSON value that must be a string.
// Absent values (nil) count as the empty string.
func stringOrEmpty(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Code: code, Message: message})
}
