package search

import "strings"

// Suggestion defaults.
const (
	DefaultSuggestionLimit = 8
	MinSuggestionLength    = 2
)

// domainVocabulary seeds autocompletion with archive terminology that is not
// guaranteed to appear as a title or name.
var domainVocabulary = []string{
	"architecture",
	"préfabrication",
	"aluminium",
	"béton armé",
	"charpente métallique",
	"mobilier",
	"façade",
	"construction légère",
	"atelier",
	"patrimoine",
}

// Suggest returns autocomplete candidates containing the partial term as a
// case-insensitive substring, drawn from work titles, scholar names,
// institutions, locations, and the fixed domain vocabulary. Results are
// deduplicated, keep first-seen order, and are capped at the configured
// limit. Partials shorter than two characters yield an empty list; the
// result is never nil so callers encode it as a JSON array.
func (s *Service) Suggest(partial string) []string {
	partial = strings.TrimSpace(partial)
	if len([]rune(partial)) < MinSuggestionLength {
		return []string{}
	}
	needle := strings.ToLower(partial)

	limit := s.cfg.SuggestionLimit
	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)

	add := func(candidate string) bool {
		if candidate == "" || len(suggestions) >= limit {
			return len(suggestions) < limit
		}
		if !strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
		key := strings.ToLower(candidate)
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, candidate)
		return len(suggestions) < limit
	}

	works := s.corpus.Works()
	for i := range works {
		if !add(works[i].Title()) || !add(works[i].Location()) {
			return suggestions
		}
	}
	scholars := s.corpus.Scholars()
	for i := range scholars {
		if !add(scholars[i].Name()) || !add(scholars[i].Institution()) {
			return suggestions
		}
	}
	for _, term := range domainVocabulary {
		if !add(term) {
			return suggestions
		}
	}
	return suggestions
}
