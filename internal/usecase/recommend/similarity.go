package recommend

import (
	"strings"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// Work-to-work similarity weights. The sum is capped at 1.0.
const (
	sameCategoryWeight = 0.4
	yearProximityMax   = 0.3
	yearWindow         = 5
	sameLocationWeight = 0.2
	sameStatusWeight   = 0.1
)

// categorySpecializations maps a work category to the scholar
// specializations considered relevant to it.
var categorySpecializations = map[string][]string{
	"residential": {"prefabrication", "social housing", "modern movement"},
	"educational": {"educational architecture", "modern movement", "prefabrication"},
	"industrial":  {"industrial architecture", "metal construction", "prefabrication"},
	"civic":       {"heritage conservation", "modern movement", "metal construction"},
	"furniture":   {"furniture design", "metal construction"},
}

// specializationCategories is the inverse heuristic: which work categories a
// specialization speaks to.
var specializationCategories = invertMapping(categorySpecializations)

func invertMapping(m map[string][]string) map[string][]string {
	inv := make(map[string][]string, len(m))
	for category, specs := range m {
		for _, spec := range specs {
			inv[spec] = append(inv[spec], category)
		}
	}
	return inv
}

// workSimilarity scores a candidate work against a seed work and returns the
// reasons that contributed. A zero score means no relation.
func workSimilarity(seed, cand *content.WorkRecord) (float64, []string) {
	score := 0.0
	var reasons []string

	if seed.Category() != "" && strings.EqualFold(seed.Category(), cand.Category()) {
		score += sameCategoryWeight
		reasons = append(reasons, "same category")
	}
	if sy, ok := seed.Year().Get(); ok {
		if cy, ok := cand.Year().Get(); ok {
			if d := absInt(sy - cy); d < yearWindow {
				score += yearProximityMax * float64(yearWindow-d) / float64(yearWindow)
				reasons = append(reasons, "built around the same time")
			}
		}
	}
	if seed.Location() != "" && strings.EqualFold(seed.Location(), cand.Location()) {
		score += sameLocationWeight
		reasons = append(reasons, "same location")
	}
	if seed.Status() != "" && strings.EqualFold(seed.Status(), cand.Status()) {
		score += sameStatusWeight
		reasons = append(reasons, "same conservation status")
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, reasons
}

// scholarForCategory scores a scholar's relevance to a work category through
// the specialization mapping. Extra matching specializations raise the score.
func scholarForCategory(category string, scholar *content.ScholarRecord) (float64, []string) {
	relevant := categorySpecializations[strings.ToLower(category)]
	if len(relevant) == 0 {
		return 0, nil
	}
	score := 0.0
	var reasons []string
	for _, spec := range scholar.Specializations() {
		if containsFold(relevant, spec) {
			if score == 0 {
				score = 0.5
			} else {
				score += 0.1
			}
			reasons = append(reasons, "specializes in "+strings.ToLower(spec))
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, reasons
}

// workForSpecializations scores a work against a scholar's specializations
// through the inverse category heuristic.
func workForSpecializations(specs []string, work *content.WorkRecord) (float64, []string) {
	if work.Category() == "" {
		return 0, nil
	}
	score := 0.0
	var reasons []string
	for _, spec := range specs {
		if containsFold(specializationCategories[strings.ToLower(spec)], work.Category()) {
			if score == 0 {
				score = 0.5
			} else {
				score += 0.1
			}
			reasons = append(reasons, "relates to "+strings.ToLower(spec))
		}
	}
	if score > 0.8 {
		score = 0.8
	}
	return score, reasons
}

// scholarSimilarity scores a candidate scholar against a seed scholar:
// shared region and shared specializations.
func scholarSimilarity(seed, cand *content.ScholarRecord) (float64, []string) {
	score := 0.0
	var reasons []string

	if seed.Region() != "" && strings.EqualFold(seed.Region(), cand.Region()) {
		score += 0.5
		reasons = append(reasons, "same region")
	}
	shared := 0
	for _, spec := range seed.Specializations() {
		if containsFold(cand.Specializations(), spec) {
			shared++
			reasons = append(reasons, "shares specialization "+strings.ToLower(spec))
		}
	}
	if shared > 0 {
		score += 0.4 + 0.1*float64(shared-1)
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, reasons
}

func containsFold(haystack []string, value string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, value) {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
