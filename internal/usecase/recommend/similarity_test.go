package recommend

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWorkSimilarity_CategoryAndYear(t *testing.T) {
	seed := makeWork(t, "a", "A", "residential", "Niamey", 1949, "relocated")
	cand := makeWork(t, "b", "B", "residential", "Dakar", 1949, "extant")

	score, reasons := workSimilarity(&seed, &cand)
	if !almostEqual(score, sameCategoryWeight+yearProximityMax) {
		t.Errorf("score = %v, want %v", score, sameCategoryWeight+yearProximityMax)
	}
	if len(reasons) != 2 {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestWorkSimilarity_YearProximityDecays(t *testing.T) {
	seed := makeWork(t, "a", "A", "", "", 1950, "")
	near := makeWork(t, "b", "B", "", "", 1951, "")
	far := makeWork(t, "c", "C", "", "", 1956, "")

	nearScore, _ := workSimilarity(&seed, &near)
	if !almostEqual(nearScore, yearProximityMax*4/5) {
		t.Errorf("one year apart: %v, want %v", nearScore, yearProximityMax*4/5)
	}
	if farScore, _ := workSimilarity(&seed, &far); farScore != 0 {
		t.Errorf("outside the window should not score: %v", farScore)
	}
}

func TestWorkSimilarity_FullMatchCapsAtOne(t *testing.T) {
	seed := makeWork(t, "a", "A", "educational", "Nancy", 1954, "extant")
	cand := makeWork(t, "b", "B", "educational", "Nancy", 1954, "extant")

	score, reasons := workSimilarity(&seed, &cand)
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0", score)
	}
	if len(reasons) != 4 {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestWorkSimilarity_NoRelation(t *testing.T) {
	seed := makeWork(t, "a", "A", "residential", "Niamey", 1949, "relocated")
	cand := makeWork(t, "b", "B", "civic", "Clichy", 1939, "extant")

	score, reasons := workSimilarity(&seed, &cand)
	if score != 0 || len(reasons) != 0 {
		t.Errorf("unrelated works: score %v, reasons %v", score, reasons)
	}
}

func TestScholarForCategory(t *testing.T) {
	one := makeScholar(t, "s1", "S1", "", []string{"prefabrication"})
	score, reasons := scholarForCategory("residential", &one)
	if !almostEqual(score, 0.5) {
		t.Errorf("single match: %v, want 0.5", score)
	}
	if len(reasons) != 1 {
		t.Errorf("reasons = %v", reasons)
	}

	two := makeScholar(t, "s2", "S2", "", []string{"prefabrication", "social housing"})
	if score, _ = scholarForCategory("residential", &two); !almostEqual(score, 0.6) {
		t.Errorf("extra specialization: %v, want 0.6", score)
	}

	none := makeScholar(t, "s3", "S3", "", []string{"furniture design"})
	if score, _ = scholarForCategory("residential", &none); score != 0 {
		t.Errorf("irrelevant specialization: %v, want 0", score)
	}

	if score, _ = scholarForCategory("unknown-category", &one); score != 0 {
		t.Errorf("unmapped category: %v, want 0", score)
	}
}

func TestWorkForSpecializations(t *testing.T) {
	work := makeWork(t, "w", "W", "residential", "", 0, "")

	score, _ := workForSpecializations([]string{"prefabrication"}, &work)
	if !almostEqual(score, 0.5) {
		t.Errorf("single relation: %v, want 0.5", score)
	}

	score, _ = workForSpecializations([]string{"furniture design"}, &work)
	if score != 0 {
		t.Errorf("unrelated specialization: %v, want 0", score)
	}

	// Four relating specializations would reach 0.8 and stop there.
	score, _ = workForSpecializations(
		[]string{"prefabrication", "social housing", "modern movement", "prefabrication"}, &work)
	if score > 0.8 {
		t.Errorf("score should cap at 0.8, got %v", score)
	}
}

func TestScholarSimilarity(t *testing.T) {
	seed := makeScholar(t, "s1", "S1", "Grand Est", []string{"prefabrication", "metal construction"})

	regionOnly := makeScholar(t, "s2", "S2", "Grand Est", []string{"furniture design"})
	score, _ := scholarSimilarity(&seed, &regionOnly)
	if !almostEqual(score, 0.5) {
		t.Errorf("same region: %v, want 0.5", score)
	}

	specOnly := makeScholar(t, "s3", "S3", "West Africa", []string{"prefabrication"})
	score, _ = scholarSimilarity(&seed, &specOnly)
	if !almostEqual(score, 0.4) {
		t.Errorf("one shared specialization: %v, want 0.4", score)
	}

	both := makeScholar(t, "s4", "S4", "Grand Est", []string{"prefabrication", "metal construction"})
	score, reasons := scholarSimilarity(&seed, &both)
	if !almostEqual(score, 1.0) {
		t.Errorf("region plus two shared specializations: %v, want 1.0", score)
	}
	if len(reasons) != 3 {
		t.Errorf("reasons = %v", reasons)
	}
}
