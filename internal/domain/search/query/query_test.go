package query

import (
	"testing"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

func TestSort_IsValid(t *testing.T) {
	for _, s := range []Sort{Relevance, Year, Title, Secondary} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Sort("bogus").IsValid() {
		t.Error("expected bogus sort to be invalid")
	}
}

func TestNewYearRange(t *testing.T) {
	if _, err := NewYearRange(2000, 1990); err == nil {
		t.Error("expected error for min > max")
	}

	r, err := NewYearRange(1950, 1960)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(1950) || !r.Contains(1960) || !r.Contains(1954) {
		t.Error("range bounds should be inclusive")
	}
	if r.Contains(1949) || r.Contains(1961) {
		t.Error("range should exclude years outside bounds")
	}
}

func TestNewFilters_RejectsInvalidKind(t *testing.T) {
	if _, err := NewFilters([]content.Kind{"bogus"}, nil, nil, nil); err == nil {
		t.Error("expected error for invalid kind")
	}
}

func TestFilters_AllowsKind(t *testing.T) {
	empty, _ := NewFilters(nil, nil, nil, nil)
	if !empty.AllowsKind(content.Work) {
		t.Error("empty kind filter should allow everything")
	}

	onlyWorks, _ := NewFilters([]content.Kind{content.Work}, nil, nil, nil)
	if !onlyWorks.AllowsKind(content.Work) || onlyWorks.AllowsKind(content.Scholar) {
		t.Error("kind filter should admit only listed kinds")
	}
}

func TestNew_Defaults(t *testing.T) {
	q, err := New("", Filters{}, "", 0, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SortBy() != Relevance {
		t.Errorf("default sort should be relevance, got %q", q.SortBy())
	}
	if q.Limit() != 0 {
		t.Errorf("unset limit should stay 0 for the engine to default, got %d", q.Limit())
	}
	if q.Offset() != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", q.Offset())
	}
}

func TestNew_NormalizesLimit(t *testing.T) {
	q, err := New("term", Filters{}, Year, -5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != 0 {
		t.Errorf("negative limit should normalize to 0, got %d", q.Limit())
	}

	q, err = New("term", Filters{}, Year, 250, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != 250 {
		t.Errorf("requested limit should pass through, got %d", q.Limit())
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New("x", Filters{}, "bogus", 0, 0); err == nil {
		t.Error("expected error for invalid sort key")
	}

	long := make([]byte, MaxTermLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := New(string(long), Filters{}, Relevance, 0, 0); err == nil {
		t.Error("expected error for oversized term")
	}
}
