package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	"github.com/atelier-modern/archivesearch/internal/repository/corpus"
	healthuc "github.com/atelier-modern/archivesearch/internal/usecase/health"
	recommenduc "github.com/atelier-modern/archivesearch/internal/usecase/recommend"
	searchuc "github.com/atelier-modern/archivesearch/internal/usecase/search"
)

func newTestSnapshot(t *testing.T) *corpus.Snapshot {
	t.Helper()

	mustWork := func(id, title, category, location string, year int, status, description string) content.WorkRecord {
		w, err := content.NewWork(id, title, category, location, year, status, description)
		if err != nil {
			t.Fatalf("content.NewWork: %v", err)
		}
		return w
	}

	laurent, err := content.NewScholar(content.ScholarParams{
		ID:              "scholar-laurent",
		Name:            "Catherine Laurent",
		Institution:     "ENSA Nancy",
		Region:          "Grand Est",
		Specializations: []string{"prefabrication"},
		Biography:       "Historian of industrialised building.",
	})
	if err != nil {
		t.Fatalf("content.NewScholar: %v", err)
	}

	fact, err := content.NewBiographyFact("bio-tropical", "workshop-years",
		"Tropical house commissions", "Aluminium houses flown out in kit form.", 1949, 1901)
	if err != nil {
		t.Fatalf("content.NewBiographyFact: %v", err)
	}

	snap, err := corpus.NewSnapshot(
		[]content.WorkRecord{
			mustWork("maison-tropicale", "Maison Tropicale", "residential", "Niamey",
				1949, "relocated", "Prefabricated aluminium house shipped to West Africa."),
			mustWork("cite-universitaire", "Cité Universitaire", "educational", "Nancy",
				1954, "extant", "Student housing with prefabricated facade panels."),
		},
		[]content.ScholarRecord{laurent},
		[]content.BiographyFact{fact},
	)
	if err != nil {
		t.Fatalf("corpus.NewSnapshot: %v", err)
	}
	return snap
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	snap := newTestSnapshot(t)

	server := NewServer(
		searchuc.New(snap, searchuc.Config{}),
		recommenduc.New(snap, recommenduc.Config{}),
		healthuc.New(snap),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	server.Routes(r)
	return r
}

func doRequest(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
