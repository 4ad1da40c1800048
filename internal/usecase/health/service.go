package health

import "github.com/atelier-modern/archivesearch/internal/domain/content"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates every corpus is loaded and non-empty.
	Healthy Status = "ok"
	// Degraded indicates at least one corpus is empty.
	Degraded Status = "degraded"
)

// CheckResult represents an individual corpus check outcome.
type CheckResult string

const (
	// CheckOK indicates a loaded, non-empty corpus.
	CheckOK CheckResult = "ok"
	// CheckEmpty indicates a corpus with no records.
	CheckEmpty CheckResult = "empty"
)

// Report aggregates corpus health checks.
type Report struct {
	Status Status
	Checks map[string]CheckResult
	Counts map[string]int
}

// Service checks corpus availability.
type Service struct {
	corpus CorpusCounter
}

// New creates a Service.
func New(corpus CorpusCounter) *Service {
	return &Service{corpus: corpus}
}

// Check reports per-corpus record counts. An empty corpus degrades the
// overall status but is not an error: the site still serves the rest.
func (s *Service) Check() Report {
	counts := s.corpus.Counts()
	report := Report{
		Status: Healthy,
		Checks: make(map[string]CheckResult, len(counts)),
		Counts: make(map[string]int, len(counts)),
	}
	for _, kind := range content.AllKinds() {
		n := counts[kind]
		report.Counts[string(kind)] = n
		if n == 0 {
			report.Checks[string(kind)] = CheckEmpty
			report.Status = Degraded
		} else {
			report.Checks[string(kind)] = CheckOK
		}
	}
	return report
}
