package recommend

import (
	"sort"
	"strings"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
	domrec "github.com/atelier-modern/archivesearch/internal/domain/recommend"
	searchuc "github.com/atelier-modern/archivesearch/internal/usecase/search"
)

// General recommendation scoring: recent works decay from the base per year
// of age; scholars gain per publication.
const (
	generalWorkBase      = 0.5
	generalWorkDecay     = 0.005
	generalWorkFloor     = 0.3
	generalScholarBase   = 0.3
	generalScholarPerPub = 0.02
	generalScholarCap    = 0.45
)

// Era tolerance in years when matching works to a biography section's span.
const eraTolerance = 2

// Config tunes the recommender. Zero values fall back to defaults.
type Config struct {
	// ExcerptLength bounds item excerpts in runes.
	ExcerptLength int
	// MaxResults is the item cap applied when a request gives none.
	MaxResults int
}

// Service ranks related content for a seed entity using attribute similarity.
// Stateless between calls and safe for concurrent use.
type Service struct {
	corpus     CorpusReader
	excerptLen int
	maxResults int
}

// New creates a recommendation service over a corpus snapshot.
func New(corpus CorpusReader, cfg Config) *Service {
	length := cfg.ExcerptLength
	if length <= 0 {
		length = searchuc.DefaultExcerptLength
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = domrec.DefaultMaxResults
	}
	return &Service{corpus: corpus, excerptLen: length, maxResults: maxResults}
}

// candidate pairs a scored corpus entity with its reasons before item
// construction.
type candidate struct {
	id     string
	score  float64
	reason string
}

// ForWork recommends content related to a seed work: works sharing category,
// era, location, or status, and scholars whose specializations match the
// seed's category. An unknown seed id yields an empty list.
func (s *Service) ForWork(workID string, opts domrec.Options) []domrec.Item {
	seed := s.findWork(workID)
	if seed == nil {
		return []domrec.Item{}
	}

	var cands []candidate
	if opts.AllowsKind(content.Work) {
		works := s.corpus.Works()
		for i := range works {
			cand := &works[i]
			if cand.ID() == workID || opts.Excludes(cand.ID()) {
				continue
			}
			score, reasons := workSimilarity(seed, cand)
			if score > 0 {
				cands = append(cands, candidate{cand.ID(), score, joinReasons(reasons)})
			}
		}
	}
	if opts.AllowsKind(content.Scholar) {
		scholars := s.corpus.Scholars()
		for i := range scholars {
			cand := &scholars[i]
			if opts.Excludes(cand.ID()) {
				continue
			}
			score, reasons := scholarForCategory(seed.Category(), cand)
			if score > 0 {
				cands = append(cands, candidate{cand.ID(), score, joinReasons(reasons)})
			}
		}
	}
	return s.rank(cands, opts)
}

// ForScholar recommends content related to a seed scholar: works matching
// the scholar's specializations and scholars sharing region or
// specialization. An unknown seed id yields an empty list.
func (s *Service) ForScholar(scholarID string, opts domrec.Options) []domrec.Item {
	seed := s.findScholar(scholarID)
	if seed == nil {
		return []domrec.Item{}
	}

	var cands []candidate
	if opts.AllowsKind(content.Work) {
		works := s.corpus.Works()
		for i := range works {
			cand := &works[i]
			if opts.Excludes(cand.ID()) {
				continue
			}
			score, reasons := workForSpecializations(seed.Specializations(), cand)
			if score > 0 {
				cands = append(cands, candidate{cand.ID(), score, joinReasons(reasons)})
			}
		}
	}
	if opts.AllowsKind(content.Scholar) {
		scholars := s.corpus.Scholars()
		for i := range scholars {
			cand := &scholars[i]
			if cand.ID() == scholarID || opts.Excludes(cand.ID()) {
				continue
			}
			score, reasons := scholarSimilarity(seed, cand)
			if score > 0 {
				cands = append(cands, candidate{cand.ID(), score, joinReasons(reasons)})
			}
		}
	}
	return s.rank(cands, opts)
}

// ForBiographySection recommends content tied to a biography chapter: sibling
// facts from the chapter, works built during the chapter's year span, and
// scholars studying those works. An unknown section yields an empty list.
func (s *Service) ForBiographySection(section string, opts domrec.Options) []domrec.Item {
	minYear, maxYear, factIDs := s.sectionSpan(section)
	if len(factIDs) == 0 {
		return []domrec.Item{}
	}

	var cands []candidate
	if opts.AllowsKind(content.Biography) {
		facts := s.corpus.BiographyFacts()
		for i := range facts {
			f := &facts[i]
			if !strings.EqualFold(f.Section(), section) || opts.Excludes(f.ID()) {
				continue
			}
			cands = append(cands, candidate{f.ID(), 0.5, "from the same chapter"})
		}
	}

	eraCategories := make(map[string]struct{})
	if minYear != 0 {
		works := s.corpus.Works()
		for i := range works {
			w := &works[i]
			year, ok := w.Year().Get()
			if !ok || year < minYear-eraTolerance || year > maxYear+eraTolerance {
				continue
			}
			if w.Category() != "" {
				eraCategories[strings.ToLower(w.Category())] = struct{}{}
			}
			if opts.AllowsKind(content.Work) && !opts.Excludes(w.ID()) {
				cands = append(cands, candidate{w.ID(), 0.6, "built during this period"})
			}
		}
	}
	if opts.AllowsKind(content.Scholar) && len(eraCategories) > 0 {
		scholars := s.corpus.Scholars()
		for i := range scholars {
			sc := &scholars[i]
			if opts.Excludes(sc.ID()) {
				continue
			}
			if scholarStudiesCategories(sc, eraCategories) {
				cands = append(cands, candidate{sc.ID(), 0.4, "studies works of this period"})
			}
		}
	}
	return s.rank(cands, opts)
}

// General recommends featured content with no seed: recent works and the
// most published scholars.
func (s *Service) General(opts domrec.Options) []domrec.Item {
	var cands []candidate
	if opts.AllowsKind(content.Work) {
		works := s.corpus.Works()
		newest := 0
		for i := range works {
			if y, ok := works[i].Year().Get(); ok && y > newest {
				newest = y
			}
		}
		for i := range works {
			w := &works[i]
			if opts.Excludes(w.ID()) {
				continue
			}
			score := generalWorkBase
			if y, ok := w.Year().Get(); ok && newest > 0 {
				score -= generalWorkDecay * float64(newest-y)
				if score < generalWorkFloor {
					score = generalWorkFloor
				}
			}
			cands = append(cands, candidate{w.ID(), score, "recent work"})
		}
	}
	if opts.AllowsKind(content.Scholar) {
		scholars := s.corpus.Scholars()
		for i := range scholars {
			sc := &scholars[i]
			if opts.Excludes(sc.ID()) {
				continue
			}
			score := generalScholarBase + generalScholarPerPub*float64(len(sc.Publications()))
			if score > generalScholarCap {
				score = generalScholarCap
			}
			cands = append(cands, candidate{sc.ID(), score, "active scholar"})
		}
	}
	return s.rank(cands, opts)
}

// rank sorts candidates by score descending (stable, insertion-order ties),
// truncates to the request cap or the configured limit, and materializes
// recommendation items.
func (s *Service) rank(cands []candidate, opts domrec.Options) []domrec.Item {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})
	limit := opts.MaxResults()
	if limit <= 0 {
		limit = s.maxResults
	}
	if len(cands) > limit {
		cands = cands[:limit]
	}
	items := make([]domrec.Item, 0, len(cands))
	for _, c := range cands {
		doc, ok := s.corpus.DocumentByID(c.id)
		if !ok {
			continue
		}
		item, err := domrec.NewItem(
			doc.ID(),
			doc.Kind(),
			doc.Title(),
			searchuc.Excerpt(doc.Body(), s.excerptLen),
			c.score,
			c.reason,
			doc.Meta(),
		)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *Service) findWork(id string) *content.WorkRecord {
	works := s.corpus.Works()
	for i := range works {
		if works[i].ID() == id {
			return &works[i]
		}
	}
	return nil
}

func (s *Service) findScholar(id string) *content.ScholarRecord {
	scholars := s.corpus.Scholars()
	for i := range scholars {
		if scholars[i].ID() == id {
			return &scholars[i]
		}
	}
	return nil
}

// sectionSpan returns the min/max years covered by a biography section's
// facts and the ids of those facts. Years of zero mean the span is unknown.
func (s *Service) sectionSpan(section string) (minYear, maxYear int, factIDs []string) {
	facts := s.corpus.BiographyFacts()
	for i := range facts {
		f := &facts[i]
		if !strings.EqualFold(f.Section(), section) {
			continue
		}
		factIDs = append(factIDs, f.ID())
		if y, ok := f.FilterYear().Get(); ok {
			if minYear == 0 || y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
	}
	return minYear, maxYear, factIDs
}

func scholarStudiesCategories(sc *content.ScholarRecord, categories map[string]struct{}) bool {
	for _, spec := range sc.Specializations() {
		for _, cat := range specializationCategories[strings.ToLower(spec)] {
			if _, ok := categories[cat]; ok {
				return true
			}
		}
	}
	return false
}

func joinReasons(reasons []string) string {
	return strings.Join(reasons, ", ")
}
