package content

import "fmt"

// Publication is a single publication attributed to a scholar.
type Publication struct {
	title    string
	abstract string
	year     Optional[int]
	keywords []string
}

// NewPublication validates and creates a publication. A year of zero means unknown.
func NewPublication(title, abstract string, year int, keywords []string) (Publication, error) {
	if title == "" {
		return Publication{}, fmt.Errorf("publication title is required")
	}
	yr := None[int]()
	if year != 0 {
		if year < 0 {
			return Publication{}, fmt.Errorf("publication %q: year must be positive, got %d", title, year)
		}
		yr = Some(year)
	}
	return Publication{title: title, abstract: abstract, year: yr, keywords: keywords}, nil
}

// Title returns the publication title.
func (p *Publication) Title() string { return p.title }

// Abstract returns the publication abstract.
func (p *Publication) Abstract() string { return p.abstract }

// Year returns the publication year, if known.
func (p *Publication) Year() Optional[int] { return p.year }

// Keywords returns the publication keywords.
func (p *Publication) Keywords() []string { return p.keywords }

// ScholarRecord is a researcher from the archive.
type ScholarRecord struct {
	id              string
	name            string
	institution     string
	region          string
	specializations []string
	biography       string
	publications    []Publication
	email           Optional[string]
	website         Optional[string]
}

// ScholarParams carries the fields needed to build a scholar record.
// Email and Website are optional contact details.
type ScholarParams struct {
	ID              string
	Name            string
	Institution     string
	Region          string
	Specializations []string
	Biography       string
	Publications    []Publication
	Email           Optional[string]
	Website         Optional[string]
}

// NewScholar validates and creates a scholar record.
func NewScholar(p ScholarParams) (ScholarRecord, error) {
	if p.ID == "" {
		return ScholarRecord{}, fmt.Errorf("scholar id is required")
	}
	if p.Name == "" {
		return ScholarRecord{}, fmt.Errorf("scholar %q: name is required", p.ID)
	}
	return ScholarRecord{
		id:              p.ID,
		name:            p.Name,
		institution:     p.Institution,
		region:          p.Region,
		specializations: p.Specializations,
		biography:       p.Biography,
		publications:    p.Publications,
		email:           p.Email,
		website:         p.Website,
	}, nil
}

// ID returns the stable scholar identifier.
func (s *ScholarRecord) ID() string { return s.id }

// Name returns the scholar's name.
func (s *ScholarRecord) Name() string { return s.name }

// Institution returns the scholar's institution.
func (s *ScholarRecord) Institution() string { return s.institution }

// Region returns the scholar's region.
func (s *ScholarRecord) Region() string { return s.region }

// Specializations returns the scholar's research specializations.
func (s *ScholarRecord) Specializations() []string { return s.specializations }

// Biography returns the scholar's biographical text.
func (s *ScholarRecord) Biography() string { return s.biography }

// Publications returns the scholar's publications.
func (s *ScholarRecord) Publications() []Publication { return s.publications }

// Email returns the scholar's contact email, if published.
func (s *ScholarRecord) Email() Optional[string] { return s.email }

// Website returns the scholar's website, if published.
func (s *ScholarRecord) Website() Optional[string] { return s.website }

// LatestPublicationYear returns the most recent known publication year.
func (s *ScholarRecord) LatestPublicationYear() Optional[int] {
	latest := None[int]()
	for i := range s.publications {
		y, ok := s.publications[i].Year().Get()
		if !ok {
			continue
		}
		if cur, set := latest.Get(); !set || y > cur {
			latest = Some(y)
		}
	}
	return latest
}
