package content

import "fmt"

// BiographyFact is a single fact or timeline entry from the biography.
type BiographyFact struct {
	id        string
	section   string
	title     string
	text      string
	year      Optional[int]
	birthYear Optional[int]
}

// NewBiographyFact validates and creates a biography fact. Years of zero mean
// unknown. Section groups facts into biography chapters (early-life, workshop
// years, ...).
func NewBiographyFact(id, section, title, text string, year, birthYear int) (BiographyFact, error) {
	if id == "" {
		return BiographyFact{}, fmt.Errorf("biography fact id is required")
	}
	if title == "" {
		return BiographyFact{}, fmt.Errorf("biography fact %q: title is required", id)
	}
	if section == "" {
		return BiographyFact{}, fmt.Errorf("biography fact %q: section is required", id)
	}
	yr := None[int]()
	if year != 0 {
		if year < 0 {
			return BiographyFact{}, fmt.Errorf("biography fact %q: year must be positive, got %d", id, year)
		}
		yr = Some(year)
	}
	by := None[int]()
	if birthYear != 0 {
		if birthYear < 0 {
			return BiographyFact{}, fmt.Errorf("biography fact %q: birth year must be positive, got %d", id, birthYear)
		}
		by = Some(birthYear)
	}
	return BiographyFact{id: id, section: section, title: title, text: text, year: yr, birthYear: by}, nil
}

// ID returns the stable fact identifier.
func (f *BiographyFact) ID() string { return f.id }

// Section returns the biography section the fact belongs to.
func (f *BiographyFact) Section() string { return f.section }

// Title returns the fact title.
func (f *BiographyFact) Title() string { return f.title }

// Text returns the fact body text.
func (f *BiographyFact) Text() string { return f.text }

// Year returns the year the fact refers to, if known.
func (f *BiographyFact) Year() Optional[int] { return f.year }

// BirthYear returns the subject's birth year, if the fact carries one.
func (f *BiographyFact) BirthYear() Optional[int] { return f.birthYear }

// FilterYear returns the year used for range filtering: the fact year when
// present, otherwise the birth year.
func (f *BiographyFact) FilterYear() Optional[int] {
	if f.year.IsSet() {
		return f.year
	}
	return f.birthYear
}
