package document

import (
	"strconv"
	"strings"

	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// Per-type field weights for relevance scoring. The values are a product
// decision, pinned here so tests can assert exact scores.
const (
	WorkTitleWeight       = 10.0
	WorkCategoryWeight    = 5.0
	WorkLocationWeight    = 5.0
	WorkDescriptionWeight = 2.0

	ScholarNameWeight           = 10.0
	ScholarInstitutionWeight    = 8.0
	ScholarSpecializationWeight = 6.0
	ScholarBiographyWeight      = 4.0
	ScholarPublicationWeight    = 2.0

	BiographyTitleWeight   = 10.0
	BiographySectionWeight = 4.0
	BiographyTextWeight    = 3.0
)

// Field is one searchable text field with its scoring weight.
type Field struct {
	text   string
	weight float64
}

// NewField creates a weighted searchable field.
func NewField(text string, weight float64) Field {
	return Field{text: text, weight: weight}
}

// Text returns the field text.
func (f Field) Text() string { return f.text }

// Weight returns the field's scoring weight.
func (f Field) Weight() float64 { return f.weight }

// Document is the normalized, searchable shape shared by all content kinds.
// Immutable once constructed; the source records are never mutated.
type Document struct {
	id        string
	kind      content.Kind
	title     string
	fields    []Field
	body      string
	category  string
	region    string
	location  string
	status    string
	section   string
	secondary string
	year      content.Optional[int]
	meta      map[string]string
}

// ID returns the stable document identifier.
func (d *Document) ID() string { return d.id }

// Kind returns the content kind.
func (d *Document) Kind() content.Kind { return d.kind }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Fields returns the weighted searchable fields in priority order.
func (d *Document) Fields() []Field { return d.fields }

// Body returns the text used for excerpt generation.
func (d *Document) Body() string { return d.body }

// Category returns the work category; empty for other kinds.
func (d *Document) Category() string { return d.category }

// Region returns the scholar region; empty for other kinds.
func (d *Document) Region() string { return d.region }

// Location returns the work location; empty for other kinds.
func (d *Document) Location() string { return d.location }

// Status returns the work conservation status; empty for other kinds.
func (d *Document) Status() string { return d.status }

// Section returns the biography section; empty for other kinds.
func (d *Document) Section() string { return d.section }

// SecondaryKey returns the type-specific secondary sort key: location for
// works, name for scholars, the title otherwise.
func (d *Document) SecondaryKey() string {
	if d.secondary != "" {
		return d.secondary
	}
	return d.title
}

// Year returns the year-like attribute used for sorting and range filtering:
// the construction year for works, the latest publication year for scholars,
// the fact year (or birth year) for biography entries.
func (d *Document) Year() content.Optional[int] { return d.year }

// Meta returns presentation metadata copied into results. Callers must not
// mutate the returned map.
func (d *Document) Meta() map[string]string { return d.meta }

// FromWork normalizes an architectural work.
func FromWork(w *content.WorkRecord) Document {
	fields := []Field{
		NewField(w.Title(), WorkTitleWeight),
		NewField(w.Category(), WorkCategoryWeight),
		NewField(w.Location(), WorkLocationWeight),
		NewField(w.Description(), WorkDescriptionWeight),
	}
	meta := map[string]string{
		"category": w.Category(),
		"location": w.Location(),
		"status":   w.Status(),
	}
	putYear(meta, w.Year())
	return Document{
		id:        w.ID(),
		kind:      content.Work,
		title:     w.Title(),
		fields:    fields,
		body:      w.Description(),
		category:  w.Category(),
		location:  w.Location(),
		status:    w.Status(),
		secondary: w.Location(),
		year:      w.Year(),
		meta:      meta,
	}
}

// FromScholar normalizes a scholar. Every publication contributes its title,
// abstract, and keywords as low-weight fields.
func FromScholar(s *content.ScholarRecord) Document {
	fields := []Field{
		NewField(s.Name(), ScholarNameWeight),
		NewField(s.Institution(), ScholarInstitutionWeight),
		NewField(strings.Join(s.Specializations(), " "), ScholarSpecializationWeight),
		NewField(s.Biography(), ScholarBiographyWeight),
	}
	for _, p := range s.Publications() {
		fields = append(fields, NewField(p.Title(), ScholarPublicationWeight))
		if p.Abstract() != "" {
			fields = append(fields, NewField(p.Abstract(), ScholarPublicationWeight))
		}
		if kw := p.Keywords(); len(kw) > 0 {
			fields = append(fields, NewField(strings.Join(kw, " "), ScholarPublicationWeight))
		}
	}
	meta := map[string]string{
		"institution":  s.Institution(),
		"region":       s.Region(),
		"publications": strconv.Itoa(len(s.Publications())),
	}
	putYear(meta, s.LatestPublicationYear())
	return Document{
		id:        s.ID(),
		kind:      content.Scholar,
		title:     s.Name(),
		fields:    fields,
		body:      s.Biography(),
		region:    s.Region(),
		secondary: s.Name(),
		year:      s.LatestPublicationYear(),
		meta:      meta,
	}
}

// FromBiographyFact normalizes a biography fact or timeline entry.
func FromBiographyFact(f *content.BiographyFact) Document {
	fields := []Field{
		NewField(f.Title(), BiographyTitleWeight),
		NewField(f.Section(), BiographySectionWeight),
		NewField(f.Text(), BiographyTextWeight),
	}
	meta := map[string]string{
		"section": f.Section(),
	}
	putYear(meta, f.FilterYear())
	return Document{
		id:      f.ID(),
		kind:    content.Biography,
		title:   f.Title(),
		fields:  fields,
		body:    f.Text(),
		section: f.Section(),
		year:    f.FilterYear(),
		meta:    meta,
	}
}

func putYear(meta map[string]string, year content.Optional[int]) {
	if y, ok := year.Get(); ok {
		meta["year"] = strconv.Itoa(y)
	}
}
