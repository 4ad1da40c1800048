package content

import "fmt"

// WorkRecord is an architectural work from the archive.
type WorkRecord struct {
	id          string
	title       string
	category    string
	location    string
	year        Optional[int]
	status      string
	description string
}

// NewWork validates and creates a work record. A year of zero means unknown.
func NewWork(id, title, category, location string, year int, status, description string) (WorkRecord, error) {
	if id == "" {
		return WorkRecord{}, fmt.Errorf("work id is required")
	}
	if title == "" {
		return WorkRecord{}, fmt.Errorf("work %q: title is required", id)
	}
	yr := None[int]()
	if year != 0 {
		if year < 0 {
			return WorkRecord{}, fmt.Errorf("work %q: year must be positive, got %d", id, year)
		}
		yr = Some(year)
	}
	return WorkRecord{
		id:          id,
		title:       title,
		category:    category,
		location:    location,
		year:        yr,
		status:      status,
		description: description,
	}, nil
}

// ID returns the stable work identifier.
func (w *WorkRecord) ID() string { return w.id }

// Title returns the work title.
func (w *WorkRecord) Title() string { return w.title }

// Category returns the work category (residential, educational, ...).
func (w *WorkRecord) Category() string { return w.category }

// Location returns the work's location.
func (w *WorkRecord) Location() string { return w.location }

// Year returns the construction year, if known.
func (w *WorkRecord) Year() Optional[int] { return w.year }

// Status returns the conservation status (extant, demolished, relocated, ...).
func (w *WorkRecord) Status() string { return w.status }

// Description returns the descriptive text.
func (w *WorkRecord) Description() string { return w.description }
