package content

// Kind discriminates the three record types of the archive.
type Kind string

// Content kind constants.
const (
	// Work is an architectural work (building, structure, or furniture piece).
	Work Kind = "work"
	// Scholar is a researcher studying the archive's subject.
	Scholar Kind = "scholar"
	// Biography is a single biography fact or timeline entry.
	Biography Kind = "biography"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Work || k == Scholar || k == Biography
}

// AllKinds returns every supported content kind.
func AllKinds() []Kind {
	return []Kind{Work, Scholar, Biography}
}
