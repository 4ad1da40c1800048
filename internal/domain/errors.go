package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidRecord signals a corpus record that fails validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrCorpusUnavailable signals that the corpus snapshot could not be built.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
