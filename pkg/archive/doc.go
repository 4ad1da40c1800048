// Package archive is the embeddable entry point to the search and
// recommendation engine. It builds the immutable corpus snapshot once and
// exposes the query operations in-process, for callers that link the engine
// directly instead of going through the HTTP API.
package archive
