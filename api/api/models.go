/* models.go
 * This file re-exports the external types api consumers need so they do not import the sub packages directly
 */

package api

import "standings-exporter/api/external"

// ResourceKind is the kind of container being fetched
type ResourceKind = external.ResourceKind

const (
	Tournament = external.Tournament
	League     = external.League
)

var (
	// ErrInvalidURL is returned by FetchStandings when the url has no slug
	ErrInvalidURL = external.ErrInvalidURL
	// ErrNoEvents is returned by FetchStandings when the response has no events
	ErrNoEvents = external.ErrNoEvents
)

// HasSlug reports whether rawURL is a url FetchStandings would accept
func HasSlug(rawURL string) bool {
	return external.ExtractSlug(rawURL) != ""
}
