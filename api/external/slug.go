/* slug.go
 * Contains the logic used to pull the tournament or league slug out of a start.gg url
 */

package external

import (
	"net/url"
	"strings"
)

// ExtractSlug returns the slug of a start.gg tournament or league url, or an empty string if there is none.
// e.g. https://www.start.gg/tournament/genesis-9/event/melee-singles has the path segments "/", "tournament/",
// "genesis-9/", "event/", "melee-singles" and the slug is the third one with its trailing slash removed
// Preconditions: Receives an absolute url string
// Postconditions: Returns the slug, or "" if the url does not parse, is relative, or has fewer than three segments
func ExtractSlug(rawURL string) string {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !parsedURL.IsAbs() {
		return ""
	}

	segments := pathSegments(parsedURL.EscapedPath())
	if len(segments) <= 2 {
		return ""
	}
	return strings.TrimRight(segments[2], "/")
}

// pathSegments splits a url path into segments that keep their trailing slash, the first segment is always the root
// "/" for a hierarchical url
func pathSegments(path string) []string {
	if path == "" {
		path = "/"
	}

	var segments []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			segments = append(segments, path[start:i+1])
			start = i + 1
		}
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}
	return segments
}
