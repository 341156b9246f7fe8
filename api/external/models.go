/* models.go
 * This file contains the models used by the external package when fetching standings from the start.gg GraphQL api.
 * The response structs mirror the shape of the api response, every level is a pointer so a null anywhere in the
 * envelope can be detected instead of panicking
 */

package external

import (
	"fmt"

	"standings-exporter/api/shared"
)

// ResourceKind is the root field of the standings query, either a tournament or a league
type ResourceKind string

const (
	Tournament ResourceKind = "tournament"
	League     ResourceKind = "league"
)

// GraphQLRequest is the request body POSTed to the api
type GraphQLRequest struct {
	Query string `json:"query"`
}

// GraphQLResponse is the top level response envelope
type GraphQLResponse struct {
	Data *ResponseData `json:"data"`
}

// ResponseData holds the container for whichever root field was queried. Only one of the two is set per request
type ResponseData struct {
	Tournament *EventContainer `json:"tournament"`
	League     *EventContainer `json:"league"`
}

// EventContainer is a tournament or league, both expose the same events list
type EventContainer struct {
	Events []*Event `json:"events"`
}

type Event struct {
	ID        any        `json:"id"`
	Name      string     `json:"name"`
	Standings *Standings `json:"standings"`
}

type Standings struct {
	Nodes []*StandingNode `json:"nodes"`
}

type StandingNode struct {
	Entrant   *Entrant `json:"entrant"`
	Placement int      `json:"placement"`
}

type Entrant struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

// EventStandings is the flattened result of a fetch for a single event, players are kept in the order the api
// returned their standing nodes
type EventStandings struct {
	Name    string
	Players []shared.Player
}

// StatusError is returned when the api responds with a non 2xx status code
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response status code does not indicate success: %s", e.Status)
}

// container picks the events container matching the kind that was queried
func (d *ResponseData) container(kind ResourceKind) *EventContainer {
	if d == nil {
		return nil
	}
	switch kind {
	case Tournament:
		return d.Tournament
	case League:
		return d.League
	}
	return nil
}
