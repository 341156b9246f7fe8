/* test_mocks.go
 * Contains mock structures and helpers for testing the API package and its consumers
 */

package api

import (
	"standings-exporter/api/external"
	"standings-exporter/api/shared"
	"standings-exporter/api/store"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// MockStore implements store.Interface for testing and records how it was called
type MockStore struct {
	Players  []shared.Player
	AddCalls int
	// MaxPlacementValue is returned by MaxPlacement when non zero
	MaxPlacementValue int
}

var _ store.Interface = (*MockStore)(nil)

// NewMockStore creates an empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Add mock implementation
func (m *MockStore) Add(players ...shared.Player) {
	m.AddCalls++
	m.Players = append(m.Players, players...)
}

// All mock implementation
func (m *MockStore) All() []shared.Player {
	return append([]shared.Player(nil), m.Players...)
}

// Len mock implementation
func (m *MockStore) Len() int {
	return len(m.Players)
}

// MaxPlacement mock implementation
func (m *MockStore) MaxPlacement() int {
	if m.MaxPlacementValue != 0 {
		return m.MaxPlacementValue
	}
	return store.MaxPlacement(m.Players)
}

// NewTestAPI creates an API pointed at endpoint with no request limit, writing exports to outputDir
func NewTestAPI(endpoint string, outputDir string, s store.Interface) (*API, error) {
	return NewAPI(Config{
		Endpoint:  endpoint,
		OutputDir: outputDir,
		Limiter:   rate.NewLimiter(rate.Inf, 0),
		Store:     s,
	})
}

// StandingsResponse builds the response body the api would return for events of the given kind
func StandingsResponse(kind external.ResourceKind, events ...external.EventStandings) string {
	container := &external.EventContainer{Events: []*external.Event{}}
	for i, event := range events {
		standings := &external.Standings{Nodes: []*external.StandingNode{}}
		for j, player := range event.Players {
			standings.Nodes = append(standings.Nodes, &external.StandingNode{
				Entrant:   &external.Entrant{ID: (i+1)*1000 + j, Name: player.Name},
				Placement: player.Placement,
			})
		}
		container.Events = append(container.Events, &external.Event{ID: i + 1, Name: event.Name, Standings: standings})
	}

	// only the queried root field is encoded, as the api answers it
	body, err := json.Marshal(map[string]any{
		"data": map[string]*external.EventContainer{string(kind): container},
	})
	if err != nil {
		panic(err)
	}
	return string(body)
}
