/* store.go
 * Contains the player store. Players fetched during a session are kept in memory in the order they were fetched, the
 * store is append only and is discarded when the process exits
 */

package store

import (
	"standings-exporter/api/shared"
)

// PlayerStore is an ordered, duplicate tolerant list of players. It is owned by a single command loop and is not safe
// for concurrent use
type PlayerStore struct {
	players []shared.Player
}

// NewStore creates an empty player store
func NewStore() *PlayerStore {
	return &PlayerStore{}
}

// Add appends players to the end of the store. The same player fetched twice is stored twice
func (s *PlayerStore) Add(players ...shared.Player) {
	s.players = append(s.players, players...)
}

// All returns a copy of every stored player in insertion order
func (s *PlayerStore) All() []shared.Player {
	players := make([]shared.Player, len(s.players))
	copy(players, s.players)
	return players
}

// Len returns the number of stored players
func (s *PlayerStore) Len() int {
	return len(s.players)
}

// MaxPlacement returns the worst placement in the store, or 1 when the store is empty so it can always be used as a
// divisor
func (s *PlayerStore) MaxPlacement() int {
	return MaxPlacement(s.players)
}

// MaxPlacement returns the largest placement in players, or 1 if players is empty
func MaxPlacement(players []shared.Player) int {
	if len(players) == 0 {
		return 1
	}
	maxPlacement := players[0].Placement
	for _, player := range players[1:] {
		if player.Placement > maxPlacement {
			maxPlacement = player.Placement
		}
	}
	return maxPlacement
}
