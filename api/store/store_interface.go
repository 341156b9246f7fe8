/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import "standings-exporter/api/shared"

// Interface defines the methods that PlayerStore implements.
// This allows for mocking in tests.
type Interface interface {
	Add(players ...shared.Player)
	All() []shared.Player
	Len() int
	MaxPlacement() int
}

// Ensure PlayerStore implements Interface
var _ Interface = (*PlayerStore)(nil)
