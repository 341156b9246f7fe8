/* models.go
 * This file contain the structs that are shared between sub packages
 */

package shared

// Player is one standings entry: the entrant's name and final placement in an event. Players are never updated in
// place, a repeated fetch simply appends a second copy
type Player struct {
	Name      string
	Placement int
}
