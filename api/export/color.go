/* color.go
 * Contains the placement to colour mapping used by the HTML export. The best placement is a strong blue and colours
 * fade linearly to a neutral grey at the worst placement
 */

package export

import "fmt"

const (
	blueBase = 0x33
	greyBase = 0x99
	maxValue = 0xFF
)

// RGB is an 8 bit per channel colour
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Hex returns the colour as an uppercase css hex string, e.g. #3333FF
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// Color maps a placement to a cell colour
// Preconditions: Receives a placement and the worst placement of the players being rendered
// Postconditions: Returns #3333FF for a fraction of 0, #999999 for a fraction of 1, and flat grey for any placement
// worse than maxPlacement. Channels are truncated, not rounded
func Color(placement int, maxPlacement int) RGB {
	if maxPlacement < 1 {
		maxPlacement = 1
	}
	fraction := float64(placement) / float64(maxPlacement)
	if fraction < 0 {
		fraction = 0
	}

	if fraction > 1.0 {
		return RGB{Red: greyBase, Green: greyBase, Blue: greyBase}
	}

	redGreen := uint8(blueBase + fraction*(greyBase-blueBase))
	blue := uint8(maxValue - int(fraction*(maxValue-greyBase)))
	return RGB{Red: redGreen, Green: redGreen, Blue: blue}
}
