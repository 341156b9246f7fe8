/* html.go
 * Contains the HTML export. Players are rendered as a two column grid of cells, each coloured by placement
 */

package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"standings-exporter/api/shared"

	"github.com/a-h/templ"
)

// HTMLFileName is the name of the HTML export inside the output directory
const HTMLFileName = "PlayerData.html"

const stylesheet = "body { font-family: Arial, sans-serif; display: flex; justify-content: center; }" +
	".frame { width: 520px; display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; }" +
	".player { color: white; padding: 10px; border: 20px solid white; border-radius: 10px; text-align: center; }" +
	".player-info { font-size: 12px; }"

// PlayerGrid renders the full HTML document for players. Colours are relative to maxPlacement, the worst placement
// in the store the players came from
func PlayerGrid(players []shared.Player, maxPlacement int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<html><head><style>"+stylesheet+"</style></head><body><div class='frame'>"); err != nil {
			return err
		}
		for _, player := range players {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w,
				"<div class='player' style='background-color: %s;'><div class='player-info'>%d - %s</div></div>",
				Color(player.Placement, maxPlacement).Hex(), player.Placement, templ.EscapeString(player.Name))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div></body></html>")
		return err
	})
}

// SaveHTML creates dir if it is missing and renders the player grid to <dir>/PlayerData.html, replacing any existing
// file
// Postconditions: Returns the path written to, or an error if it occurs
func SaveHTML(ctx context.Context, dir string, players []shared.Player, maxPlacement int) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path = filepath.Join(dir, HTMLFileName)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			path, err = "", closeErr
		}
	}()

	writer := bufio.NewWriter(file)
	if err := PlayerGrid(players, maxPlacement).Render(ctx, writer); err != nil {
		return "", fmt.Errorf("rendering player grid: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}
	return path, nil
}
