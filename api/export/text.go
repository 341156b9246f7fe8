/* text.go
 * Contains the plain text export of the player store
 */

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"standings-exporter/api/shared"
)

// TextFileName is the name of the text export inside the output directory
const TextFileName = "PlayerData.txt"

// WriteText writes one line per player in the form `Player: <name>, Placement: <placement>`
func WriteText(w io.Writer, players []shared.Player) error {
	writer := bufio.NewWriter(w)
	for _, player := range players {
		if _, err := fmt.Fprintf(writer, "Player: %s, Placement: %d\n", player.Name, player.Placement); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// WriteTextFile writes the text export to path, replacing any existing file. The parent directory must already exist
// Preconditions: Receives the destination path and the players to write
// Postconditions: The file at path contains one line per player, or an error is returned
func WriteTextFile(path string, players []shared.Player) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return WriteText(file, players)
}

// SaveText creates dir if it is missing and writes the text export to <dir>/PlayerData.txt
// Postconditions: Returns the path written to, or an error if it occurs
func SaveText(dir string, players []shared.Player) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, TextFileName)
	if err := WriteTextFile(path, players); err != nil {
		return "", err
	}
	return path, nil
}
