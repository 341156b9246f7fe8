/* html_test.go
 * Contains unit tests for html.go, the rendered document is parsed with goquery
 */

package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"standings-exporter/api/shared"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderGrid renders players and parses the result
func renderGrid(t *testing.T, players []shared.Player, maxPlacement int) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PlayerGrid(players, maxPlacement).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func TestPlayerGrid_CellsInOrder(t *testing.T) {
	_, doc := renderGrid(t, fourPlayers, 3)

	cells := doc.Find("div.frame > div.player")
	require.Equal(t, 4, cells.Length())

	var texts []string
	cells.Each(func(i int, s *goquery.Selection) {
		texts = append(texts, s.Find("div.player-info").Text())
	})
	assert.Equal(t, []string{"1 - Alice", "2 - Bob", "1 - Carol / Dave", "3 - Erin / Frank"}, texts)
}

func TestPlayerGrid_CellColours(t *testing.T) {
	_, doc := renderGrid(t, fourPlayers, 3)

	var styles []string
	doc.Find("div.player").Each(func(i int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		styles = append(styles, style)
	})
	// max placement is 3
	assert.Equal(t, []string{
		"background-color: " + Color(1, 3).Hex() + ";",
		"background-color: " + Color(2, 3).Hex() + ";",
		"background-color: " + Color(1, 3).Hex() + ";",
		"background-color: #999999;",
	}, styles)
}

// TestPlayerGrid_Empty tests that an empty store renders an empty frame
func TestPlayerGrid_Empty(t *testing.T) {
	html, doc := renderGrid(t, nil, 1)

	assert.Equal(t, 1, doc.Find("div.frame").Length())
	assert.Equal(t, 0, doc.Find("div.player").Length())
	assert.Contains(t, html, "<div class='frame'></div>")
	assert.Contains(t, doc.Find("style").Text(), "grid-template-columns: repeat(2, 1fr)")
}

func TestPlayerGrid_EscapesNames(t *testing.T) {
	html, doc := renderGrid(t, []shared.Player{{Name: "<b>Bob</b> & Co", Placement: 1}}, 1)

	assert.Equal(t, 0, doc.Find("div.player b").Length())
	assert.Equal(t, "1 - <b>Bob</b> & Co", doc.Find("div.player-info").Text())
	assert.NotContains(t, html, "<b>")
}

// TestPlayerGrid_GivenMaxPlacement tests that colours follow the max placement passed in, not the rendered players
func TestPlayerGrid_GivenMaxPlacement(t *testing.T) {
	_, doc := renderGrid(t, []shared.Player{{Name: "Alice", Placement: 1}}, 4)

	style, ok := doc.Find("div.player").Attr("style")
	require.True(t, ok)
	assert.Equal(t, "background-color: #4C4CE6;", style)
}

func TestPlayerGrid_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := PlayerGrid(fourPlayers, 3).Render(ctx, &buf)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveHTML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "PlayerStats")

	path, err := SaveHTML(context.Background(), dir, fourPlayers, 3)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, HTMLFileName), path)
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	doc, err := goquery.NewDocumentFromReader(file)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Find("div.player").Length())
}

func TestSaveHTML_DirectoryIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	path, err := SaveHTML(context.Background(), blocker, fourPlayers, 3)

	assert.Error(t, err)
	assert.Empty(t, path)
}
