/* handlers.go
 * Contains the handler for each console command. Handlers report every outcome through the session and never return
 * an error, so a failed command leaves the loop ready for the next one
 */

package console

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"standings-exporter/api/api"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
)

// fetchHandler handles `fetch tournament` and `fetch league`. The url is taken from the command line when one is given
// after the command, otherwise the user is prompted for it
func (c *Console) fetchHandler(ctx context.Context, kind api.ResourceKind, line string) {
	rawURL, ok := inlineURL(line)
	if !ok {
		c.session.Send(fmt.Sprintf("Enter %s URL:", kind))
		input, err := c.readLine()
		if err != nil {
			// an unreadable url is reported as an invalid one, the next command read surfaces the error
			c.logger.Debug("reading url failed", zap.Error(err))
		}
		rawURL = input
	}

	events, err := c.APIPtr.FetchStandings(ctx, kind, rawURL)
	switch {
	case errors.Is(err, api.ErrInvalidURL):
		c.session.Send(fmt.Sprintf("Invalid %s URL.", kind))
		return

	case errors.Is(err, api.ErrNoEvents):
		c.session.Send(fmt.Sprintf("No events found for this %s.", kind))
		return

	case err != nil:
		c.session.Send(fmt.Sprintf("An error occurred while fetching players from %s: %s", kind, err))
		return
	}

	for _, event := range events {
		c.session.Send(fmt.Sprintf("Event: %s", event.Name))
		for _, player := range event.Players {
			c.session.Send(fmt.Sprintf("Player %s, Placement: %d", player.Name, player.Placement))
		}
	}
}

// printPlayersHandler handles `print players`
func (c *Console) printPlayersHandler() {
	if _, err := c.APIPtr.PrintPlayers(); err != nil {
		c.session.Send(fmt.Sprintf("An error occurred while printing players to file: %s", err))
		return
	}
	c.session.Send("Player data saved to file successfully.")
}

// savePlayersHandler handles `save players`
func (c *Console) savePlayersHandler() {
	path, err := c.APIPtr.SavePlayers()
	if err != nil {
		c.session.Send(fmt.Sprintf("An error occurred while saving players to file: %s", err))
		return
	}
	c.session.Send(fmt.Sprintf("Player data saved to %s successfully.", path))
}

// saveHTMLHandler handles `save html`
func (c *Console) saveHTMLHandler(ctx context.Context) {
	path, err := c.APIPtr.SaveHTML(ctx)
	if err != nil {
		c.session.Send(fmt.Sprintf("An error occurred while saving HTML to file: %s", err))
		return
	}
	c.session.Send(fmt.Sprintf("Player data saved to %s successfully.", path))
}

// helpMessageHandler handles `help`
func (c *Console) helpMessageHandler() {
	var res strings.Builder
	res.WriteString("Commands are matched on their start and are case insensitive\n")
	res.WriteString("`fetch tournament [url]`: Fetches the standings of every event in a tournament, e.g. https://www.start.gg/tournament/genesis-9\n")
	res.WriteString("`fetch league [url]`: Fetches the standings of every event in a league\n")
	res.WriteString("A url given on the same line as a fetch command is used without prompting, so do not enter it again on the next line\n")
	res.WriteString("`print players`: Writes every fetched player to " + c.APIPtr.PrintPath + "\n")
	res.WriteString("`save players`: Writes every fetched player to PlayerData.txt in " + c.APIPtr.OutputDir + "\n")
	res.WriteString("`save html`: Writes a coloured grid of every fetched player to PlayerData.html in " + c.APIPtr.OutputDir + "\n")
	res.WriteString("`exit`: Quits, fetched players are not kept")
	c.session.Send(res.String())
}

// invalidCommandHandler reports an unknown command, suggesting the closest known command if there is one
func (c *Console) invalidCommandHandler(input string) {
	res := "Invalid command. Please try again."
	if suggestion, ok := suggestCommand(input); ok {
		res += fmt.Sprintf(" Did you mean '%s'?", suggestion)
	}
	c.session.Send(res)
}

// suggestCommand returns the known command closest to input, or false if input does not fuzzy match any of them
func suggestCommand(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	ranks := fuzzy.RankFindFold(input, commandNames)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

// inlineURL returns the url given after a fetch command, e.g. `fetch tournament https://start.gg/tournament/x`.
// We use splitter instead of strings.Fields so a quoted url is kept as one part
// Postconditions: Returns the url and true only if the third part of the line contains a slug
func inlineURL(line string) (string, bool) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return "", false
	}
	parts, err := spaceSplitter.Split(line)
	if err != nil {
		return "", false
	}

	var args []string
	for _, part := range parts {
		if part != "" {
			args = append(args, part)
		}
	}
	if len(args) < 3 {
		return "", false
	}

	candidate := strings.Trim(args[2], "\"“”")
	if !api.HasSlug(candidate) {
		return "", false
	}
	return candidate, true
}
