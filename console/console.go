/* console.go
 * Contains the interactive command loop. The loop asks for the api key once, then reads one command per line and
 * dispatches it by prefix until `exit` is entered or input runs out. Every command runs to completion, including its
 * network request, before the next prompt is shown
 */

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"standings-exporter/api/api"

	"go.uber.org/zap"
)

const (
	apiKeyPrompt  = "Enter your Start.GG API key:"
	commandPrompt = "Enter a command (e.g., 'fetch tournament', 'fetch league', 'print players', 'save players', 'save html', 'exit'):"
)

// Command prefixes in the order they are matched
const (
	cmdFetchTournament = "fetch tournament"
	cmdFetchLeague     = "fetch league"
	cmdPrintPlayers    = "print players"
	cmdSavePlayers     = "save players"
	cmdSaveHTML        = "save html"
	cmdExit            = "exit"
	cmdHelp            = "help"
)

var commandNames = []string{
	cmdFetchTournament,
	cmdFetchLeague,
	cmdPrintPlayers,
	cmdSavePlayers,
	cmdSaveHTML,
	cmdExit,
	cmdHelp,
}

type Console struct {
	APIPtr  *api.API
	session Session
	reader  *bufio.Reader
	logger  *zap.Logger
}

func NewConsole(apiPtr *api.API, in io.Reader, session Session, logger *zap.Logger) (*Console, error) {
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}
	if in == nil || session == nil {
		return nil, fmt.Errorf("input and session are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Console{
		APIPtr:  apiPtr,
		session: session,
		reader:  bufio.NewReader(in),
		logger:  logger,
	}, nil
}

// Run prompts for the api key and then runs the command loop
// Preconditions: Receives a context used for every request made by a command
// Postconditions: Returns nil after `exit`, or an error if input could not be read, e.g. it ended before `exit`
func (c *Console) Run(ctx context.Context) error {
	c.session.Send(apiKeyPrompt)
	token, err := c.readLine()
	if err != nil {
		return fmt.Errorf("reading api key: %w", err)
	}
	c.APIPtr.SetToken(strings.TrimSpace(token))

	for {
		c.session.Send(commandPrompt)
		line, err := c.readLine()
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}
		if !c.handleCommand(ctx, line) {
			c.logger.Debug("exit requested")
			return nil
		}
	}
}

// handleCommand routes a command line to its handler
// Postconditions: Returns false if the loop should stop
func (c *Console) handleCommand(ctx context.Context, line string) bool {
	input := strings.ToLower(line)

	switch {
	case startsWith(input, cmdFetchTournament):
		c.fetchHandler(ctx, api.Tournament, line)

	case startsWith(input, cmdFetchLeague):
		c.fetchHandler(ctx, api.League, line)

	case startsWith(input, cmdPrintPlayers):
		c.printPlayersHandler()

	case startsWith(input, cmdSavePlayers):
		c.savePlayersHandler()

	case startsWith(input, cmdSaveHTML):
		c.saveHTMLHandler(ctx)

	case startsWith(input, cmdExit):
		return false

	case startsWith(input, cmdHelp):
		c.helpMessageHandler()

	default:
		c.invalidCommandHandler(input)
	}
	return true
}

// readLine reads one line of input without its line ending. A final line without a newline is returned as is
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Receives an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
