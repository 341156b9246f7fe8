/* external.go
 * Contains the logic used to fetch standings from the start.gg GraphQL api, and return the results to the higher level
 * functions
 */

package external

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"standings-exporter/api/shared"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the start.gg GraphQL endpoint
const DefaultEndpoint = "https://api.start.gg/gql/alpha"

// start.gg allows 80 requests per 60 seconds per token
const requestsPerMinute = 80

var (
	// ErrInvalidURL is returned when a url does not contain a slug
	ErrInvalidURL = errors.New("invalid url")
	// ErrNoEvents is returned when the response has no events for the queried container, including when the body
	// could not be decoded
	ErrNoEvents = errors.New("no events found")
)

// Client posts standings queries to the api. A client holds a single bearer token and issues one request at a time
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the base client used to send requests. The bearer token is layered on top of its transport
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLimiter replaces the default request limiter
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the given endpoint. An empty endpoint uses DefaultEndpoint
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 1),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the api token sent as `Authorization: Bearer <token>`. The token is not validated
func (c *Client) SetToken(token string) {
	c.token = token
}

// Endpoint returns the url requests are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchStandings fetches the standings of every event in a tournament or league
// Preconditions: Receives a context, the kind of container and its slug
// Postconditions: Returns the standings of each event in response order, ErrNoEvents if the response has no events,
// a *StatusError for a non 2xx response, or any other error that occurs sending the request
func (c *Client) FetchStandings(ctx context.Context, kind ResourceKind, slug string) ([]EventStandings, error) {
	c.logger.Debug("fetching standings", zap.String("kind", string(kind)), zap.String("slug", slug))

	body, err := c.postQuery(ctx, BuildStandingsQuery(kind, slug))
	if err != nil {
		return nil, err
	}

	events, err := ParseStandings(kind, body)
	if err != nil {
		c.logger.Debug("no standings in response", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("fetched standings", zap.String("kind", string(kind)), zap.Int("events", len(events)))
	return events, nil
}

// postQuery sends a query to the api and returns the raw response body
func (c *Client) postQuery(ctx context.Context, query string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for request limiter: %w", err)
	}

	payload, err := json.Marshal(GraphQLRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json; charset=utf-8")

	// oauth2 sets the bearer header on every request sent through the returned client
	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := oauth2.NewClient(clientCtx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token}))

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		c.logger.Warn("standings request failed", zap.Int("status", response.StatusCode))
		return nil, &StatusError{StatusCode: response.StatusCode, Status: response.Status}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// ParseStandings decodes a response body and flattens it into one EventStandings per event
// Preconditions: Receives the kind that was queried and the raw response body
// Postconditions: Returns the standings in response order, or ErrNoEvents if the body does not decode or the
// container or its events are null
func ParseStandings(kind ResourceKind, body []byte) ([]EventStandings, error) {
	var response GraphQLResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrNoEvents, err)
	}

	container := response.Data.container(kind)
	if container == nil || container.Events == nil {
		return nil, ErrNoEvents
	}

	events := make([]EventStandings, 0, len(container.Events))
	for _, event := range container.Events {
		if event == nil {
			continue
		}
		standings := EventStandings{Name: event.Name}
		if event.Standings != nil {
			for _, node := range event.Standings.Nodes {
				if node == nil || node.Entrant == nil {
					continue
				}
				standings.Players = append(standings.Players, shared.Player{
					Name:      node.Entrant.Name,
					Placement: node.Placement,
				})
			}
		}
		events = append(events, standings)
	}
	return events, nil
}
