/* external_test.go
 * Contains unit tests for external.go HTTP functions using httptest
 */

package external

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"standings-exporter/api/shared"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const twoEventTournament = `{
  "data": {
    "tournament": {
      "events": [
        {"id": 1, "name": "Melee Singles", "standings": {"nodes": [
          {"entrant": {"id": 10, "name": "Alice"}, "placement": 1},
          {"entrant": {"id": 11, "name": "Bob"}, "placement": 2}
        ]}},
        {"id": 2, "name": "Melee Doubles", "standings": {"nodes": [
          {"entrant": {"id": 12, "name": "Carol / Dave"}, "placement": 1},
          {"entrant": {"id": 13, "name": "Erin / Frank"}, "placement": 3}
        ]}}
      ]
    }
  }
}`

// newTestClient creates a client pointed at the test server with no rate limiting
func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL,
		WithHTTPClient(server.Client()),
		WithLimiter(rate.NewLimiter(rate.Inf, 0)),
	)
}

// TestFetchStandings_Success tests the request contract and flattening of a two event response
func TestFetchStandings_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var request GraphQLRequest
		assert.NoError(t, json.Unmarshal(body, &request))
		assert.Contains(t, request.Query, `tournament(slug: "genesis-9")`)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(twoEventTournament))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetToken("secret-token")

	events, err := client.FetchStandings(context.Background(), Tournament, "genesis-9")

	require.NoError(t, err)
	want := []EventStandings{
		{Name: "Melee Singles", Players: []shared.Player{{Name: "Alice", Placement: 1}, {Name: "Bob", Placement: 2}}},
		{Name: "Melee Doubles", Players: []shared.Player{{Name: "Carol / Dave", Placement: 1}, {Name: "Erin / Frank", Placement: 3}}},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("FetchStandings() mismatch (-want +got):\n%s", diff)
	}
}

// TestFetchStandings_League tests that a league query reads the league field of the response
func TestFetchStandings_League(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `league(slug: \"weekly\")`)
		w.Write([]byte(`{"data": {"league": {"events": [{"name": "Season 1", "standings": {"nodes": [
			{"entrant": {"name": "Zed"}, "placement": 4}]}}]}}}`))
	}))
	defer server.Close()

	events, err := newTestClient(server).FetchStandings(context.Background(), League, "weekly")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Season 1", events[0].Name)
	assert.Equal(t, []shared.Player{{Name: "Zed", Placement: 4}}, events[0].Players)
}

// TestFetchStandings_EmptyToken tests that an empty token is still sent, it is never validated
func TestFetchStandings_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer", strings.TrimSpace(r.Header.Get("Authorization")))
		w.Write([]byte(`{"data": {"tournament": {"events": []}}}`))
	}))
	defer server.Close()

	events, err := newTestClient(server).FetchStandings(context.Background(), Tournament, "x")

	require.NoError(t, err)
	assert.Empty(t, events)
}

// TestFetchStandings_ServerError tests handling of non 2xx status codes
func TestFetchStandings_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	events, err := newTestClient(server).FetchStandings(context.Background(), Tournament, "x")

	require.Error(t, err)
	assert.Nil(t, events)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

// TestFetchStandings_Unauthorized tests that a rejected token is reported as a status error
func TestFetchStandings_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchStandings(context.Background(), League, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// TestFetchStandings_InvalidJSON tests that an undecodable body is reported as no events
func TestFetchStandings_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchStandings(context.Background(), Tournament, "x")

	assert.ErrorIs(t, err, ErrNoEvents)
}

// TestFetchStandings_ConnectionRefused tests handling of a server that is not listening
func TestFetchStandings_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(server)
	server.Close()

	_, err := client.FetchStandings(context.Background(), Tournament, "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoEvents)
	assert.Contains(t, err.Error(), "sending request")
}

// TestFetchStandings_CancelledContext tests that the limiter wait honours the context
func TestFetchStandings_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}))
	defer server.Close()

	client := NewClient(server.URL, WithHTTPClient(server.Client()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStandings(ctx, Tournament, "x")

	require.Error(t, err)
}

// region ParseStandings tests

func TestParseStandings_NullShapes(t *testing.T) {
	tests := []struct {
		name string
		kind ResourceKind
		body string
	}{
		{"empty object", Tournament, `{}`},
		{"null data", Tournament, `{"data": null}`},
		{"null tournament", Tournament, `{"data": {"tournament": null}}`},
		{"null events", Tournament, `{"data": {"tournament": {"events": null}}}`},
		{"missing events", League, `{"data": {"league": {}}}`},
		{"wrong container", League, `{"data": {"tournament": {"events": []}}}`},
		{"errors only", Tournament, `{"errors": [{"message": "Invalid authentication token"}]}`},
		{"empty body", Tournament, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ParseStandings(tt.kind, []byte(tt.body))
			assert.ErrorIs(t, err, ErrNoEvents)
			assert.Nil(t, events)
		})
	}
}

func TestParseStandings_SkipsNullEntries(t *testing.T) {
	body := `{"data": {"tournament": {"events": [
		null,
		{"name": "No Standings", "standings": null},
		{"name": "Partial", "standings": {"nodes": [null, {"entrant": null, "placement": 2}, {"entrant": {"name": "Ann"}, "placement": 3}]}}
	]}}}`

	events, err := ParseStandings(Tournament, []byte(body))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "No Standings", events[0].Name)
	assert.Empty(t, events[0].Players)
	assert.Equal(t, []shared.Player{{Name: "Ann", Placement: 3}}, events[1].Players)
}

func TestParseStandings_KeepsDuplicates(t *testing.T) {
	body := `{"data": {"tournament": {"events": [{"name": "A", "standings": {"nodes": [
		{"entrant": {"name": "Sam"}, "placement": 1},
		{"entrant": {"name": "Sam"}, "placement": 1}
	]}}]}}}`

	events, err := ParseStandings(Tournament, []byte(body))

	require.NoError(t, err)
	assert.Len(t, events[0].Players, 2)
}

// endregion
