/* api.go
 * This file contains the public methods for interacting with this package. The console should only call the methods
 * in this file, not the sub packages for external, store and export. Every method returns an explicit error so the
 * caller decides what to report, nothing here writes to the console
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"standings-exporter/api/export"
	"standings-exporter/api/external"
	"standings-exporter/api/shared"
	"standings-exporter/api/stats"
	"standings-exporter/api/store"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds the configuration used to build an API
type Config struct {
	// Endpoint is the GraphQL endpoint, external.DefaultEndpoint when empty
	Endpoint string
	// OutputDir is the directory `save players` and `save html` write to, it is created if missing
	OutputDir string
	// PrintPath is the fixed file `print players` writes to, <OutputDir>/PlayerData.txt when empty
	PrintPath string

	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Logger     *zap.Logger
	Stats      stats.Collector
	Store      store.Interface
}

// API provides methods for fetching standings into the player store and exporting them
type API struct {
	Store     store.Interface
	Client    *external.Client
	Stats     stats.Collector
	OutputDir string
	PrintPath string
	logger    *zap.Logger
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(cfg Config) (*API, error) {
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if cfg.PrintPath == "" {
		cfg.PrintPath = filepath.Join(cfg.OutputDir, export.TextFileName)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Stats == nil {
		cfg.Stats = stats.NewNoop()
	}
	if cfg.Store == nil {
		cfg.Store = store.NewStore()
	}

	client := external.NewClient(cfg.Endpoint,
		external.WithHTTPClient(cfg.HTTPClient),
		external.WithLimiter(cfg.Limiter),
		external.WithLogger(cfg.Logger.Named("external")),
	)

	return &API{
		Store:     cfg.Store,
		Client:    client,
		Stats:     cfg.Stats,
		OutputDir: cfg.OutputDir,
		PrintPath: cfg.PrintPath,
		logger:    cfg.Logger,
	}, nil
}

// SetToken sets the bearer token used for every following fetch
func (a *API) SetToken(token string) {
	a.Client.SetToken(token)
}

// FetchStandings fetches the standings of the tournament or league at rawURL and appends every player to the store.
// Preconditions: Receives a context, the kind of container and the url entered by the user
// Postconditions: Returns the fetched standings in event then node order. Returns external.ErrInvalidURL if the url
// has no slug, external.ErrNoEvents if the response has no events, or the request error. Nothing is appended to the
// store when an error is returned
func (a *API) FetchStandings(ctx context.Context, kind external.ResourceKind, rawURL string) ([]external.EventStandings, error) {
	slug := external.ExtractSlug(rawURL)
	if slug == "" {
		return nil, fmt.Errorf("%w: %q", external.ErrInvalidURL, rawURL)
	}

	a.Stats.IncCounter(stats.MetricFetches, 1)
	start := time.Now()
	events, err := a.Client.FetchStandings(ctx, kind, slug)
	a.Stats.ObserveHistogram(stats.MetricFetchDuration, time.Since(start).Seconds())
	if err != nil {
		if !errors.Is(err, external.ErrNoEvents) {
			a.Stats.IncCounter(stats.MetricFetchFailures, 1)
			a.logger.Warn("fetch failed", zap.String("kind", string(kind)), zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}

	appended := 0
	for _, event := range events {
		a.Store.Add(event.Players...)
		appended += len(event.Players)
	}
	a.Stats.IncCounter(stats.MetricPlayersAppended, int64(appended))
	a.Stats.SetGauge(stats.MetricStorePlayers, int64(a.Store.Len()))
	a.logger.Info("fetched standings",
		zap.String("kind", string(kind)),
		zap.String("slug", slug),
		zap.Int("events", len(events)),
		zap.Int("players", appended),
	)
	return events, nil
}

// Players returns every player fetched this session in fetch order
func (a *API) Players() []shared.Player {
	return a.Store.All()
}

// PrintPlayers writes the text export to the fixed print path. The parent directory is not created
// Postconditions: Returns the path written to, or an error if it occurs
func (a *API) PrintPlayers() (string, error) {
	if err := export.WriteTextFile(a.PrintPath, a.Store.All()); err != nil {
		return "", err
	}
	a.Stats.IncCounter(stats.MetricExports, 1)
	return a.PrintPath, nil
}

// SavePlayers writes the text export to <OutputDir>/PlayerData.txt, creating the directory if needed
// Postconditions: Returns the path written to, or an error if it occurs
func (a *API) SavePlayers() (string, error) {
	path, err := export.SaveText(a.OutputDir, a.Store.All())
	if err != nil {
		return "", err
	}
	a.Stats.IncCounter(stats.MetricExports, 1)
	return path, nil
}

// SaveHTML writes the coloured HTML export to <OutputDir>/PlayerData.html, creating the directory if needed
// Postconditions: Returns the path written to, or an error if it occurs
func (a *API) SaveHTML(ctx context.Context) (string, error) {
	path, err := export.SaveHTML(ctx, a.OutputDir, a.Store.All(), a.Store.MaxPlacement())
	if err != nil {
		return "", err
	}
	a.Stats.IncCounter(stats.MetricExports, 1)
	return path, nil
}
