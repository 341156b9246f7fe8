/* main.go
 * The "main" method for running the standings exporter. For details about the commands see `console/console.go`
 * Usage: go run . -o="<output dir>" [--print-file="<path>"] [--endpoint="<url>"] [--metrics-file="<path>"] [-v]
 */

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"standings-exporter/api/api"
	"standings-exporter/api/external"
	"standings-exporter/api/stats"
	statslogger "standings-exporter/api/stats/logger"
	statsprometheus "standings-exporter/api/stats/prometheus"
	"standings-exporter/console"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the flag values of the root command
type options struct {
	outputDir   string
	printFile   string
	endpoint    string
	metricsFile string
	verbose     bool
}

func main() {
	// The .env file is optional, the environment alone is enough
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("An error occurred: loading .env file: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command. Flag defaults are read from the environment, so the .env file must already be
// loaded
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "standings-exporter",
		Short: "Fetch start.gg standings and export them as text or HTML",
		Long: `standings-exporter is an interactive console for collecting the standings of
start.gg tournaments and leagues and exporting every fetched player.

After entering an api key, type commands at the prompt:
  fetch tournament [url]
  fetch league [url]
  print players
  save players
  save html
  help
  exit

A url given on the same line as a fetch command is used straight away and no
url prompt is shown, so scripted input must not repeat it on the next line.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}

	endpoint := os.Getenv("STARTGG_API_URL")
	if endpoint == "" {
		endpoint = external.DefaultEndpoint
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", defaultOutputDir(), "directory `save players` and `save html` write to")
	cmd.Flags().StringVar(&opts.printFile, "print-file", "", "file `print players` writes to (default <output-dir>/PlayerData.txt)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", endpoint, "start.gg GraphQL endpoint")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", debugFromEnv(), "enable debug logging")
	return cmd
}

// runConsole wires the api to a console on the command's input and output and runs it until `exit`
// Preconditions: Receives the running command and its parsed options
// Postconditions: Returns an error if setup fails or the console stops without `exit`
func runConsole(cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var collector stats.Collector = statslogger.New(logger)
	var promCollector *statsprometheus.Collector
	if opts.metricsFile != "" {
		promCollector = statsprometheus.New(nil)
		collector = promCollector
	}

	apiPtr, err := api.NewAPI(api.Config{
		Endpoint:  opts.endpoint,
		OutputDir: opts.outputDir,
		PrintPath: opts.printFile,
		Logger:    logger,
		Stats:     collector,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}

	c, err := console.NewConsole(apiPtr, cmd.InOrStdin(), console.NewWriterSession(cmd.OutOrStdout()), logger.Named("console"))
	if err != nil {
		return err
	}
	logger.Debug("starting console",
		zap.String("endpoint", apiPtr.Client.Endpoint()),
		zap.String("outputDir", apiPtr.OutputDir),
		zap.String("printPath", apiPtr.PrintPath),
	)

	runErr := c.Run(cmd.Context())

	if promCollector != nil {
		if err := promCollector.WriteTextfile(opts.metricsFile); err != nil {
			logger.Warn("writing metrics failed", zap.String("path", opts.metricsFile), zap.Error(err))
		}
	}
	return runErr
}

// newLogger creates a development logger on stderr at warn level, or debug level when verbose
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
