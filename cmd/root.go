package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fetcharr/catalog"
	"github.com/s0up4200/fetcharr/config"
	"github.com/s0up4200/fetcharr/tmdb"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	tmdbClient *tmdb.Client

	// Command flags
	outputPath string
	apiKey     string
	noCredits  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fetcharr",
	Short: "Fetch TMDB categories into a single JSON catalog",
	Long: `fetcharr is a CLI tool that fetches configured categories of movies and
TV shows from the TMDB API, enriches each item with genre names and
cast/crew credits, and writes the result to a single JSON document.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the root command
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "TMDB API key (overrides config and TMDB_API_KEY)")

	// Add subcommands
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// An API key passed on the command line takes priority over config
	// and environment; set it before Load so validation sees it
	if apiKey != "" {
		os.Setenv("TMDB_API_KEY", apiKey)
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Apply command line overrides
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = outputPath
	}
	if cmd.Flags().Changed("no-credits") {
		cfg.TMDB.FetchCredits = !noCredits
	}

	// Create TMDB client
	tmdbClient, err = tmdb.NewClient(cfg.TMDB.APIKey, logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all configured categories and write the catalog file",
	Long: `Fetch every configured category from TMDB, resolve genre names, enrich
items with cast and crew credits, and write the aggregated catalog to a
single JSON file.

The run succeeds as long as at least one category could be fetched; failed
categories are logged and skipped.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultOutputPath, "output file path")
	fetchCmd.Flags().BoolVar(&noCredits, "no-credits", false, "skip cast/crew credits enrichment")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger.Info().
		Int("categories", len(cfg.Categories)).
		Str("output", cfg.Output.Path).
		Msg("Starting catalog fetch")

	pipeline := catalog.NewPipeline(tmdbClient, cfg, logger)

	doc, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	if err := catalog.WriteDocument(cfg.Output.Path, doc); err != nil {
		return err
	}

	logger.Info().
		Int("categories", len(doc.Categories)).
		Str("output", cfg.Output.Path).
		Msg("Catalog written")

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to TMDB",
	Long:  `Test the connection to TMDB and verify the configured API key by fetching the genre taxonomies.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing connection to TMDB...")

	ctx := context.Background()
	genres, err := tmdbClient.ResolveGenres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nTMDB Statistics:\n")
	fmt.Printf("- Merged genres: %d\n", len(genres))
	fmt.Printf("- Configured categories: %d\n", len(cfg.Categories))

	for _, cat := range cfg.Categories {
		fmt.Printf("  • %s (%s, limit %d)\n", cat.Name, cat.Endpoint, cat.Limit)
	}

	return nil
}
