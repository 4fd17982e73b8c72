package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultOutputPath is used when output.path is not configured.
const DefaultOutputPath = "movies.json"

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	// Pick up TMDB_API_KEY from a local .env if one exists
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	if err := v.BindEnv("tmdb.api_key", "TMDB_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fetcharr"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fetcharr/")
	}

	// Read config file; running without one is fine as long as the API
	// key comes from the environment
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.fetch_credits", true)
	v.SetDefault("tmdb.concurrency", 5)

	// Output defaults
	v.SetDefault("output.path", DefaultOutputPath)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// DefaultCategories returns the built-in category set used when the config
// file does not define any.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{
			ID:       "popular-movies",
			Name:     "Popular Movies",
			Endpoint: "/movie/popular",
			Limit:    20,
		},
		{
			ID:       "top-rated-movies",
			Name:     "Top Rated Movies",
			Endpoint: "/movie/top_rated",
			Limit:    20,
		},
		{
			ID:       "popular-tv",
			Name:     "Popular TV Shows",
			Endpoint: "/tv/popular",
			Limit:    20,
		},
		{
			ID:       "top-rated-tv",
			Name:     "Top Rated TV Shows",
			Endpoint: "/tv/top_rated",
			Limit:    20,
		},
	}
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIKey == "" || cfg.TMDB.APIKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set (config file or TMDB_API_KEY environment variable)")
	}

	if cfg.TMDB.Concurrency < 1 {
		return fmt.Errorf("tmdb.concurrency must be at least 1")
	}

	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}

	seen := make(map[string]bool, len(cfg.Categories))
	for i, cat := range cfg.Categories {
		if cat.ID == "" {
			return fmt.Errorf("categories[%d]: id is required", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("categories[%d]: duplicate id %q", i, cat.ID)
		}
		seen[cat.ID] = true
		if cat.Name == "" {
			return fmt.Errorf("category %s: name is required", cat.ID)
		}
		if cat.Endpoint == "" {
			return fmt.Errorf("category %s: endpoint is required", cat.ID)
		}
		if cat.Limit <= 0 {
			return fmt.Errorf("category %s: limit must be positive", cat.ID)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
