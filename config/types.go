package config

// Config represents the complete configuration structure
type Config struct {
	TMDB       TMDBConfig       `mapstructure:"tmdb"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Categories []CategoryConfig `mapstructure:"categories"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	FetchCredits bool   `mapstructure:"fetch_credits"`
	Concurrency  int    `mapstructure:"concurrency"`
}

// OutputConfig controls where the catalog document is written
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ParamConfig is one query parameter of a category's listing request.
type ParamConfig struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// CategoryConfig describes one named listing query against the catalog API.
// Params are appended to the request as query parameters in the order they
// are written; Limit caps the number of items emitted for the category.
// Filter is an optional expr expression evaluated against each normalized
// item.
type CategoryConfig struct {
	ID       string        `mapstructure:"id"`
	Name     string        `mapstructure:"name"`
	Endpoint string        `mapstructure:"endpoint"`
	Params   []ParamConfig `mapstructure:"params"`
	Limit    int           `mapstructure:"limit"`
	Filter   string        `mapstructure:"filter"`
}
