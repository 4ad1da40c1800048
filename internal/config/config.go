package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the archivesearch API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CorpusConfig holds corpus data settings.
type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

// SearchConfig holds search engine tuning.
type SearchConfig struct {
	DefaultPageSize     int    `yaml:"default_page_size"`
	MaxPageSize         int    `yaml:"max_page_size"`
	ExcerptLength       int    `yaml:"excerpt_length"`
	SuggestionLimit     int    `yaml:"suggestion_limit"`
	RecommendationLimit int    `yaml:"recommendation_limit"`
	Collation           string `yaml:"collation"` // BCP 47 tag for title sorting (default: fr)
}

// CollationTag parses the configured collation language.
func (s SearchConfig) CollationTag() (language.Tag, error) {
	tag, err := language.Parse(s.Collation)
	if err != nil {
		return language.Und, fmt.Errorf("invalid collation tag %q: %w", s.Collation, err)
	}
	return tag, nil
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Corpus.Dir == "" {
		c.Corpus.Dir = "config/corpus"
	}
	if c.Search.DefaultPageSize <= 0 {
		c.Search.DefaultPageSize = 20
	}
	if c.Search.MaxPageSize <= 0 {
		c.Search.MaxPageSize = 100
	}
	if c.Search.ExcerptLength <= 0 {
		c.Search.ExcerptLength = 200
	}
	if c.Search.SuggestionLimit <= 0 {
		c.Search.SuggestionLimit = 8
	}
	if c.Search.RecommendationLimit <= 0 {
		c.Search.RecommendationLimit = 6
	}
	if c.Search.Collation == "" {
		c.Search.Collation = "fr"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("search.default_page_size %d exceeds search.max_page_size %d",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	if _, err := c.Search.CollationTag(); err != nil {
		return err
	}
	return nil
}

// findConfigPath locates config/{env}.yaml relative to the working directory,
// walking up for test runs started in package directories.
func findConfigPath(env string) string {
	name := filepath.Join("config", env+".yaml")
	if _, err := os.Stat(name); err == nil {
		return name
	}

	// Walk up from the caller's directory (useful under `go test`).
	if _, file, _, ok := runtime.Caller(0); ok {
		dir := filepath.Dir(file)
		for i := 0; i < 6; i++ {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
			dir = filepath.Dir(dir)
		}
	}
	return name
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnvVars substitutes ${VAR} references with environment values.
func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		key := strings.TrimSuffix(strings.TrimPrefix(string(match), "${"), "}")
		if val, ok := os.LookupEnv(key); ok {
			return []byte(val)
		}
		return match
	})
}
