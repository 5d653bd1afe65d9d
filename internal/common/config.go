package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Corpora   CorporaConfig   `toml:"corpora"`
	Questions QuestionsConfig `toml:"questions"`
	Output    OutputConfig    `toml:"output"`
	Loader    LoaderConfig    `toml:"loader"`
	Cache     CacheConfig     `toml:"cache"`
	Logging   LoggingConfig   `toml:"logging"`
}

// CorporaConfig locates the three source corpora.
type CorporaConfig struct {
	FinanceDir   string `toml:"finance_dir"`   // Directory of finance PDF files
	InsuranceDir string `toml:"insurance_dir"` // Directory of insurance PDF files
	FAQPath      string `toml:"faq_path"`      // FAQ id->text JSON map file
}

type QuestionsConfig struct {
	Path string `toml:"path"` // Question list JSON file
}

type OutputConfig struct {
	Path string `toml:"path"` // Answers JSON file to write
}

// LoaderConfig controls concurrent PDF extraction.
type LoaderConfig struct {
	Workers int `toml:"workers"` // Concurrent extraction workers (default: 8)
}

// CacheConfig controls the BadgerDB extraction cache. The cache only
// stores extracted PDF text keyed by file identity; it is not a search
// index.
type CacheConfig struct {
	Enabled        bool   `toml:"enabled"`          // Enable cache (default: false)
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values. Paths
// mirror the reference dataset layout; override them in reperio.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Corpora: CorporaConfig{
			FinanceDir:   "./reference/finance",
			InsuranceDir: "./reference/insurance",
			FAQPath:      "./reference/faq/pid_map_content.json",
		},
		Questions: QuestionsConfig{
			Path: "./dataset/preliminary/questions_example.json",
		},
		Output: OutputConfig{
			Path: "./data/output/answers.json",
		},
		Loader: LoaderConfig{
			Workers: 8,
		},
		Cache: CacheConfig{
			Enabled:        false,
			Path:           "./data/cache",
			ResetOnStartup: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env. Later files override earlier
// files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if dir := os.Getenv("REPERIO_FINANCE_DIR"); dir != "" {
		config.Corpora.FinanceDir = dir
	}
	if dir := os.Getenv("REPERIO_INSURANCE_DIR"); dir != "" {
		config.Corpora.InsuranceDir = dir
	}
	if path := os.Getenv("REPERIO_FAQ_PATH"); path != "" {
		config.Corpora.FAQPath = path
	}
	if path := os.Getenv("REPERIO_QUESTIONS_PATH"); path != "" {
		config.Questions.Path = path
	}
	if path := os.Getenv("REPERIO_OUTPUT_PATH"); path != "" {
		config.Output.Path = path
	}
	if workers := os.Getenv("REPERIO_LOADER_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			config.Loader.Workers = w
		}
	}
	if enabled := os.Getenv("REPERIO_CACHE_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Cache.Enabled = e
		}
	}
	if path := os.Getenv("REPERIO_CACHE_PATH"); path != "" {
		config.Cache.Path = path
	}
	if level := os.Getenv("REPERIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Command-line flags have highest priority.
func ApplyFlagOverrides(config *Config, outputPath string) {
	if outputPath != "" {
		config.Output.Path = outputPath
	}
}
