package satyparse

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/shibukawa/satyparse/parser"
)

// Config represents the satyparse configuration (satyparse.yaml)
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Check  CheckConfig  `yaml:"check"`
	Output OutputConfig `yaml:"output"`
}

// ParserConfig mirrors parser.Options
type ParserConfig struct {
	MaxDepth  int  `yaml:"max_depth"`
	Trace     bool `yaml:"trace"`
	Normalize bool `yaml:"normalize"`
}

// CheckConfig represents settings of the check command
type CheckConfig struct {
	Roots      []string `yaml:"roots"`
	Extensions []string `yaml:"extensions"`
	Jobs       int      `yaml:"jobs"` // 0 means GOMAXPROCS
}

// OutputConfig represents output settings of the debug commands
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"` // Pointer to distinguish between unset and false. Unset means enabled
}

// ColorEnabled returns true unless color is explicitly disabled
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// ParserOptions converts the parser section into producer options.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		MaxDepth:  c.Parser.MaxDepth,
		Trace:     c.Parser.Trace,
		Normalize: c.Parser.Normalize,
	}
}

// Jobs returns the effective number of files checked in parallel.
func (c *Config) Jobs() int {
	if c.Check.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Check.Jobs
}

// DefaultExtensions are the source file extensions checked by default.
var DefaultExtensions = []string{".saty", ".satyh", ".satyg"}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := DefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: parser.DefaultOptions.MaxDepth,
		},
		Check: CheckConfig{
			Roots:      []string{"."},
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

func applyDefaults(config *Config) {
	if config.Parser.MaxDepth == 0 {
		config.Parser.MaxDepth = parser.DefaultOptions.MaxDepth
	}

	if len(config.Check.Roots) == 0 {
		config.Check.Roots = []string{"."}
	}

	if len(config.Check.Extensions) == 0 {
		config.Check.Extensions = append([]string(nil), DefaultExtensions...)
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Parser.MaxDepth < 0 {
		return fmt.Errorf("%w: parser.max_depth must be non-negative, got %d", ErrConfigValidation, config.Parser.MaxDepth)
	}

	if config.Check.Jobs < 0 {
		return fmt.Errorf("%w: check.jobs must be non-negative, got %d", ErrConfigValidation, config.Check.Jobs)
	}

	for _, ext := range config.Check.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: check.extensions entry '%s' must start with a dot", ErrConfigValidation, ext)
		}
	}

	validFormats := map[string]bool{
		"text":    true,
		"yaml":    true,
		"msgpack": true,
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, yaml, msgpack", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

func expandConfigEnvVars(config *Config) {
	for i, root := range config.Check.Roots {
		config.Check.Roots[i] = expandEnvVars(root)
	}

	for i, ext := range config.Check.Extensions {
		config.Check.Extensions[i] = expandEnvVars(ext)
	}

	config.Output.Format = expandEnvVars(config.Output.Format)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
