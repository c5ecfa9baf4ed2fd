package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFormat is the report format used when none is configured.
const DefaultFormat = "text"

// Config is the top-level configuration for depscope.
type Config struct {
	Reports   ReportsConfig             `yaml:"reports"`
	Renderers map[string]RendererConfig `yaml:"renderers"`
}

// ReportsConfig holds the defaults applied to every analysis run.
type ReportsConfig struct {
	Format    string `yaml:"format"`     // "text", "json", "dot"
	ShowSizes bool   `yaml:"show_sizes"` // resolve and display artifact sizes
	Output    string `yaml:"output"`     // destination path; inline or ${ENV_VAR}
}

// RendererConfig holds per-renderer settings.
type RendererConfig struct {
	Enabled bool   `yaml:"enabled"`
	RankDir string `yaml:"rankdir"` // DOT layout direction
	Indent  string `yaml:"indent"`  // JSON indentation string
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// rankDirValues are the layout directions Graphviz accepts.
var rankDirValues = map[string]bool{
	"TB": true, "LR": true, "BT": true, "RL": true,
}

// knownFormats are the report formats shipped with the CLI.
var knownFormats = map[string]bool{
	"text": true, "json": true, "dot": true,
}

// Load reads and parses a configuration file, expanding environment
// variables in the output path and applying defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Reports.Output = resolveOutput(cfg.Reports.Output)
	if cfg.Reports.Format == "" {
		cfg.Reports.Format = DefaultFormat
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Reports: ReportsConfig{Format: DefaultFormat},
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depscope.yaml",
		".depscope.yml",
		"depscope.yaml",
		"depscope.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveOutput expands environment variable references (${VAR}) in the
// configured output path.
func resolveOutput(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for configuration values nothing downstream can catch.
// An empty format is allowed here; Load fills in the default first.
func validate(cfg *Config) error {
	if cfg.Reports.Format != "" && !knownFormats[cfg.Reports.Format] {
		return fmt.Errorf(
			"reports.format must be one of text, json, dot (got %q)",
			cfg.Reports.Format,
		)
	}

	for name, renderer := range cfg.Renderers {
		if name == "" {
			return errors.New("renderers keys must be non-empty format names")
		}
		if renderer.RankDir != "" && !rankDirValues[renderer.RankDir] {
			return fmt.Errorf(
				"renderers[%q].rankdir must be one of TB, LR, BT, RL",
				name,
			)
		}
	}

	return nil
}
