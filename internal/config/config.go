// Package config loads quicktest settings from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/utils"
	"gopkg.in/yaml.v3"
)

// SearchFiles are checked in order when no explicit config path is given
var SearchFiles = []string{"quicktest.yaml", "quicktest.yml", ".quicktest.toml"}

type Config struct {
	LogLevel         string    `yaml:"log_level" toml:"log_level"`
	Templates        Templates `yaml:"templates" toml:"templates"`
	ProjectMarkers   []string  `yaml:"project_markers" toml:"project_markers"`
	SolutionMarkers  []string  `yaml:"solution_markers" toml:"solution_markers"`
	SourceExtensions []string  `yaml:"source_extensions" toml:"source_extensions"`
	Batch            Batch     `yaml:"batch" toml:"batch"`
	Server           Server    `yaml:"server" toml:"server"`

	// Path is the file the config was read from, empty for defaults
	Path string `yaml:"-" toml:"-"`
}

type Templates struct {
	Dir string `yaml:"dir" toml:"dir"`
}

type Batch struct {
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

type Server struct {
	Addr string `yaml:"addr" toml:"addr"`
}

func Default() *Config {
	return &Config{
		LogLevel:         "info",
		ProjectMarkers:   []string{"*.csproj"},
		SolutionMarkers:  []string{"*.sln"},
		SourceExtensions: []string{".cs"},
		Batch:            Batch{Concurrency: 4},
		Server:           Server{Addr: "127.0.0.1:8085"},
	}
}

// Find returns the first search file present in dir
func Find(dir string) (string, bool) {
	for _, name := range SearchFiles {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load reads path, or the first search file in the working directory when
// path is empty. Defaults are returned when no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		found, ok := Find(wd)
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile parses a YAML or TOML file (chosen by extension) over the
// defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qterrors.WrapConfigurationError(path, "read", err)
	}

	cfg := Default()
	// Lists from the file replace the defaults rather than merging into them.
	cfg.ProjectMarkers, cfg.SolutionMarkers, cfg.SourceExtensions = nil, nil, nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, qterrors.WrapConfigurationError(path, "parse", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, qterrors.WrapConfigurationError(path, "parse", err)
		}
	default:
		return nil, qterrors.ConfigurationError(path, "unsupported config format, use .yaml, .yml or .toml")
	}

	cfg.applyListDefaults()
	cfg.Path = path
	if cfg.Templates.Dir != "" && !filepath.IsAbs(cfg.Templates.Dir) {
		cfg.Templates.Dir = filepath.Join(filepath.Dir(path), cfg.Templates.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyListDefaults() {
	defaults := Default()
	if len(c.ProjectMarkers) == 0 {
		c.ProjectMarkers = defaults.ProjectMarkers
	}
	if len(c.SolutionMarkers) == 0 {
		c.SolutionMarkers = defaults.SolutionMarkers
	}
	if len(c.SourceExtensions) == 0 {
		c.SourceExtensions = defaults.SourceExtensions
	}
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs *qterrors.MultipleErrors
	source := c.Path
	if source == "" {
		source = "defaults"
	}
	check := func(err error) {
		if err != nil {
			qterrors.AddToMultiple(&errs, qterrors.ConfigurationError(source, err.Error()))
		}
	}

	check(logLevel("log_level")(c.LogLevel))
	check(markerGlobs("project_markers").Validate(c.ProjectMarkers))
	check(markerGlobs("solution_markers").Validate(c.SolutionMarkers))

	check(utils.NewValidatorChain(
		utils.SliceNotEmpty[string]("source_extensions"),
		utils.ValidateEach("source_extensions", utils.HasPrefix("source_extensions", ".")),
	).Validate(c.SourceExtensions))

	check(utils.Positive("batch.concurrency")(c.Batch.Concurrency))
	check(utils.NotEmpty("server.addr")(c.Server.Addr))

	return errs.ErrorOrNil()
}

func logLevel(field string) utils.Validator[string] {
	return func(value string) error {
		if _, ok := utils.ParseDiagnosticLevel(value); !ok {
			return utils.ValidationError{
				Field:   field,
				Value:   value,
				Message: "must be one of silent, error, warn, info, verbose, debug",
			}
		}
		return nil
	}
}

func markerGlobs(field string) *utils.ValidatorChain[[]string] {
	return utils.NewValidatorChain(
		utils.SliceNotEmpty[string](field),
		utils.ValidateEach(field, utils.IsValidGlob(field)),
	)
}

// HasSourceExtension reports whether path ends with a configured extension
func (c *Config) HasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range c.SourceExtensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

// DiagnosticLevel maps LogLevel onto the diagnostics levels
func (c *Config) DiagnosticLevel() utils.DiagnosticLevel {
	level, _ := utils.ParseDiagnosticLevel(c.LogLevel)
	return level
}
