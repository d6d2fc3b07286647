package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// Config is the lexis configuration file.
type Config struct {
	Tokenizer   string   `yaml:"tokenizer" toml:"tokenizer"`
	Width       int      `yaml:"width" toml:"width"`
	MaxDistance int      `yaml:"max_distance" toml:"max_distance"`
	LogLevel    string   `yaml:"log_level" toml:"log_level"`
	Stoplist    Stoplist `yaml:"stoplist" toml:"stoplist"`
	Store       Store    `yaml:"store" toml:"store"`
	Server      Server   `yaml:"server" toml:"server"`
}

// Stoplist selects the stopword set. Path or Terms replace the built-in
// English list; Extra and Remove adjust whichever base is chosen.
type Stoplist struct {
	Path   string   `yaml:"path" toml:"path"`
	Terms  []string `yaml:"terms" toml:"terms"`
	Extra  []string `yaml:"extra" toml:"extra"`
	Remove []string `yaml:"remove" toml:"remove"`
}

// Store configures run persistence. An empty path disables it.
type Store struct {
	Path string `yaml:"path" toml:"path"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tokenizer:   tokenize.KindSimple,
		Width:       10,
		MaxDistance: 5,
		LogLevel:    "info",
		Server:      Server{Addr: ":8080"},
	}
}

// Load reads a YAML or TOML configuration file, chosen by extension, on
// top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format: %w", path, internalerr.ErrInvalidConfig)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Errors wrap internalerr.ErrInvalidConfig.
func (c Config) Validate() error {
	switch strings.ToLower(c.Tokenizer) {
	case "", tokenize.KindSimple, tokenize.KindProse:
	default:
		return fmt.Errorf("tokenizer %q: %w", c.Tokenizer, internalerr.ErrInvalidConfig)
	}
	if c.Width < 0 {
		return fmt.Errorf("width %d must not be negative: %w", c.Width, internalerr.ErrInvalidConfig)
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("max_distance %d must not be negative: %w", c.MaxDistance, internalerr.ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, internalerr.ErrInvalidConfig)
	}
	return nil
}

// StoplistFile is a standalone stopword file.
type StoplistFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*StoplistFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl StoplistFile
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
