// Package config loads the YAML configuration shared by the normalizer binaries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

// SymbolsConfig holds the quotation symbols, one character each.
// An empty value keeps the default.
type SymbolsConfig struct {
	Divider    string `yaml:"divider" json:"divider,omitempty"`
	Spacer     string `yaml:"spacer" json:"spacer,omitempty"`
	OuterOpen  string `yaml:"outer_open" json:"outer_open,omitempty"`
	OuterClose string `yaml:"outer_close" json:"outer_close,omitempty"`
	InnerOpen  string `yaml:"inner_open" json:"inner_open,omitempty"`
	InnerClose string `yaml:"inner_close" json:"inner_close,omitempty"`
}

// ApostropheConfig holds the apostrophe normalizer symbols.
type ApostropheConfig struct {
	Apostrophe string `yaml:"apostrophe"`
	Quote      string `yaml:"quote"`
}

// StreamConfig controls article stream processing.
type StreamConfig struct {
	Parallel  bool `yaml:"parallel"`
	Workers   int  `yaml:"workers"`
	QueueSize int  `yaml:"queue_size"`
}

// LogConfig controls logging.
type LogConfig struct {
	// File is the log file path; empty means stderr.
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	WarmUp         bool          `yaml:"warm_up"`
}

// Config is the root configuration document.
type Config struct {
	Symbols     SymbolsConfig    `yaml:"symbols"`
	Apostrophe  ApostropheConfig `yaml:"apostrophe"`
	Stages      []string         `yaml:"stages"`
	StripFormat bool             `yaml:"strip_format"`
	StopOnError bool             `yaml:"stop_on_error"`
	Stream      StreamConfig     `yaml:"stream"`
	Log         LogConfig        `yaml:"log"`
	Server      ServerConfig     `yaml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxRequestSize: 10 * 1024 * 1024,
			WarmUp:         true,
		},
	}
}

// Load reads the configuration file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can build working normalizers.
func (c Config) Validate() error {
	symbols, err := c.QuotationSymbols()
	if err != nil {
		return err
	}
	if err := symbols.Validate(); err != nil {
		return err
	}

	apostrophes, err := c.ApostropheSymbols()
	if err != nil {
		return err
	}
	if err := apostrophes.Validate(); err != nil {
		return err
	}

	if _, err := normalizer.NewNormalizerFactory().CreateStages(c.Stages); err != nil {
		return err
	}

	if c.Stream.Workers < 0 {
		return errors.New("stream.workers must not be negative")
	}
	if c.Stream.QueueSize < 0 {
		return errors.New("stream.queue_size must not be negative")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.MaxRequestSize <= 0 {
		return errors.New("server.max_request_size must be positive")
	}
	return nil
}

// QuotationSymbols returns the quotation symbols with defaults filled in.
func (c Config) QuotationSymbols() (domain.Symbols, error) {
	return c.Symbols.Apply(domain.DefaultSymbols())
}

// Apply returns base with every non-empty field of s substituted.
func (s SymbolsConfig) Apply(base domain.Symbols) (domain.Symbols, error) {
	fields := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"symbols.divider", s.Divider, &base.Divider},
		{"symbols.spacer", s.Spacer, &base.Spacer},
		{"symbols.outer_open", s.OuterOpen, &base.OuterOpen},
		{"symbols.outer_close", s.OuterClose, &base.OuterClose},
		{"symbols.inner_open", s.InnerOpen, &base.InnerOpen},
		{"symbols.inner_close", s.InnerClose, &base.InnerClose},
	}
	for _, f := range fields {
		if err := setRune(f.name, f.value, f.dst); err != nil {
			return domain.Symbols{}, err
		}
	}
	return base, nil
}

// Empty reports whether no symbol is overridden.
func (s SymbolsConfig) Empty() bool {
	return s == SymbolsConfig{}
}

// ApostropheSymbols returns the apostrophe symbols with defaults filled in.
func (c Config) ApostropheSymbols() (domain.ApostropheSymbols, error) {
	symbols := domain.DefaultApostropheSymbols()
	if err := setRune("apostrophe.apostrophe", c.Apostrophe.Apostrophe, &symbols.Apostrophe); err != nil {
		return domain.ApostropheSymbols{}, err
	}
	if err := setRune("apostrophe.quote", c.Apostrophe.Quote, &symbols.Quote); err != nil {
		return domain.ApostropheSymbols{}, err
	}
	return symbols, nil
}

// NormalizerFactory returns a factory configured with the file's symbols.
func (c Config) NormalizerFactory() (*normalizer.NormalizerFactory, error) {
	symbols, err := c.QuotationSymbols()
	if err != nil {
		return nil, err
	}
	apostrophes, err := c.ApostropheSymbols()
	if err != nil {
		return nil, err
	}
	return normalizer.NewNormalizerFactory().
		WithSymbols(symbols).
		WithApostropheSymbols(apostrophes).
		WithStripFormat(c.StripFormat), nil
}

func setRune(name, value string, dst *rune) error {
	if value == "" {
		return nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%s must be a single character, got %q", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return fmt.Errorf("%s is not valid UTF-8", name)
	}
	*dst = r
	return nil
}
