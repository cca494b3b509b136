// Package config handles loading and saving user configuration for wego.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/render"
	"github.com/f3rmion/wego/internal/termtext"
	"github.com/f3rmion/wego/internal/wwo"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Limits accepted by Validate.
const (
	MinCellWidth = 16
	MinDays      = 1
	MaxDays      = 7
)

// Config holds all user configuration for wego.
type Config struct {
	Location   string        `yaml:"location" mapstructure:"location"`       // Queried location name
	APIKey     string        `yaml:"api_key" mapstructure:"api_key"`         // World Weather Online key
	Days       int           `yaml:"days" mapstructure:"days"`               // Number of day tables
	CellWidth  int           `yaml:"cell_width" mapstructure:"cell_width"`   // Columns per table cell
	Lang       string        `yaml:"lang" mapstructure:"lang"`               // Alternate language code, empty for English
	Romanize   bool          `yaml:"romanize" mapstructure:"romanize"`       // Show Chinese descriptions as pinyin
	WideGlyphs string        `yaml:"wide_glyphs" mapstructure:"wide_glyphs"` // cjk, unicode or none
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`       // API endpoint
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`         // HTTP timeout
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Location:   "Guangzhou",
		Days:       render.DefaultDays,
		CellWidth:  render.DefaultCellWidth,
		WideGlyphs: string(termtext.GlyphsCJK),
		BaseURL:    wwo.DefaultBaseURL,
		Timeout:    30 * time.Second,
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, errors.New("location must not be empty"))
	}
	if c.Days < MinDays || c.Days > MaxDays {
		errs = append(errs, fmt.Errorf("days must be between %d and %d, got %d", MinDays, MaxDays, c.Days))
	}
	if c.CellWidth < MinCellWidth {
		errs = append(errs, fmt.Errorf("cell_width must be at least %d, got %d", MinCellWidth, c.CellWidth))
	}
	if _, err := termtext.ParseGlyphPolicy(c.WideGlyphs); err != nil {
		errs = append(errs, err)
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Language returns the description language selected by Lang.
func (c Config) Language() forecast.Language {
	if c.Lang != "" {
		return forecast.LanguageAlternate
	}
	return forecast.LanguageDefault
}

// RenderOptions validates c and converts it to rendering options.
func (c Config) RenderOptions() (render.Options, error) {
	if err := c.Validate(); err != nil {
		return render.Options{}, err
	}
	policy, _ := termtext.ParseGlyphPolicy(c.WideGlyphs)

	return render.Options{
		CellWidth: c.CellWidth,
		Days:      c.Days,
		Language:  c.Language(),
		Romanize:  c.Romanize,
		Measurer:  termtext.NewMeasurer(policy),
	}, nil
}

// Query returns the fetch parameters for c.
func (c Config) Query() wwo.Query {
	return wwo.Query{Location: c.Location, Days: c.Days, Lang: c.Lang}
}

// Load reads configuration from a YAML file. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

const fileHeader = `# wego configuration
#
# lang:        alternate description language (e.g. zh), empty for English
# wide_glyphs: cjk, unicode or none
# Every key can be overridden with a WEGO_<KEY> environment variable.

`

// Save writes configuration to a YAML file.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	out = append([]byte(fileHeader), out...)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wego"), nil
}
