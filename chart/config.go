package chart

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/watchcharts/chartkit/internal/options"
	"github.com/watchcharts/chartkit/trend"
)

// DefaultThreshold is the maximum number of points displayed per dataset by default.
const DefaultThreshold = 1000

// Config controls the Downsampler.
type Config struct {
	// Enabled turns downsampling on. Disabled downsamplers leave every dataset untouched.
	Enabled bool `yaml:"enabled"`
	// Threshold is the maximum number of points to display per dataset.
	Threshold int `yaml:"threshold"`
	// Auto downsamples on every BeforeUpdate.
	Auto bool `yaml:"auto"`
	// OnInit downsamples during Init.
	OnInit bool `yaml:"onInit"`
	// RestoreOriginalData puts the original series back on display after each update.
	RestoreOriginalData bool `yaml:"restoreOriginalData"`
	// PreferOriginalData is accepted for compatibility with existing chart configurations.
	// A stashed original is always preferred over the displayed series.
	PreferOriginalData bool `yaml:"preferOriginalData"`
	// TargetDatasets restricts downsampling to these dataset ids. Empty means all.
	TargetDatasets []string `yaml:"targetDatasets"`
}

// DefaultConfig returns the default downsampler configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:             false,
		Threshold:           DefaultThreshold,
		Auto:                true,
		OnInit:              true,
		RestoreOriginalData: true,
		PreferOriginalData:  false,
		TargetDatasets:      []string{},
	}
}

// Targets reports whether dataset id is subject to downsampling.
func (c Config) Targets(id string) bool {
	if len(c.TargetDatasets) == 0 {
		return true
	}
	for _, target := range c.TargetDatasets {
		if target == id {
			return true
		}
	}

	return false
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, errors.Wrap(err, "apply downsample options")
	}

	return cfg, nil
}

// WithEnabled turns downsampling on or off.
func WithEnabled(enabled bool) Option {
	return options.NoError(func(c *Config) { c.Enabled = enabled })
}

// WithThreshold sets the maximum number of displayed points per dataset.
// Any integer is accepted; values <= 0 disable the reduction.
func WithThreshold(threshold int) Option {
	return options.NoError(func(c *Config) { c.Threshold = threshold })
}

// WithAuto sets whether BeforeUpdate downsamples.
func WithAuto(auto bool) Option {
	return options.NoError(func(c *Config) { c.Auto = auto })
}

// WithOnInit sets whether Init downsamples.
func WithOnInit(onInit bool) Option {
	return options.NoError(func(c *Config) { c.OnInit = onInit })
}

// WithRestoreOriginalData sets whether AfterUpdate restores the original series.
func WithRestoreOriginalData(restore bool) Option {
	return options.NoError(func(c *Config) { c.RestoreOriginalData = restore })
}

// WithPreferOriginalData sets the compatibility flag of the same name.
func WithPreferOriginalData(prefer bool) Option {
	return options.NoError(func(c *Config) { c.PreferOriginalData = prefer })
}

// WithTargetDatasets restricts downsampling to the given dataset ids.
func WithTargetDatasets(ids ...string) Option {
	return options.New(func(c *Config) error {
		for _, id := range ids {
			if id == "" {
				return errors.New("target dataset id must not be empty")
			}
		}
		c.TargetDatasets = append([]string{}, ids...)

		return nil
	})
}

// TrendConfig controls trend line projection.
type TrendConfig struct {
	Enabled bool `yaml:"enabled"`
	// Extension widens the projected x range by this fraction of the data range per side.
	Extension float64 `yaml:"extension"`
	// Steps is the number of sampling intervals.
	Steps int `yaml:"steps"`
}

// DefaultTrendConfig returns the default trend line configuration.
func DefaultTrendConfig() TrendConfig {
	return TrendConfig{
		Enabled:   false,
		Extension: trend.DefaultExtension,
		Steps:     trend.DefaultSteps,
	}
}

// Settings is the chart configuration file layout.
type Settings struct {
	Downsample Config      `yaml:"downsample"`
	Trendline  TrendConfig `yaml:"trendline"`
}

// DefaultSettings returns settings with every section at its defaults.
func DefaultSettings() Settings {
	return Settings{
		Downsample: DefaultConfig(),
		Trendline:  DefaultTrendConfig(),
	}
}

// ParseSettings decodes YAML on top of DefaultSettings, so omitted keys keep their
// defaults.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "parse chart settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// LoadSettings reads and parses a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read chart settings %s", path)
	}

	return ParseSettings(data)
}

// Validate rejects settings that can only come from a configuration mistake.
// A negative threshold is legal for the downsample algorithm but never intended in a file.
func (s Settings) Validate() error {
	if s.Downsample.Threshold < 0 {
		return errors.Errorf("downsample.threshold must not be negative, got %d", s.Downsample.Threshold)
	}
	if s.Trendline.Extension < 0 {
		return errors.Errorf("trendline.extension must not be negative, got %g", s.Trendline.Extension)
	}
	if s.Trendline.Steps < 0 {
		return errors.Errorf("trendline.steps must not be negative, got %d", s.Trendline.Steps)
	}
	for _, id := range s.Downsample.TargetDatasets {
		if id == "" {
			return errors.New("downsample.targetDatasets must not contain empty ids")
		}
	}

	return nil
}
