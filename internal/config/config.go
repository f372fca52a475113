package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/stlquote/pkg/mesh"
	"github.com/philipparndt/stlquote/pkg/pricing"
	"gopkg.in/yaml.v3"
)

// Config holds every business constant used for parsing and pricing
type Config struct {
	Parser   ParserConfig   `yaml:"parser" toml:"parser"`
	Material MaterialConfig `yaml:"material" toml:"material"`
	Pricing  PricingConfig  `yaml:"pricing" toml:"pricing"`
}

// ParserConfig bounds what the mesh parsers accept
type ParserConfig struct {
	MaxTriangles        uint32 `yaml:"max_triangles" toml:"max_triangles"`
	BinarySizeTolerance int    `yaml:"binary_size_tolerance" toml:"binary_size_tolerance"`
}

// MaterialConfig describes the filament used for weight estimation
type MaterialConfig struct {
	Name          string  `yaml:"name" toml:"name"`
	Density       float64 `yaml:"density" toml:"density"`               // g/cm³
	ShellFraction float64 `yaml:"shell_fraction" toml:"shell_fraction"` // 0..1
}

// PricingConfig holds the base fee and the per-gram rates, keyed by channel
// name and then tier name (e.g. rates["walk-in"]["student"]).
type PricingConfig struct {
	BaseFee float64                       `yaml:"base_fee" toml:"base_fee"`
	Rates   map[string]map[string]float64 `yaml:"rates" toml:"rates"`
}

// Default returns the built-in configuration
func Default() Config {
	rates := make(map[string]map[string]float64)
	for channel, tiers := range pricing.DefaultRates() {
		rates[channel.String()] = make(map[string]float64)
		for tier, rate := range tiers {
			rates[channel.String()][tier.String()] = rate
		}
	}

	return Config{
		Parser: ParserConfig{
			MaxTriangles:        mesh.DefaultMaxTriangles,
			BinarySizeTolerance: mesh.DefaultBinarySizeTolerance,
		},
		Material: MaterialConfig{
			Name:          pricing.PLA.Name,
			Density:       pricing.PLA.Density,
			ShellFraction: pricing.PLA.ShellFraction,
		},
		Pricing: PricingConfig{
			BaseFee: pricing.DefaultBaseFee,
			Rates:   rates,
		},
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults. Keys missing from the file keep their default values; rate
// entries are merged per channel and tier.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	defaultRates := cfg.Pricing.Rates
	cfg.Pricing.Rates = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: parse %s: unknown key %s", path, undecoded[0])
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported file type %q (expected .yaml, .yml or .toml)", ext)
	}

	cfg.Pricing.Rates = mergeRates(defaultRates, cfg.Pricing.Rates)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func mergeRates(base, override map[string]map[string]float64) map[string]map[string]float64 {
	merged := make(map[string]map[string]float64, len(base))
	for channel, tiers := range base {
		merged[channel] = make(map[string]float64, len(tiers))
		for tier, rate := range tiers {
			merged[channel][tier] = rate
		}
	}
	for channel, tiers := range override {
		channel = canonicalName(channel, func(s string) (fmt.Stringer, error) { return pricing.ParseChannel(s) })
		if merged[channel] == nil {
			merged[channel] = make(map[string]float64, len(tiers))
		}
		for tier, rate := range tiers {
			tier = canonicalName(tier, func(s string) (fmt.Stringer, error) { return pricing.ParseTier(s) })
			merged[channel][tier] = rate
		}
	}
	return merged
}

// canonicalName maps aliases such as "walkin" onto the canonical key so that
// overrides replace defaults instead of competing with them. Unknown names
// are kept for Validate to report.
func canonicalName(name string, parse func(string) (fmt.Stringer, error)) string {
	v, err := parse(name)
	if err != nil {
		return name
	}
	return v.String()
}

// Validate checks that the configuration can build a parser and a pricing
// engine
func (c Config) Validate() error {
	if c.Parser.MaxTriangles == 0 {
		return fmt.Errorf("parser.max_triangles must be positive")
	}
	if c.Parser.BinarySizeTolerance < 0 {
		return fmt.Errorf("parser.binary_size_tolerance must not be negative")
	}
	if c.Material.Density <= 0 {
		return fmt.Errorf("material.density must be positive")
	}
	if c.Material.ShellFraction < 0 || c.Material.ShellFraction > 1 {
		return fmt.Errorf("material.shell_fraction must be between 0 and 1")
	}
	if c.Pricing.BaseFee < 0 {
		return fmt.Errorf("pricing.base_fee must not be negative")
	}
	if _, err := c.RateTable(); err != nil {
		return err
	}
	return nil
}

// RateTable converts the configured rates into a pricing.RateTable
func (c Config) RateTable() (pricing.RateTable, error) {
	table := make(pricing.RateTable)
	for channelName, tiers := range c.Pricing.Rates {
		channel, err := pricing.ParseChannel(channelName)
		if err != nil {
			return nil, fmt.Errorf("pricing.rates: %w", err)
		}
		if table[channel] == nil {
			table[channel] = make(map[pricing.Tier]float64)
		}
		for tierName, rate := range tiers {
			tier, err := pricing.ParseTier(tierName)
			if err != nil {
				return nil, fmt.Errorf("pricing.rates.%s: %w", channelName, err)
			}
			if rate < 0 {
				return nil, fmt.Errorf("pricing.rates.%s.%s must not be negative", channelName, tierName)
			}
			table[channel][tier] = rate
		}
	}
	return table, nil
}

// MeshParser builds a mesh parser with the configured limits
func (c Config) MeshParser() *mesh.Parser {
	return &mesh.Parser{
		MaxTriangles:        c.Parser.MaxTriangles,
		BinarySizeTolerance: c.Parser.BinarySizeTolerance,
	}
}

// Estimator builds a weight estimator for the configured material
func (c Config) Estimator() *pricing.Estimator {
	return pricing.NewEstimator(pricing.Material{
		Name:          c.Material.Name,
		Density:       c.Material.Density,
		ShellFraction: c.Material.ShellFraction,
	})
}

// Engine builds a pricing engine with the configured fee and rates
func (c Config) Engine() (*pricing.Engine, error) {
	rates, err := c.RateTable()
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(c.Pricing.BaseFee, rates), nil
}

// Calculator builds the estimator and engine together
func (c Config) Calculator() (*pricing.Calculator, error) {
	engine, err := c.Engine()
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculator(c.Estimator(), engine), nil
}
