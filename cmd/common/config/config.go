// Package config provides configuration loading for dit.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/render"
	"github.com/gigurra/dit/cmd/common/sink"
)

// EnvPath overrides the config file location.
const EnvPath = "DIT_CONFIG"

// Config represents the dit configuration file structure.
type Config struct {
	Playback *PlaybackConfig `json:"playback,omitempty"`
	// LogFile receives a copy of all log output when set.
	LogFile string `json:"log_file,omitempty"`
}

// PlaybackConfig holds the defaults for `dit play`.
type PlaybackConfig struct {
	Unit          string         `json:"unit,omitempty"` // Go duration, e.g. "250ms"
	WPM           int            `json:"wpm,omitempty"`  // overrides Unit when set
	SampleRate    int            `json:"sample_rate,omitempty"`
	Frequency     float64        `json:"frequency,omitempty"`
	Volume        *float64       `json:"volume,omitempty"`
	TrimThreshold float64        `json:"trim_threshold,omitempty"`
	Lifetime      string         `json:"lifetime,omitempty"`
	Sink          string         `json:"sink,omitempty"`
	Strict        bool           `json:"strict,omitempty"`
	Timing        *render.Timing `json:"timing,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	d := render.DefaultConfig()
	timing := d.Timing
	volume := d.Volume
	return &Config{
		Playback: &PlaybackConfig{
			Unit:          d.Unit.String(),
			SampleRate:    d.SampleRate,
			Frequency:     d.Frequency,
			Volume:        &volume,
			TrimThreshold: d.TrimThreshold,
			Lifetime:      string(d.Lifetime),
			Sink:          string(sink.KindSpeaker),
			Timing:        &timing,
		},
	}
}

// ConfigPath returns the config file path, $DIT_CONFIG or
// <config dir>/dit/config.json.
func ConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(common.ConfigDir(), "config.json")
}

// Load loads the config from ConfigPath.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the config at path, filling in defaults for missing fields.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Decode over the defaults so that partially written sections, such as a
	// timing block naming only one symbol, keep the default for the rest.
	config := Config{Playback: DefaultConfig().Playback}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	defaults := DefaultConfig().Playback
	if config.Playback == nil {
		config.Playback = defaults
		return &config, nil
	}

	p := config.Playback
	if p.Unit == "" {
		p.Unit = defaults.Unit
	}
	if p.SampleRate == 0 {
		p.SampleRate = defaults.SampleRate
	}
	if p.Frequency == 0 {
		p.Frequency = defaults.Frequency
	}
	if p.Volume == nil {
		p.Volume = defaults.Volume
	}
	if p.TrimThreshold == 0 {
		p.TrimThreshold = defaults.TrimThreshold
	}
	if p.Lifetime == "" {
		p.Lifetime = defaults.Lifetime
	}
	if p.Sink == "" {
		p.Sink = defaults.Sink
	}
	if p.Timing == nil {
		p.Timing = defaults.Timing
	}

	return &config, nil
}

// Save saves the config to ConfigPath.
func Save(config *Config) error {
	return SaveTo(ConfigPath(), config)
}

func SaveTo(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderConfig converts the playback section into a validated render config.
func (p *PlaybackConfig) RenderConfig() (render.Config, error) {
	cfg := render.DefaultConfig()
	if p == nil {
		return cfg, nil
	}

	if p.WPM > 0 {
		cfg.Unit = render.UnitFromWPM(p.WPM)
	} else if p.Unit != "" {
		unit, err := time.ParseDuration(p.Unit)
		if err != nil {
			return cfg, fmt.Errorf("%w: bad unit %q: %v", render.ErrInvalidConfig, p.Unit, err)
		}
		cfg.Unit = unit
	}
	if p.SampleRate != 0 {
		cfg.SampleRate = p.SampleRate
	}
	if p.Frequency != 0 {
		cfg.Frequency = p.Frequency
	}
	if p.Volume != nil {
		cfg.Volume = *p.Volume
	}
	if p.TrimThreshold != 0 {
		cfg.TrimThreshold = p.TrimThreshold
	}
	if p.Lifetime != "" {
		cfg.Lifetime = render.Lifetime(p.Lifetime)
	}
	if p.Timing != nil {
		cfg.Timing = *p.Timing
	}
	cfg.Strict = p.Strict

	return cfg, cfg.Validate()
}
