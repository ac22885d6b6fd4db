package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alvictal/imgcap-go/constants"
	"github.com/alvictal/imgcap-go/imgcap/definitions"
	"gopkg.in/yaml.v3"
)

// ToolsConfig overrides the external tool binaries.
type ToolsConfig struct {
	Grabber   string `yaml:"grabber"`   // frame-grabber binary (default: v4l2-ctl)
	Converter string `yaml:"converter"` // raster converter binary (default: convert)
	Viewer    string `yaml:"viewer"`    // display binary (default: weston-image)
}

// ControlConfig names the ancillary device control applied before
// streaming. An explicit empty name disables the step.
type ControlConfig struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// PresetConfig is an additional named capture size.
type PresetConfig struct {
	WidthPx  int `yaml:"width_px"`
	HeightPx int `yaml:"height_px"`
}

// Config aggregates the optional file-based configuration.
type Config struct {
	Tools           ToolsConfig             `yaml:"tools"`
	AuxControl      *ControlConfig          `yaml:"aux_control,omitempty"`
	ProbeTimeoutSec int                     `yaml:"probe_timeout_sec"`
	Presets         map[string]PresetConfig `yaml:"presets,omitempty"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			Grabber:   constants.GrabberTool,
			Converter: constants.ConverterTool,
			Viewer:    constants.ViewerTool,
		},
		AuxControl: &ControlConfig{
			Name:  constants.AuxControlName,
			Value: constants.AuxControlValue,
		},
		ProbeTimeoutSec: int(constants.ProbeTimeout / time.Second),
	}
}

// Load reads a YAML file and returns the configuration with defaults
// applied to any omitted field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if cfg.Tools.Grabber == "" {
		cfg.Tools.Grabber = constants.GrabberTool
	}
	if cfg.Tools.Converter == "" {
		cfg.Tools.Converter = constants.ConverterTool
	}
	if cfg.Tools.Viewer == "" {
		cfg.Tools.Viewer = constants.ViewerTool
	}
	if cfg.AuxControl == nil {
		cfg.AuxControl = &ControlConfig{
			Name:  constants.AuxControlName,
			Value: constants.AuxControlValue,
		}
	}
	if cfg.AuxControl.Name != "" && cfg.AuxControl.Value == "" {
		return nil, fmt.Errorf("aux_control.value is required when aux_control.name is set")
	}
	if cfg.ProbeTimeoutSec < 0 {
		return nil, fmt.Errorf("probe_timeout_sec must be >= 0, got %d", cfg.ProbeTimeoutSec)
	}
	if cfg.ProbeTimeoutSec == 0 {
		cfg.ProbeTimeoutSec = int(constants.ProbeTimeout / time.Second)
	}

	for name, preset := range cfg.Presets {
		if preset.WidthPx <= 0 || preset.HeightPx <= 0 {
			return nil, fmt.Errorf("preset %q: width_px and height_px must be > 0", name)
		}
	}

	return &cfg, nil
}

// Sizes merges the built-in presets with any configured extras.
// Built-ins cannot be removed; a same-named extra overrides.
func (c *Config) Sizes() map[string]definitions.Size {
	sizes := make(map[string]definitions.Size, len(definitions.BuiltinSizes)+len(c.Presets))
	for name, size := range definitions.BuiltinSizes {
		sizes[name] = size
	}
	for name, preset := range c.Presets {
		sizes[strings.ToLower(name)] = definitions.Size{Width: preset.WidthPx, Height: preset.HeightPx}
	}
	return sizes
}

// ProbeTimeout returns the probe deadline as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSec) * time.Second
}
