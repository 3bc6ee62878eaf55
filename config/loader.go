package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit config path is given.
const DefaultPath = "config.yml"

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Input:  InputConfig{Encoding: "utf-8"},
		Output: OutputConfig{Color: "auto"},
		Log:    LogConfig{Level: "info"},
		Transducer: TransducerConfig{
			DropPrefixes:      []string{"往復：", "※大人"},
			HeadlineSeparator: " → ",
			PlanKeyword:       "Plan",
			PlanEndName:       "End",
			DepartureMarker:   "発",
			ArrivalMarker:     "着",
		},
	}
}

// LoadAppConfig loads and validates the configuration at path.
// With an empty path config.yml is tried and its absence is not an error.
func LoadAppConfig(fsys afero.Fs, path string) (AppConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	def := Default()
	if c.Input.Encoding == "" {
		c.Input.Encoding = def.Input.Encoding
	}
	if c.Output.Color == "" {
		c.Output.Color = def.Output.Color
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	t := &c.Transducer
	if t.DropPrefixes == nil {
		t.DropPrefixes = def.Transducer.DropPrefixes
	}
	if t.HeadlineSeparator == "" {
		t.HeadlineSeparator = def.Transducer.HeadlineSeparator
	}
	if t.PlanKeyword == "" {
		t.PlanKeyword = def.Transducer.PlanKeyword
	}
	if t.PlanEndName == "" {
		t.PlanEndName = def.Transducer.PlanEndName
	}
	if t.DepartureMarker == "" {
		t.DepartureMarker = def.Transducer.DepartureMarker
	}
	if t.ArrivalMarker == "" {
		t.ArrivalMarker = def.Transducer.ArrivalMarker
	}
}
