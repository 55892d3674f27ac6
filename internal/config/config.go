package config

import (
	"github.com/anthonyraymond/urlescape/internal/logs"
	"github.com/anthonyraymond/urlescape/internal/validationutils"
	"github.com/anthonyraymond/urlescape/pkg/urlescape"
	"github.com/pkg/errors"
)

type AppConfig struct {
	Log    *logs.LogConfig `yaml:"log" validate:"required"`
	Escape EscapeConfig    `yaml:"escape"`
}

func (ac AppConfig) Default() *AppConfig {
	return &AppConfig{
		Log:    logs.LogConfig{}.Default(),
		Escape: EscapeConfig{}.Default(),
	}
}

type EscapeConfig struct {
	Mode urlescape.Flags `yaml:"mode"`
}

func (ec EscapeConfig) Default() EscapeConfig {
	return EscapeConfig{
		Mode: urlescape.Strict,
	}
}

// Load returns the default config, overridden by the file at path when path is not empty.
func Load(path string) (*AppConfig, error) {
	conf := AppConfig{}.Default()
	if path != "" {
		if err := ParseIntoDefault(path, conf); err != nil {
			return nil, err
		}
	}

	if err := validationutils.NewValidator().Struct(conf); err != nil {
		return nil, errors.Wrapf(err, "invalid config file '%s'", path)
	}
	return conf, nil
}
