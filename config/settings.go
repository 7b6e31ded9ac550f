package config

import (
	"fmt"

	"github.com/mcortesi/dinjector/logger"
	"github.com/mcortesi/dinjector/validation"
)

// Settings holds the configuration needed to bootstrap an application context.
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`

	// Mappings is the path of the mapping file. Relative paths are resolved
	// against the directory of the settings file.
	Mappings string   `yaml:"mappings" mapstructure:"mappings" validate:"required"`
	EnvFiles []string `yaml:"env_files" mapstructure:"env_files"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Logging.Level == "" && s.Environment == "development" {
		s.Logging.Level = "debug"
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if err := validation.ValidateStruct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
