package config

import (
	"fmt"

	"github.com/kbukum/errkit/logger"
)

// ServiceConfig contains the configuration every errkit service shares.
// Services extend it by embedding:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Server server.Config `yaml:"server" mapstructure:"server"`
//	}
type ServiceConfig struct {
	Base    BaseConfig    `yaml:"base" mapstructure:"base"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Errors  ErrorsConfig  `yaml:"errors" mapstructure:"errors"`
}

// ApplyDefaults applies default values to every section.
func (c *ServiceConfig) ApplyDefaults() {
	c.Base.ApplyDefaults()
	if c.Base.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates every section.
func (c *ServiceConfig) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Errors.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
