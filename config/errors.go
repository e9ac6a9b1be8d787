package config

import (
	"fmt"

	apperrors "github.com/kbukum/errkit/errors"
)

// CustomError declares an application error kind from configuration.
type CustomError struct {
	Name        string `yaml:"name" mapstructure:"name"`
	StatusCode  int    `yaml:"status_code" mapstructure:"status_code"`
	Code        string `yaml:"code" mapstructure:"code"`
	Message     string `yaml:"message" mapstructure:"message"`
	Description string `yaml:"description" mapstructure:"description"`
}

// ErrorsConfig lists the error kinds a service adds to the standard catalog.
type ErrorsConfig struct {
	Custom []CustomError `yaml:"custom" mapstructure:"custom"`
}

// Validate checks every declaration without building the kinds.
func (c *ErrorsConfig) Validate() error {
	_, err := c.Kinds()
	return err
}

// Kinds declares the configured kinds keyed by name. Names and codes must be
// unique within the list.
func (c *ErrorsConfig) Kinds() (map[string]*apperrors.Kind, error) {
	kinds := make(map[string]*apperrors.Kind, len(c.Custom))
	codes := make(map[string]string, len(c.Custom))

	for i, ce := range c.Custom {
		if ce.Name == "" {
			return nil, fmt.Errorf("errors.custom[%d].name is required", i)
		}
		if _, dup := kinds[ce.Name]; dup {
			return nil, fmt.Errorf("errors.custom[%d]: duplicate name %q", i, ce.Name)
		}
		if other, dup := codes[ce.Code]; dup {
			return nil, fmt.Errorf("errors.custom[%d]: code %q already used by %s", i, ce.Code, other)
		}

		var opts []apperrors.KindOption
		if ce.Description != "" {
			opts = append(opts, apperrors.WithDescription(ce.Description))
		}
		k, err := apperrors.TryDeclare(ce.StatusCode, ce.Code, ce.Message, opts...)
		if err != nil {
			return nil, fmt.Errorf("errors.custom[%d] (%s): %w", i, ce.Name, err)
		}
		kinds[ce.Name] = k
		codes[ce.Code] = ce.Name
	}
	return kinds, nil
}
