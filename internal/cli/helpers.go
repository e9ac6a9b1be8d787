package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kbukum/errkit/config"
	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/schema"
	"github.com/kbukum/errkit/server"
)

const (
	serviceName = "errkit"
	envPrefix   = "ERRKIT"
)

// Config is the configuration of the errkit service.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Server               server.Config `yaml:"server" mapstructure:"server"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// loadConfig reads the service configuration from the --config file (or the
// default search paths) and ERRKIT_* environment variables.
func loadConfig() (*Config, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if flagConfig != "" {
		opts = append(opts, config.WithConfigFile(flagConfig))
	}

	var cfg Config
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCatalog returns the standard catalog merged with the configured kinds.
func loadCatalog() (*apperrors.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	kinds, err := cfg.Errors.Kinds()
	if err != nil {
		return nil, err
	}
	return apperrors.Standard().Merge(kinds)
}

// outputJSON marshals and prints indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printError prints an error to stderr with appropriate formatting.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// getExitCode maps errors to CLI exit codes.
func getExitCode(err error) int {
	var unknown *schema.UnknownKindError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &unknown):
		return 4
	default:
		return 1
	}
}
