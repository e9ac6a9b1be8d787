package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/errkit/server/middleware"
)

const defaultMaxBodyBytes = 10 * 1024 * 1024

// Config holds HTTP server configuration.
type Config struct {
	Host            string                `yaml:"host" mapstructure:"host"`
	Port            int                   `yaml:"port" mapstructure:"port"`
	ReadTimeout     int                   `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout    int                   `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	IdleTimeout     int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`   // seconds
	MaxBodySize     string                `yaml:"max_body_size" mapstructure:"max_body_size"` // e.g. "10MB"
	CORS            middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
	DocsPath        string                `yaml:"docs_path" mapstructure:"docs_path"`
	CloseConnection bool                  `yaml:"close_connection" mapstructure:"close_connection"`
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "10MB"
	}
	if c.DocsPath == "" {
		c.DocsPath = "/openapi.json"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must be non-negative (got: %d)", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout must be non-negative (got: %d)", c.WriteTimeout)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must be non-negative (got: %d)", c.IdleTimeout)
	}
	if c.MaxBodySize != "" {
		if _, err := ParseSize(c.MaxBodySize); err != nil {
			return fmt.Errorf("server.max_body_size: %w", err)
		}
	}
	if c.DocsPath != "" && !strings.HasPrefix(c.DocsPath, "/") {
		return fmt.Errorf("server.docs_path must start with / (got: %s)", c.DocsPath)
	}
	return nil
}

// MaxBodyBytes returns the body limit in bytes, or the 10MB default when
// MaxBodySize is unset or invalid.
func (c *Config) MaxBodyBytes() int64 {
	n, err := ParseSize(c.MaxBodySize)
	if err != nil || n <= 0 {
		return defaultMaxBodyBytes
	}
	return n
}

// ParseSize parses a human-readable size such as "512KB", "10MB" or "1GB".
// A bare number is a byte count.
func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	multiplier := int64(1)
	for _, unit := range []struct {
		suffix string
		mult   int64
	}{
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
		{"B", 1},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			multiplier = unit.mult
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			break
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return n * multiplier, nil
}
