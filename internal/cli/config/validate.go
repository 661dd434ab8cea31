package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", c.LogLevel)
	}

	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q (expected %s, %s or %s)", c.Format, FormatTable, FormatJSON, FormatYAML)
	}

	if c.Pretty && c.Indent == "" {
		return fmt.Errorf("indent must not be empty when pretty output is enabled")
	}

	return nil
}
