// Package config provides configuration management for the jsonsql CLI.
//
// Values are layered from defaults, a YAML config file, JSONSQL_ environment
// variables and explicitly set command-line flags, in increasing order of
// precedence.
package config

import (
	"log/slog"
	"strings"
)

// Default configuration values.
const (
	DefaultIndent   = "  "
	DefaultLogLevel = "warn"
	DefaultFormat   = FormatTable
)

// Output formats of the tables command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds all CLI configuration options.
type Config struct {
	Files        []string `koanf:"files"`
	Pretty       bool     `koanf:"pretty"`
	Indent       string   `koanf:"indent"`
	StrictTables bool     `koanf:"strict_tables"`
	Verbose      bool     `koanf:"verbose"`
	LogLevel     string   `koanf:"log_level"`
	Format       string   `koanf:"format"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `koanf:"-"`
}

// Default returns a Config holding the default values.
func Default() *Config {
	return &Config{
		Indent:   DefaultIndent,
		LogLevel: DefaultLogLevel,
		Format:   DefaultFormat,
	}
}

// defaults is the confmap layer of the loader.
func defaults() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"files":         []string{},
		"pretty":        d.Pretty,
		"indent":        d.Indent,
		"strict_tables": d.StrictTables,
		"verbose":       d.Verbose,
		"log_level":     d.LogLevel,
		"format":        d.Format,
	}
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Level returns the slog level to log at. Verbose always means debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelWarn
}
