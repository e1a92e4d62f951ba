package config

import (
	"fmt"
)

const (
	DefaultFields   = "u16"
	DefaultLogLevel = "info"
)

// Config holds the lzxdump run parameters. Values come from an optional
// config file and CLI flags, flags taking precedence.
type Config struct {
	// InputFile is a path to a file holding chunk bytes. Mutually
	// exclusive with HexInput.
	InputFile string `mapstructure:"in"`

	// HexInput is an inline hex string of chunk bytes.
	HexInput string `mapstructure:"hex"`

	// Fields is the read script to replay against the stream.
	Fields string `mapstructure:"fields"`

	// Offset and Length select a byte window into the input.
	// A zero Length means everything from Offset to the end.
	Offset int64 `mapstructure:"offset"`
	Length int64 `mapstructure:"length"`

	LogLevel string `mapstructure:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		Fields:   DefaultFields,
		LogLevel: DefaultLogLevel,
	}
}

func (cfg *Config) Validate() error {
	if cfg.InputFile == "" && cfg.HexInput == "" {
		return fmt.Errorf("invalid input; expected: one of `in` or `hex`, given: neither")
	}

	if cfg.InputFile != "" && cfg.HexInput != "" {
		return fmt.Errorf("invalid input; expected: one of `in` or `hex`, given: both")
	}

	if cfg.Fields == "" {
		return fmt.Errorf("invalid `fields`; expected: a non-empty read script")
	}

	if cfg.Offset < 0 {
		return fmt.Errorf("invalid `offset`; expected: >= 0, given: %d", cfg.Offset)
	}

	if cfg.Length < 0 {
		return fmt.Errorf("invalid `length`; expected: >= 0, given: %d", cfg.Length)
	}

	return nil
}
