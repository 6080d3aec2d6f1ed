// Package config loads settings for the morse command line tool.
//
// Settings come from an optional HCL file:
//
//	strategy  = "offset"
//	strict    = false
//	log_level = "debug"
//
// Every attribute is optional; missing attributes keep their defaults.
package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/morse/codec"
	"github.com/wippyai/morse/errors"
)

// Config is the resolved tool configuration
type Config struct {
	Strategy codec.Strategy
	LogLevel zapcore.Level
	Strict   bool
}

// hclFile mirrors the file layout for decoding.
type hclFile struct {
	Strategy string `hcl:"strategy,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Strict   bool   `hcl:"strict,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Strategy: codec.DefaultStrategy,
		LogLevel: zapcore.InfoLevel,
	}
}

// Load parses the HCL file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.ParseFailed(path, diags)
	}
	return decode(file.Body, path)
}

// Parse parses HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.ParseFailed(filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Config, error) {
	def := Default()
	raw := hclFile{
		Strategy: def.Strategy.String(),
		LogLevel: def.LogLevel.String(),
	}
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, errors.ParseFailed(filename, diags)
	}

	strategy, err := codec.ParseStrategy(raw.Strategy)
	if err != nil {
		return nil, err
	}
	level, err := zapcore.ParseLevel(raw.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "log_level in "+filename)
	}

	return &Config{
		Strategy: strategy,
		LogLevel: level,
		Strict:   raw.Strict,
	}, nil
}
