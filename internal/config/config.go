// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package config defines the settings of the jindent command, and reads them
// from HuJSON configuration files.
//
// A configuration file is a JSON object with comments and trailing commas
// permitted, for example:
//
//	{
//	  // Spaces per nesting level.
//	  "indent": 4,
//	  "numbers": "exact",   // or "integer", "float"
//	  "max-depth": 512,
//	  "max-padding": 8192,
//	  "lax-commas": false,
//	  "log-level": "warn",
//	}
//
// All fields are optional; omitted fields keep their existing values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/creachadair/jindent"
	"github.com/creachadair/jindent/ast"
	"github.com/tailscale/hujson"
)

// LogLevels are the valid values of Config.LogLevel, in increasing order of
// severity.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings of a jindent run.
type Config struct {
	Indent     int                // spaces of indentation per level
	Numbers    jindent.NumberMode // how numbers are rendered
	MaxDepth   int                // maximum nesting depth
	MaxPadding int                // maximum indentation per line
	LaxCommas  bool               // ignore stray commas in objects
	LogLevel   string             // minimum level of diagnostic logs
}

// Default returns the default configuration.
func Default() Config {
	opts := jindent.DefaultOptions()
	return Config{
		Indent:     opts.IndentWidth,
		Numbers:    opts.Numbers,
		MaxDepth:   opts.MaxDepth,
		MaxPadding: opts.MaxPadding,
		LogLevel:   "warn",
	}
}

// Load reads the configuration file at path, applied over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data, Default())
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse parses data as a HuJSON configuration and applies the fields it sets
// over base. The result is validated.
func Parse(data []byte, base Config) (Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, err
	}
	v, err := ast.Parse(bytes.NewReader(std))
	if err != nil {
		return Config{}, err
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		return Config{}, fmt.Errorf("got %v, want object", v.Type())
	}

	cfg := base
	for _, m := range obj.Members {
		if err := cfg.set(m.Key, m.Value); err != nil {
			return Config{}, fmt.Errorf("field %q: %w", m.Key, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) set(key string, v ast.Value) error {
	switch key {
	case "indent":
		return setInt(&c.Indent, v)
	case "max-depth":
		return setInt(&c.MaxDepth, v)
	case "max-padding":
		return setInt(&c.MaxPadding, v)
	case "lax-commas":
		b, ok := v.(ast.Bool)
		if !ok {
			return fmt.Errorf("got %v, want boolean", v.Type())
		}
		c.LaxCommas = bool(b)
	case "numbers":
		s, ok := v.(ast.String)
		if !ok {
			return fmt.Errorf("got %v, want string", v.Type())
		}
		m, err := jindent.ParseNumberMode(string(s))
		if err != nil {
			return err
		}
		c.Numbers = m
	case "log-level":
		s, ok := v.(ast.String)
		if !ok {
			return fmt.Errorf("got %v, want string", v.Type())
		}
		c.LogLevel = string(s)
	default:
		return errors.New("unknown setting")
	}
	return nil
}

func setInt(p *int, v ast.Value) error {
	n, ok := v.(ast.Number)
	if !ok {
		return fmt.Errorf("got %v, want number", v.Type())
	}
	z, ok := n.Value().Int64()
	if !ok || z != int64(int(z)) {
		return fmt.Errorf("value %v is not an integer", n.Value())
	}
	*p = int(z)
	return nil
}

// Validate reports an error if c contains invalid settings.
func (c Config) Validate() error {
	var errs []error
	if c.Indent < 1 {
		errs = append(errs, fmt.Errorf("indent %d is not positive", c.Indent))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max-depth %d is not positive", c.MaxDepth))
	}
	if c.MaxPadding < 1 {
		errs = append(errs, fmt.Errorf("max-padding %d is not positive", c.MaxPadding))
	} else if c.MaxPadding > jindent.MaxPaddingLimit {
		errs = append(errs, fmt.Errorf("max-padding %d exceeds limit %d", c.MaxPadding, jindent.MaxPaddingLimit))
	}
	if c.Numbers != jindent.Exact && c.Numbers != jindent.Integer && c.Numbers != jindent.Float {
		errs = append(errs, fmt.Errorf("invalid number mode %v", c.Numbers))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Options returns the printer options selected by c.
func (c Config) Options() jindent.Options {
	return jindent.Options{
		IndentWidth: c.Indent,
		MaxPadding:  c.MaxPadding,
		MaxDepth:    c.MaxDepth,
		Numbers:     c.Numbers,
		LaxCommas:   c.LaxCommas,
	}
}
