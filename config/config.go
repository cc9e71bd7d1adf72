// Copyright 2023-2026 The Flint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads formatter settings from flint configuration files.
//
// The package does not search for configuration: callers hand [Parse] the
// bytes of a file they already located, and the file's extension picks the
// format. Both YAML (.yaml, .yml) and TOML (.toml) files describe the same
// [Config]; keys the type does not declare are errors in either format.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/flintlang/flint/printer"
)

// ErrUnknownFormat is wrapped by [Parse] when the file's extension names no
// supported configuration format.
var ErrUnknownFormat = errors.New("unrecognized configuration format")

// Config is the file-level view of the formatter's settings. The zero value
// is valid and means "all defaults": an absent or empty configuration file
// behaves exactly like no file at all.
type Config struct {
	// MaxWidth is the line width the formatter aims for. Zero means 80.
	MaxWidth int `yaml:"max_width" toml:"max_width"`

	// Indent picks the indentation style: "spaces" or "tabs". Empty means
	// spaces.
	Indent string `yaml:"indent" toml:"indent"`

	// IndentSize is the number of spaces per indentation level. Zero means
	// 2. Ignored when Indent is "tabs".
	IndentSize int `yaml:"indent_size" toml:"indent_size"`

	// TabWidth is how many columns a tab counts as when measuring lines.
	// Zero means 4.
	TabWidth int `yaml:"tab_width" toml:"tab_width"`

	// Quotes picks the preferred string quote: "double", "single" or
	// "preserve". Empty means double.
	Quotes string `yaml:"quotes" toml:"quotes"`

	// KeepEdgeBlanks keeps a blank line at the start and end of a file
	// when the source had one there.
	KeepEdgeBlanks bool `yaml:"keep_edge_blanks" toml:"keep_edge_blanks"`

	// Ignore lists doublestar patterns for paths the formatter must leave
	// alone, matched by [Config.Ignored].
	Ignore []string `yaml:"ignore" toml:"ignore"`
}

// Error describes the first configuration value [Config.Validate] rejected.
type Error struct {
	// Field is the configuration file key, such as "max_width".
	Field string
	// Reason says what is wrong with its value.
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Parse decodes the contents of the configuration file at path. Only the
// extension of path is consulted; the data is not read from disk here.
func Parse(path string, data []byte) (Config, error) {
	var (
		c   Config
		err error
	)
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		c, err = parseYAML(data)
	case ".toml":
		c, err = parseTOML(data)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func parseYAML(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file configures nothing.
			return Config{}, nil
		}
		return Config{}, err
	}
	return c, nil
}

func parseTOML(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, err
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", extra[0].String())
	}
	return c, nil
}

// Validate reports the first setting that cannot be honored. The returned
// error is a [*Error] naming the offending field.
func (c Config) Validate() error {
	switch {
	case c.MaxWidth < 0:
		return &Error{Field: "max_width", Reason: fmt.Sprintf("must not be negative (got %d)", c.MaxWidth)}
	case c.IndentSize < 0:
		return &Error{Field: "indent_size", Reason: fmt.Sprintf("must not be negative (got %d)", c.IndentSize)}
	case c.TabWidth < 0:
		return &Error{Field: "tab_width", Reason: fmt.Sprintf("must not be negative (got %d)", c.TabWidth)}
	}
	if _, err := indentKind(c.Indent); err != nil {
		return err
	}
	if _, err := quoteStyle(c.Quotes); err != nil {
		return err
	}
	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return &Error{Field: "ignore", Reason: fmt.Sprintf("bad pattern %q", pattern)}
		}
	}
	return nil
}

// Options translates the configuration into printer options, filling in the
// documented defaults for unset fields. It fails exactly when [Config.Validate]
// does.
func (c Config) Options() (printer.Options, error) {
	if err := c.Validate(); err != nil {
		return printer.Options{}, err
	}

	options := printer.Options{
		MaxWidth:       c.MaxWidth,
		IndentSize:     c.IndentSize,
		TabWidth:       c.TabWidth,
		KeepEdgeBlanks: c.KeepEdgeBlanks,
	}
	if options.MaxWidth == 0 {
		options.MaxWidth = printer.DefaultMaxWidth
	}
	options.Indent, _ = indentKind(c.Indent)
	options.Quote, _ = quoteStyle(c.Quotes)
	return options, nil
}

// Ignored reports whether path matches any of the configured ignore
// patterns. Paths are compared in slash form, so callers may pass native
// ones.
func (c Config) Ignored(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.Ignore {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func indentKind(name string) (printer.IndentKind, error) {
	switch strings.ToLower(name) {
	case "", "spaces":
		return printer.IndentSpaces, nil
	case "tabs":
		return printer.IndentTabs, nil
	default:
		return 0, &Error{Field: "indent", Reason: fmt.Sprintf(`must be "spaces" or "tabs" (got %q)`, name)}
	}
}

func quoteStyle(name string) (printer.QuoteStyle, error) {
	switch strings.ToLower(name) {
	case "", "double":
		return printer.QuoteDouble, nil
	case "single":
		return printer.QuoteSingle, nil
	case "preserve":
		return printer.QuotePreserve, nil
	default:
		return 0, &Error{Field: "quotes", Reason: fmt.Sprintf(`must be "double", "single" or "preserve" (got %q)`, name)}
	}
}
