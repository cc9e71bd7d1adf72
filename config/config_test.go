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

package config_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint/config"
	"github.com/flintlang/flint/printer"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	src := `
max_width: 100
indent: tabs
tab_width: 8
quotes: single
keep_edge_blanks: true
ignore:
  - "**/gen/**"
`
	got, err := config.Parse("flint.yaml", []byte(src))
	require.NoError(t, err)

	want := config.Config{
		MaxWidth:       100,
		Indent:         "tabs",
		TabWidth:       8,
		Quotes:         "single",
		KeepEdgeBlanks: true,
		Ignore:         []string{"**/gen/**"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	src := `
max_width = 100
quotes = "preserve"
ignore = ["vendor/**"]
`
	got, err := config.Parse("flint.toml", []byte(src))
	require.NoError(t, err)

	want := config.Config{
		MaxWidth: 100,
		Quotes:   "preserve",
		Ignore:   []string{"vendor/**"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty file means defaults", func(t *testing.T) {
		t.Parallel()
		got, err := config.Parse("flint.yml", nil)
		require.NoError(t, err)
		assert.Equal(t, config.Config{}, got)
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse("flint.yaml", []byte("widht: 90\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "widht")
	})

	t.Run("unknown toml key", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse("flint.toml", []byte("widht = 90\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "widht")
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse("flint.json", []byte("{}"))
		assert.ErrorIs(t, err, config.ErrUnknownFormat)
	})

	t.Run("errors name the file", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse("conf/flint.yaml", []byte("max_width: [\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "conf/flint.yaml")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    config.Config
		wantField string // Empty means valid.
	}{
		{
			name:   "zero value",
			config: config.Config{},
		},
		{
			name: "everything set",
			config: config.Config{
				MaxWidth: 120,
				Indent:   "tabs",
				Quotes:   "preserve",
				Ignore:   []string{"**/*.fl"},
			},
		},
		{
			name:      "negative width",
			config:    config.Config{MaxWidth: -1},
			wantField: "max_width",
		},
		{
			name:      "negative indent size",
			config:    config.Config{IndentSize: -2},
			wantField: "indent_size",
		},
		{
			name:      "negative tab width",
			config:    config.Config{TabWidth: -4},
			wantField: "tab_width",
		},
		{
			name:      "unknown indent style",
			config:    config.Config{Indent: "elastic"},
			wantField: "indent",
		},
		{
			name:      "unknown quote style",
			config:    config.Config{Quotes: "smart"},
			wantField: "quotes",
		},
		{
			name:      "malformed ignore pattern",
			config:    config.Config{Ignore: []string{"["}},
			wantField: "ignore",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.config.Validate()
			if test.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var cerr *config.Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, test.wantField, cerr.Field)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		options, err := config.Config{}.Options()
		require.NoError(t, err)
		assert.Equal(t, printer.Options{MaxWidth: printer.DefaultMaxWidth}, options)
	})

	t.Run("everything set", func(t *testing.T) {
		t.Parallel()

		c := config.Config{
			MaxWidth:       100,
			Indent:         "tabs",
			IndentSize:     3,
			TabWidth:       8,
			Quotes:         "preserve",
			KeepEdgeBlanks: true,
		}
		options, err := c.Options()
		require.NoError(t, err)
		assert.Equal(t, printer.Options{
			MaxWidth:       100,
			Indent:         printer.IndentTabs,
			IndentSize:     3,
			TabWidth:       8,
			Quote:          printer.QuotePreserve,
			KeepEdgeBlanks: true,
		}, options)
	})

	t.Run("names are case insensitive", func(t *testing.T) {
		t.Parallel()

		options, err := config.Config{Quotes: "Single", Indent: "Tabs"}.Options()
		require.NoError(t, err)
		assert.Equal(t, printer.QuoteSingle, options.Quote)
		assert.Equal(t, printer.IndentTabs, options.Indent)
	})

	t.Run("invalid settings refuse to translate", func(t *testing.T) {
		t.Parallel()

		_, err := config.Config{Quotes: "smart"}.Options()
		var cerr *config.Error
		assert.True(t, errors.As(err, &cerr))
	})
}

func TestIgnored(t *testing.T) {
	t.Parallel()

	c := config.Config{Ignore: []string{"**/gen/**", "**/*.min.fl", "vendor/**"}}

	tests := []struct {
		path string
		want bool
	}{
		{"src/gen/a.fl", true},
		{"gen/a.fl", true},
		{"lib/b.min.fl", true},
		{"vendor/x/y.fl", true},
		{"src/a.fl", false},
		{"generated/a.fl", false},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, c.Ignored(test.path))
		})
	}

	t.Run("no patterns", func(t *testing.T) {
		t.Parallel()
		assert.False(t, config.Config{}.Ignored("src/a.fl"))
	})
}
