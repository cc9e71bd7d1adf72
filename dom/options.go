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

package dom

import "math"

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering a break.
	// A value of zero implies an infinite width.
	MaxWidth int

	// The whitespace for one level of indentation. Defaults to two spaces.
	Indent string

	// The number of columns a tab character counts as. Defaults to 4.
	TabWidth int
}

// WithDefaults replaces any unset (read: zero value) fields of an Options
// which specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = math.MaxInt
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	if o.TabWidth == 0 {
		o.TabWidth = 4
	}
	return o
}
