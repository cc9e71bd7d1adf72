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

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		pref QuoteStyle
		want string
	}{
		{
			name: "prefers double",
			in:   `'hi'`,
			pref: QuoteDouble,
			want: `"hi"`,
		},
		{
			name: "prefers single",
			in:   `"hi"`,
			pref: QuoteSingle,
			want: `'hi'`,
		},
		{
			name: "fewest escapes beats preference",
			in:   `"say \"hi\""`,
			pref: QuoteDouble,
			want: `'say "hi"'`,
		},
		{
			name: "flip drops stale escapes",
			in:   `'it\'s'`,
			pref: QuoteDouble,
			want: `"it's"`,
		},
		{
			name: "flip introduces needed escapes",
			in:   `'don\'t can\'t "x'`,
			pref: QuoteDouble,
			want: `"don't can't \"x"`,
		},
		{
			name: "tie keeps current double",
			in:   `"mixed 'a' \"b\""`,
			pref: QuoteDouble,
			want: `"mixed 'a' \"b\""`,
		},
		{
			name: "other escapes kept verbatim",
			in:   `'a\nb\\c'`,
			pref: QuoteDouble,
			want: `"a\nb\\c"`,
		},
		{
			name: "preserve leaves it alone",
			in:   `'keep'`,
			pref: QuotePreserve,
			want: `'keep'`,
		},
		{
			name: "empty string",
			in:   `''`,
			pref: QuoteDouble,
			want: `""`,
		},
		{
			name: "not a string",
			in:   `abc`,
			pref: QuoteDouble,
			want: `abc`,
		},
		{
			name: "unterminated",
			in:   `"abc`,
			pref: QuoteDouble,
			want: `"abc`,
		},
		{
			name: "lone quote",
			in:   `"`,
			pref: QuoteDouble,
			want: `"`,
		},
		{
			name: "trailing backslash",
			in:   "'ab\\'",
			pref: QuoteDouble,
			want: "'ab\\'",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, requote(test.in, test.pref))
		})
	}
}
