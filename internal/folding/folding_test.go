// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"testing"

	"golang.org/x/text/transform"
)

func TestSpaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only spaces",
			input:    " \t\r\n ",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    "  dog\r",
			expected: "dog",
		},
		{
			name:     "internal run",
			input:    "ice \t  cream",
			expected: "ice cream",
		},
		{
			name:     "multibyte",
			input:    "　ユニコード　",
			expected: "ユニコード",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&SpaceFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if got != test.expected {
				t.Fatalf("unexpected output; want: %q, got: %q", test.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lower",
			input:    "dog",
			expected: "DOG",
		},
		{
			name:     "mixed with spaces",
			input:    " FiSh\n",
			expected: "FISH",
		},
		{
			name:     "already folded",
			input:    "CAT",
			expected: "CAT",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := String(test.input)
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if got != test.expected {
				t.Fatalf("unexpected output; want: %q, got: %q", test.expected, got)
			}
		})
	}
}
