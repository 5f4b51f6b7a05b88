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

package wordlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []Category
		err      error
		fail     bool
	}{
		{
			name: "watchword flags",
			data: `{"wordlist": [], "badlist": ["bad"], "cleanlist": ["clean"]}`,
			expected: []Category{
				{Name: "badlist", Flags: []string{"bad"}},
				{Name: "cleanlist", Flags: []string{"clean"}},
				{Name: "wordlist", Flags: []string{}},
			},
		},
		{
			name: "flags deduplicated and sorted",
			data: `{"core": ["b", "a", "b", ""], "bonus": null}`,
			expected: []Category{
				{Name: "bonus", Flags: []string{}},
				{Name: "core", Flags: []string{"a", "b"}},
			},
		},
		{
			name: "empty object",
			data: `{}`,
			err:  ErrNoCategories,
			fail: true,
		},
		{
			name: "no data",
			data: ``,
			err:  ErrNoCategories,
			fail: true,
		},
		{
			name: "empty name",
			data: `{"": ["a"]}`,
			err:  ErrNoCategories,
			fail: true,
		},
		{
			name: "bad json",
			data: `{"core": "standard"}`,
			fail: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCategories(strings.NewReader(test.data))
			if test.fail {
				if err == nil {
					t.Fatal("ParseCategories: expected failure")
				}
				if test.err != nil && !errors.Is(err, test.err) {
					t.Fatalf("ParseCategories; want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategories: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("ParseCategories (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNewCategory(t *testing.T) {
	t.Parallel()

	got := NewCategory("core", "standard", "extra", "standard")
	want := Category{Name: "core", Flags: []string{"extra", "standard"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewCategory (-want, +got):\n%s", diff)
	}
}
