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

package wordlist_test

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-watchword/internal/testutil"
	"github.com/ianlewis/go-watchword/source"
	"github.com/ianlewis/go-watchword/wordlist"
)

func entries(idx *wordlist.Index) []wordlist.Entry {
	return slices.Collect(idx.Entries())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		version    string
		categories []wordlist.Category
		wordlists  map[string]string

		expected []wordlist.Entry
		err      error
	}{
		{
			name:    "core and bonus",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("core", "standard"),
				wordlist.NewCategory("bonus", "extra"),
			},
			wordlists: map[string]string{
				"1.0_core":  "CAT\nDOG",
				"1.0_bonus": "dog\nfish",
			},
			expected: []wordlist.Entry{
				{Word: "CAT", Flags: []string{"standard"}},
				{Word: "DOG", Flags: []string{"extra", "standard"}},
				{Word: "FISH", Flags: []string{"extra"}},
			},
		},
		{
			name:    "flag union",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("c1", "a", "b"),
				wordlist.NewCategory("c2", "b", "c"),
			},
			wordlists: map[string]string{
				"1.0_c1": "WORD\n",
				"1.0_c2": "word\n",
			},
			expected: []wordlist.Entry{
				{Word: "WORD", Flags: []string{"a", "b", "c"}},
			},
		},
		{
			name:    "no flags",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("wordlist"),
				wordlist.NewCategory("badlist", "bad"),
			},
			wordlists: map[string]string{
				"1.0_wordlist": "CAT\nDOG\n",
				"1.0_badlist":  "DOG\n",
			},
			expected: []wordlist.Entry{
				{Word: "CAT", Flags: []string{}},
				{Word: "DOG", Flags: []string{"bad"}},
			},
		},
		{
			name:    "blank lines and padding",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("core", "standard"),
			},
			wordlists: map[string]string{
				"1.0_core": "\n  cat \r\n\n\tdog\n\n",
			},
			expected: []wordlist.Entry{
				{Word: "CAT", Flags: []string{"standard"}},
				{Word: "DOG", Flags: []string{"standard"}},
			},
		},
		{
			name:    "empty word list",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("core", "standard"),
			},
			wordlists: map[string]string{
				"1.0_core": "",
			},
			expected: []wordlist.Entry{},
		},
		{
			name:    "only the requested version",
			version: "2.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("core", "standard"),
			},
			wordlists: map[string]string{
				"1.0_core": "CAT\n",
				"2.0_core": "DOG\n",
			},
			expected: []wordlist.Entry{
				{Word: "DOG", Flags: []string{"standard"}},
			},
		},
		{
			name:    "missing word list",
			version: "1.0",
			categories: []wordlist.Category{
				wordlist.NewCategory("core", "standard"),
				wordlist.NewCategory("bonus", "extra"),
			},
			wordlists: map[string]string{
				"1.0_core": "CAT\n",
			},
			err: source.ErrNotFound,
		},
		{
			name:       "no categories",
			version:    "1.0",
			categories: nil,
			wordlists:  map[string]string{},
			err:        wordlist.ErrNoCategories,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data := &testutil.Data{Wordlists: test.wordlists}
			d := source.NewDir(data.MapFS(t))

			idx, err := wordlist.Build(context.Background(), d, test.version, test.categories, nil)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Build; want: %v, got: %v", test.err, err)
				}
				if !errors.Is(err, wordlist.ErrBuild) {
					t.Fatalf("Build; want: %v, got: %v", wordlist.ErrBuild, err)
				}
				if idx != nil {
					t.Fatal("Build: partial index returned")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			if want, got := test.version, idx.Version(); want != got {
				t.Fatalf("Version; want: %q, got: %q", want, got)
			}
			got := entries(idx)
			if got == nil {
				got = []wordlist.Entry{}
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_order(t *testing.T) {
	t.Parallel()

	data := &testutil.Data{
		Wordlists: map[string]string{
			"1.0_a": "CAT\nDOG\n",
			"1.0_b": "DOG\nFISH\n",
			"1.0_c": "FISH\nCAT\nBIRD\n",
		},
	}
	d := source.NewDir(data.MapFS(t))

	categories := []wordlist.Category{
		wordlist.NewCategory("a", "x", "y"),
		wordlist.NewCategory("b", "y", "z"),
		wordlist.NewCategory("c", "w"),
	}
	permutations := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}

	var want []wordlist.Entry
	for _, p := range permutations {
		var cs []wordlist.Category
		for _, i := range p {
			cs = append(cs, categories[i])
		}

		// Serialize reads in different orders too.
		idx, err := wordlist.Build(context.Background(), d, "1.0", cs, &wordlist.Options{Concurrency: 1})
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		got := entries(idx)
		if want == nil {
			want = got
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Entries for order %v (-want, +got):\n%s", p, diff)
		}
	}
}

// countingOpener counts open word lists and fails on a named file.
type countingOpener struct {
	wordlist.Opener
	fail string
	open atomic.Int32
}

func (o *countingOpener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == o.fail {
		return nil, errors.New("read failure")
	}
	r, err := o.Opener.Open(ctx, name)
	if err != nil {
		return nil, err //nolint:wrapcheck // test helper.
	}
	o.open.Add(1)
	return &closeCounter{ReadCloser: r, open: &o.open}, nil
}

type closeCounter struct {
	io.ReadCloser
	open *atomic.Int32
}

func (c *closeCounter) Close() error {
	c.open.Add(-1)
	return c.ReadCloser.Close() //nolint:wrapcheck // test helper.
}

func TestBuild_failure(t *testing.T) {
	t.Parallel()

	data := &testutil.Data{
		Wordlists: map[string]string{
			"1.0_a": "CAT\n",
			"1.0_b": "DOG\n",
			"1.0_c": "FISH\n",
		},
	}
	o := &countingOpener{
		Opener: source.NewDir(data.MapFS(t)),
		fail:   wordlist.SourceName("1.0", "b"),
	}

	idx, err := wordlist.Build(context.Background(), o, "1.0", []wordlist.Category{
		wordlist.NewCategory("a"),
		wordlist.NewCategory("b"),
		wordlist.NewCategory("c"),
	}, nil)
	if !errors.Is(err, wordlist.ErrBuild) {
		t.Fatalf("Build; want: %v, got: %v", wordlist.ErrBuild, err)
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Fatalf("Build: error does not name the category: %v", err)
	}
	if idx != nil {
		t.Fatal("Build: partial index returned")
	}
	if got := o.open.Load(); got != 0 {
		t.Fatalf("Build: %d word lists left open", got)
	}
}

func TestBuild_canceled(t *testing.T) {
	t.Parallel()

	data := &testutil.Data{
		Wordlists: map[string]string{
			"1.0_a": "CAT\n",
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wordlist.Build(ctx, source.NewDir(data.MapFS(t)), "1.0", []wordlist.Category{
		wordlist.NewCategory("a"),
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build; want: %v, got: %v", context.Canceled, err)
	}
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	data := &testutil.Data{
		Wordlists: map[string]string{
			"1.0_core":  "CAT\nDOG\n",
			"1.0_bonus": "dog\nfish\n",
		},
	}
	idx, err := wordlist.Build(context.Background(), source.NewDir(data.MapFS(t)), "1.0", []wordlist.Category{
		wordlist.NewCategory("core", "standard"),
		wordlist.NewCategory("bonus", "extra"),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name     string
		word     string
		expected wordlist.Entry
		found    bool
	}{
		{
			name:     "upper",
			word:     "DOG",
			expected: wordlist.Entry{Word: "DOG", Flags: []string{"extra", "standard"}},
			found:    true,
		},
		{
			name:     "lower",
			word:     "dog",
			expected: wordlist.Entry{Word: "DOG", Flags: []string{"extra", "standard"}},
			found:    true,
		},
		{
			name:     "padded",
			word:     " fish ",
			expected: wordlist.Entry{Word: "FISH", Flags: []string{"extra"}},
			found:    true,
		},
		{
			name: "missing",
			word: "bird",
		},
		{
			name: "empty",
			word: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, found := idx.Lookup(test.word)
			if found != test.found {
				t.Fatalf("Lookup found; want: %v, got: %v", test.found, found)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Lookup (-want, +got):\n%s", diff)
			}
			if want, got := test.found, idx.Contains(test.word); want != got {
				t.Fatalf("Contains; want: %v, got: %v", want, got)
			}
		})
	}

	if want, got := 3, idx.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	// Returned flags are copies.
	e, _ := idx.Lookup("DOG")
	e.Flags[0] = "changed"
	e, _ = idx.Lookup("DOG")
	if diff := cmp.Diff([]string{"extra", "standard"}, e.Flags); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
}
