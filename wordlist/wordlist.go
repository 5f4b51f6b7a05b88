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
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-watchword/internal/folding"
	"github.com/ianlewis/go-watchword/internal/index"
)

// ErrBuild indicates that building an index failed. No index is produced
// when a build fails.
var ErrBuild = errors.New("building index")

// Opener opens named data files.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// SourceName returns the name of the word list file for the given canonical
// version and category.
func SourceName(version, category string) string {
	return "wordlists/" + version + "_" + category + ".txt"
}

// Entry is a word in the index along with its flags.
type Entry struct {
	Word string

	// Flags are sorted and unique. Flags is empty, not nil, for a word with
	// no flags.
	Flags []string
}

// String implements [fmt.Stringer] and returns the entry's word.
func (e *Entry) String() string {
	return e.Word
}

// Index is the merged index of all word lists for a single canonical
// version. An Index is immutable and safe for concurrent use.
type Index struct {
	version string
	entries *index.Index[*Entry]
}

// Version returns the canonical version the index was built for.
func (idx *Index) Version() string {
	return idx.version
}

// Len returns the number of words in the index.
func (idx *Index) Len() int {
	return idx.entries.Len()
}

// Lookup returns the entry for word. The word is folded before lookup.
func (idx *Index) Lookup(word string) (Entry, bool) {
	folded, err := folding.String(word)
	if err != nil {
		return Entry{}, false
	}
	e, ok := idx.entries.Get(folded)
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Word:  e.Word,
		Flags: slices.Clone(e.Flags),
	}, true
}

// Contains returns whether word is in the index.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.Lookup(word)
	return ok
}

// Entries returns an iterator over the index entries in word order.
func (idx *Index) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for e := range idx.entries.All() {
			if !yield(Entry{Word: e.Word, Flags: slices.Clone(e.Flags)}) {
				return
			}
		}
	}
}

// Options are options for building an index.
type Options struct {
	// Concurrency limits the number of word lists read at once. A value less
	// than one means no limit.
	Concurrency int

	// Logger receives progress messages.
	Logger *log.Logger
}

// DefaultOptions is the default options for Build.
var DefaultOptions = &Options{}

// Build reads the word list for each category of the given canonical version
// and merges them into a single index. Word lists are read concurrently. If
// any word list cannot be read the build fails and no index is returned.
//
// A word that appears in more than one category receives the union of each
// category's flags.
func Build(ctx context.Context, opener Opener, version string, categories []Category, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBuild, ErrNoCategories)
	}

	// Each task writes only its own slot.
	words := make([][]string, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	if options.Concurrency > 0 {
		g.SetLimit(options.Concurrency)
	}
	for i, c := range categories {
		g.Go(func() error {
			name := SourceName(version, c.Name)
			w, err := readList(gctx, opener, name)
			if err != nil {
				return fmt.Errorf("%w: category %q: %w", ErrBuild, c.Name, err)
			}
			logger.Debug("read word list", "name", name, "words", len(w))
			words[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		//nolint:wrapcheck // errors are wrapped by the tasks.
		return nil, err
	}

	idx := merge(version, categories, words)
	logger.Info("loaded wordlist", "version", version, "words", idx.Len())
	return idx, nil
}

func readList(ctx context.Context, opener Opener, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context errors are returned as is.
	}

	r, err := opener.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	defer r.Close()

	words, err := ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return words, nil
}

// merge combines the word lists read for each category. words[i] holds the
// words for categories[i]. Categories are applied in name order so the
// result does not depend on the order in which word lists were read.
func merge(version string, categories []Category, words [][]string) *Index {
	order := make([]int, len(categories))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(categories[a].Name, categories[b].Name)
	})

	flags := map[string][]string{}
	for _, i := range order {
		c := categories[i]
		for _, w := range words[i] {
			flags[w] = append(flags[w], c.Flags...)
		}
	}

	entries := make([]*Entry, 0, len(flags))
	for w, f := range flags {
		entries = append(entries, &Entry{
			Word:  w,
			Flags: normalizeFlags(f),
		})
	}

	return &Index{
		version: version,
		entries: index.New(entries),
	}
}
