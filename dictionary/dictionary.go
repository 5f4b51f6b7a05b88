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

// Package dictionary implements the version independent word definition
// index.
package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-watchword/internal/folding"
)

// ErrEmpty indicates that the dictionary data contained no definitions.
var ErrEmpty = errors.New("empty dictionary")

// Dictionary maps words to their definitions. A Dictionary is immutable and
// safe for concurrent use.
type Dictionary struct {
	definitions map[string]string
}

// New reads a dictionary from its JSON form: an object mapping words to
// definition text. Words are folded so lookups are case insensitive. Entries
// with a blank word or definition are dropped. If several words fold to the
// same key, the word that is already folded (e.g. "DOG") takes precedence,
// followed by the lowest word in byte order.
func New(r io.Reader) (*Dictionary, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}

	// Keys are visited in sorted order so that collisions resolve the same
	// way on every load.
	words := make([]string, 0, len(raw))
	for word := range raw {
		words = append(words, word)
	}
	slices.Sort(words)

	// transform.String resets fold before each use.
	fold := folding.Word()
	d := &Dictionary{
		definitions: make(map[string]string, len(raw)),
	}
	for _, word := range words {
		def := raw[word]
		if strings.TrimSpace(def) == "" {
			continue
		}
		folded, _, err := transform.String(fold, word)
		if err != nil {
			return nil, fmt.Errorf("folding %q: %w", word, err)
		}
		if folded == "" {
			continue
		}
		// A key already in folded form always wins. Otherwise the lowest
		// key is kept.
		if _, ok := d.definitions[folded]; ok && word != folded {
			continue
		}
		d.definitions[folded] = def
	}

	if len(d.definitions) == 0 {
		return nil, ErrEmpty
	}

	return d, nil
}

// Definition returns the definition for word.
func (d *Dictionary) Definition(word string) (string, bool) {
	folded, err := folding.String(word)
	if err != nil {
		return "", false
	}
	def, ok := d.definitions[folded]
	return def, ok
}

// Len returns the number of defined words.
func (d *Dictionary) Len() int {
	return len(d.definitions)
}

// Filter returns a new Dictionary containing only the words for which keep
// returns true. Words passed to keep are already folded. The returned
// Dictionary may be empty.
func (d *Dictionary) Filter(keep func(word string) bool) *Dictionary {
	filtered := &Dictionary{
		definitions: map[string]string{},
	}
	for word, def := range d.definitions {
		if keep(word) {
			filtered.definitions[word] = def
		}
	}
	return filtered
}
