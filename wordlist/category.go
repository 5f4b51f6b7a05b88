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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrNoCategories indicates that the category definitions were empty.
var ErrNoCategories = errors.New("no categories")

// Category is a named word list. Every word in the category's word list
// receives all of the category's flags.
type Category struct {
	// Name is the category name used to locate its word list.
	Name string

	// Flags are the flags applied to words in the category. Flags are sorted
	// and unique. A category may have no flags.
	Flags []string
}

// NewCategory returns a Category with its flags sorted and deduplicated.
func NewCategory(name string, flags ...string) Category {
	return Category{
		Name:  name,
		Flags: normalizeFlags(flags),
	}
}

// ParseCategories reads category definitions from their JSON form: an object
// mapping each category name to a list of flags. The returned categories are
// sorted by name.
func ParseCategories(r io.Reader) ([]Category, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCategories
		}
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoCategories
	}

	categories := make([]Category, 0, len(raw))
	for name, flags := range raw {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrNoCategories)
		}
		categories = append(categories, NewCategory(name, flags...))
	}
	sortCategories(categories)

	return categories, nil
}

func sortCategories(categories []Category) {
	slices.SortFunc(categories, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// normalizeFlags returns a sorted copy of flags with duplicates and empty
// flags removed. The result is never nil.
func normalizeFlags(flags []string) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f != "" {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
