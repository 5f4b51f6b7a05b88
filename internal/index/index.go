// Copyright 2025 Ian Lewis
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

package index

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Index is a generic sorted array index with unique keys. Values are keyed
// by their String method.
type Index[V fmt.Stringer] struct {
	// values is sorted by key with no duplicate keys.
	values []V
}

// New creates an index from the given values. When more than one value has
// the same key, the last one in values wins. The values slice is not
// modified.
func New[V fmt.Stringer](values []V) *Index[V] {
	sorted := make([]V, len(values))
	copy(sorted, values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.String(), b.String())
	})

	// Compact in place keeping the last of each run of equal keys.
	out := sorted[:0]
	for i, v := range sorted {
		if i+1 < len(sorted) && sorted[i+1].String() == v.String() {
			continue
		}
		out = append(out, v)
	}

	return &Index[V]{
		values: out,
	}
}

// Get performs a binary search over the index and returns the value with
// the given key.
func (idx *Index[V]) Get(key string) (V, bool) {
	i, found := slices.BinarySearchFunc(idx.values, key, func(v V, k string) int {
		return strings.Compare(v.String(), k)
	})
	if !found {
		var zero V
		return zero, false
	}
	return idx.values[i], true
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// All returns an iterator over the values in key order.
func (idx *Index[V]) All() iter.Seq[V] {
	return slices.Values(idx.values)
}
