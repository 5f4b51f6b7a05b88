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

// Package ref implements resolution of Watchword version references.
//
// A version that is a pure restatement of an earlier version has no word
// lists of its own. Instead it references its parent version. References may
// be chained and a version with no reference is canonical.
package ref

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// MaxDepth is the maximum number of references followed before resolution
// gives up.
const MaxDepth = 64

// ErrAliasCycle indicates that resolving a version did not reach a canonical
// version.
var ErrAliasCycle = errors.New("alias cycle")

// Map maps a version to the version it references. Canonical versions have
// no entry.
type Map map[string]string

// New reads a reference map from its JSON form. The JSON value is an object
// mapping each version to its parent version or null. Null and empty
// references are treated as canonical.
func New(r io.Reader) (Map, error) {
	var raw map[string]*string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding references: %w", err)
	}

	m := Map{}
	for version, parent := range raw {
		if parent == nil || *parent == "" {
			continue
		}
		m[version] = *parent
	}
	return m, nil
}

// Resolve returns the canonical version for the given version by following
// references until a version with no reference is found. Versions with no
// reference resolve to themselves.
func (m Map) Resolve(version string) (string, error) {
	visited := map[string]struct{}{}
	current := version
	for depth := 0; ; depth++ {
		parent, ok := m[current]
		if !ok {
			return current, nil
		}
		if depth == MaxDepth {
			return "", fmt.Errorf("%w: %q exceeds %d references", ErrAliasCycle, version, MaxDepth)
		}
		visited[current] = struct{}{}
		if _, seen := visited[parent]; seen {
			return "", fmt.Errorf("%w: %q revisits %q", ErrAliasCycle, version, parent)
		}
		current = parent
	}
}

// DisplayString returns a string showing the canonical version alongside the
// requested version, e.g. "1.0 -> 1.1". If the version is canonical then the
// version itself is returned.
func (m Map) DisplayString(version string) (string, error) {
	canonical, err := m.Resolve(version)
	if err != nil {
		return "", err
	}
	if canonical == version {
		return version, nil
	}
	return canonical + " -> " + version, nil
}

// Validate checks that every version in the map resolves. Versions are
// checked in sorted order so the reported error is deterministic.
func (m Map) Validate() error {
	versions := make([]string, 0, len(m))
	for v := range m {
		versions = append(versions, v)
	}
	slices.Sort(versions)

	for _, v := range versions {
		if _, err := m.Resolve(v); err != nil {
			return err
		}
	}
	return nil
}
