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

package watchword

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errEmptyCatalog = errors.New("no versions")

// ParseVersions reads the versions catalog from its JSON form: a list of
// versions in display order. The first version is the default.
func ParseVersions(r io.Reader) ([]string, error) {
	var versions []string
	if err := json.NewDecoder(r).Decode(&versions); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyCatalog
		}
		return nil, fmt.Errorf("decoding versions: %w", err)
	}

	var out []string
	for _, v := range versions {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, errEmptyCatalog
	}
	return out, nil
}
