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

// Package folding implements the normalization applied to words both when
// they are read from word lists and dictionaries and when they are queried.
//
// Words are trimmed and upper cased. Runs of whitespace inside a word are
// also collapsed to a single space, so "ICE   CREAM" and "ICE CREAM" are the
// same word. The same folding is used for ingestion and queries.
package folding

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Word returns a new transformer that folds whitespace and upper cases its
// input. Transformers are stateful and must not be shared between
// goroutines.
func Word() transform.Transformer {
	return transform.Chain(&SpaceFolder{}, cases.Upper(language.Und))
}

// String folds s using a new Word transformer.
func String(s string) (string, error) {
	folded, _, err := transform.String(Word(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
