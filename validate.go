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
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ianlewis/go-watchword/internal/folding"
)

const (
	// MinWordLen is the minimum length of a word accepted by ValidateWord.
	MinWordLen = 2

	// MaxWordLen is the maximum length of a word accepted by ValidateWord.
	MaxWordLen = 40
)

// ErrInvalidWord indicates that user input is not a checkable word.
var ErrInvalidWord = errors.New("invalid word")

// ValidateWord normalizes user input and checks that it is a plausible word:
// between MinWordLen and MaxWordLen letters A through Z. ValidateWord returns
// the normalized word.
func ValidateWord(word string) (string, error) {
	folded, err := folding.String(word)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}

	n := utf8.RuneCountInString(folded)
	if n < MinWordLen || n > MaxWordLen {
		return "", fmt.Errorf("%w: %q must be between %d and %d letters", ErrInvalidWord, word, MinWordLen, MaxWordLen)
	}
	for _, r := range folded {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, r)
		}
	}

	return folded, nil
}
