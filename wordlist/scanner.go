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
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-watchword/internal/folding"
)

// MaxLineLen is the maximum length in bytes of a line in a word list. Longer
// lines cause scanning to fail with an error wrapping [bufio.ErrTooLong].
const MaxLineLen = 1 << 20

// Scanner scans a newline delimited word list from start to end. Words are
// folded and blank lines are skipped.
type Scanner struct {
	s    *bufio.Scanner
	fold transform.Transformer
	word string
	err  error
}

// NewScanner returns a new word list scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxLineLen)
	return &Scanner{
		s:    s,
		fold: folding.Word(),
	}
}

// Scan advances the scanner to the next word. It returns false if the scan
// stops either by reaching the end of the word list or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		word, _, err := transform.String(s.fold, s.s.Text())
		if err != nil {
			s.err = fmt.Errorf("folding %q: %w", s.s.Text(), err)
			return false
		}
		if word == "" {
			continue
		}
		s.word = word
		return true
	}
	return false
}

// Word returns the most recent word read by Scan.
func (s *Scanner) Word() string {
	return s.word
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// ReadAll reads all words from r.
func ReadAll(r io.Reader) ([]string, error) {
	var words []string
	s := NewScanner(r)
	for s.Scan() {
		words = append(words, s.Word())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list: %w", err)
	}
	return words, nil
}
