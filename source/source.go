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

// Package source implements access to Watchword data files.
//
// Watchword data is a set of files:
//  1. dictionary_combined.json: a JSON object mapping words to definitions.
//  2. watchword_flags.json: a JSON object mapping category names to the
//     flags given to the words in that category.
//  3. watchword_references.json: a JSON object mapping versions to the
//     version they reference, or null.
//  4. watchword_versions.json: a JSON list of versions in display order.
//  5. wordlists/<version>_<category>.txt: newline delimited word lists for
//     each canonical version and category. Word lists may be compressed
//     with gzip (.gz) or dictzip (.dz).
package source

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-dictzip"
)

// Names of the data files.
const (
	DictionaryName = "dictionary_combined.json"
	FlagsName      = "watchword_flags.json"
	ReferencesName = "watchword_references.json"
	VersionsName   = "watchword_versions.json"
)

// ErrNotFound indicates that a data file does not exist.
var ErrNotFound = errors.New("not found")

// openFunc opens a single named file. It must return an error wrapping
// ErrNotFound if the file does not exist.
type openFunc func(ctx context.Context, name string) (io.ReadCloser, error)

// openAny opens the named file. If it does not exist then a gzip compressed
// (.gz) and then a dictzip compressed (.dz) version of the file are tried.
func openAny(ctx context.Context, name string, open openFunc) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context errors are returned as is.
	}

	r, err := open(ctx, name)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return r, err
	}

	r, err = open(ctx, name+".gz")
	if err == nil {
		return newGzipReader(name+".gz", r)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	r, err = open(ctx, name+".dz")
	if err == nil {
		return newDictzipReader(name+".dz", r)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func newGzipReader(name string, r io.ReadCloser) (io.ReadCloser, error) {
	z, err := gzip.NewReader(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	return &readCloser{Reader: z, closers: []io.Closer{z, r}}, nil
}

func newDictzipReader(name string, r io.ReadCloser) (io.ReadCloser, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		r.Close()
		return nil, fmt.Errorf("opening %q: file is not seekable", name)
	}
	z, err := dictzip.NewReader(rs)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	return &readCloser{Reader: z, closers: []io.Closer{r}}, nil
}

// readCloser reads from a decompressing reader and closes it along with the
// underlying file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

// Close implements [io.Closer.Close].
func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
