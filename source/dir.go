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

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Dir reads data files from a file system.
type Dir struct {
	fsys fs.FS
}

// NewDir returns a Dir that reads data files from fsys.
func NewDir(fsys fs.FS) *Dir {
	return &Dir{
		fsys: fsys,
	}
}

// OpenDir returns a Dir that reads data files from the directory at path.
func OpenDir(path string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening data directory %q: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening data directory %q: not a directory", path)
	}
	return NewDir(os.DirFS(path)), nil
}

// Open opens the named data file. If the file does not exist then a gzip
// compressed (.gz) and then a dictzip compressed (.dz) version of the file
// are tried. Open returns an error wrapping ErrNotFound if none exist.
func (d *Dir) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return openAny(ctx, name, d.open)
}

func (d *Dir) open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("opening %q: is a directory", name)
	}

	return f, nil
}
