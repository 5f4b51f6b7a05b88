// Copyright 2021 Google LLC
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

// Package testutil implements helpers for writing Watchword test data.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ianlewis/go-dictzip"
)

// Data is a set of Watchword data files. Nil fields are not written.
type Data struct {
	// Dictionary is written as dictionary_combined.json.
	Dictionary map[string]string

	// Flags is written as watchword_flags.json.
	Flags map[string][]string

	// References is written as watchword_references.json. A nil parent is
	// written as null.
	References map[string]*string

	// Versions is written as watchword_versions.json.
	Versions []string

	// Wordlists maps a canonical version and category, as
	// "<version>_<category>", to the word list contents.
	Wordlists map[string]string
}

// Ref returns a pointer to s for use in Data.References.
func Ref(s string) *string {
	return &s
}

// WriteOptions are options for writing data files to disk.
type WriteOptions struct {
	// DictZip indicates that word lists should be compressed with DictZip
	// and written with a '.dz' extension.
	DictZip bool
}

// Files returns the data files as a map of file name to contents.
func (d *Data) Files(t *testing.T) map[string][]byte {
	t.Helper()

	files := map[string][]byte{}
	add := func(name string, v any) {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		files[name] = b
	}

	if d.Dictionary != nil {
		add("dictionary_combined.json", d.Dictionary)
	}
	if d.Flags != nil {
		add("watchword_flags.json", d.Flags)
	}
	if d.References != nil {
		add("watchword_references.json", d.References)
	}
	if d.Versions != nil {
		add("watchword_versions.json", d.Versions)
	}
	for name, contents := range d.Wordlists {
		files["wordlists/"+name+".txt"] = []byte(contents)
	}

	return files
}

// MapFS returns the data files as an in-memory file system.
func (d *Data) MapFS(t *testing.T) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, b := range d.Files(t) {
		fsys[name] = &fstest.MapFile{Data: b, Mode: 0o600}
	}
	return fsys
}

// WriteDir writes the data files to a new temporary directory and returns
// its path. The directory is removed when the test completes.
func (d *Data) WriteDir(t *testing.T, opts *WriteOptions) string {
	t.Helper()
	if opts == nil {
		opts = &WriteOptions{}
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "wordlists"), 0o700); err != nil {
		t.Fatal(err)
	}

	for name, b := range d.Files(t) {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if opts.DictZip && filepath.Ext(name) == ".txt" {
			writeDictZip(t, path+".dz", b)
			continue
		}
		if err := os.WriteFile(path, b, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func writeDictZip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}
