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

// Package watchword implements a library for checking words against the
// Watchword word lists in pure Go.
//
// Each Watchword version has a word list for each category (e.g. "badlist",
// "cleanlist"). A word is valid in a version if it appears in any of that
// version's word lists, and it receives the flags of every category it
// appears in. Versions that are pure restatements of earlier versions
// reference them rather than having word lists of their own.
//
// A [Session] loads the data once and then checks words against one selected
// version at a time:
//  1. [Open] loads the dictionary, categories, references and versions.
//  2. [Session.Select] resolves a version to its canonical version and builds
//     that version's index.
//  3. [Session.Check] checks words against the index.
//
// Definitions come from a single dictionary shared by all versions and are
// only reported for words that are valid in the selected version.
package watchword
