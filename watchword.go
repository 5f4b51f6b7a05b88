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
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-watchword/dictionary"
	"github.com/ianlewis/go-watchword/internal/folding"
	"github.com/ianlewis/go-watchword/ref"
	"github.com/ianlewis/go-watchword/source"
	"github.com/ianlewis/go-watchword/wordlist"
)

var (
	// ErrStartupData indicates that the data required to start a session was
	// missing, empty or invalid.
	ErrStartupData = errors.New("startup data")

	// ErrNotReady indicates that a query was made before a version's index
	// was ready.
	ErrNotReady = errors.New("index not ready")
)

// State is the state of a Session.
type State int32

const (
	// StateUninitialized is the state before any data is loaded.
	StateUninitialized State = iota

	// StateDictionaryLoaded indicates that startup data is loaded but no
	// version has been selected.
	StateDictionaryLoaded

	// StateVersionSelected indicates that a version has been selected and
	// its index is being built.
	StateVersionSelected

	// StateIndexReady indicates that the selected version's index is ready
	// for queries.
	StateIndexReady
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDictionaryLoaded:
		return "dictionary loaded"
	case StateVersionSelected:
		return "version selected"
	case StateIndexReady:
		return "index ready"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Options are options for a Session.
type Options struct {
	// Logger receives progress messages. Messages are discarded if Logger is
	// nil.
	Logger *log.Logger

	// Concurrency limits the number of word lists read at once when building
	// an index. A value less than one means no limit.
	Concurrency int
}

// DefaultOptions is the default options for a Session.
var DefaultOptions = &Options{}

// Session checks words against one selected Watchword version at a time.
// Methods are safe for concurrent use. Select calls are serialized.
type Session struct {
	opener      wordlist.Opener
	logger      *log.Logger
	concurrency int

	// Immutable after Open.
	dict       *dictionary.Dictionary
	refs       ref.Map
	categories []wordlist.Category
	versions   []string

	// selectMu serializes Select.
	selectMu sync.Mutex

	// mu guards the fields below.
	mu         sync.RWMutex
	state      State
	index      *wordlist.Index
	requested  string
	display    string
	generation uint64
}

// Open loads the dictionary, categories, references and versions catalog
// using opener and returns a new Session in the StateDictionaryLoaded state.
// Open fails with an error wrapping ErrStartupData if any of the data is
// missing or empty, or if any version reference does not resolve.
func Open(ctx context.Context, opener wordlist.Opener, options *Options) (*Session, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opener:      opener,
		logger:      logger,
		concurrency: options.Concurrency,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return load(gctx, opener, source.DictionaryName, func(r io.Reader) (err error) {
			s.dict, err = dictionary.New(r)
			return err
		})
	})
	g.Go(func() error {
		return load(gctx, opener, source.FlagsName, func(r io.Reader) (err error) {
			s.categories, err = wordlist.ParseCategories(r)
			return err
		})
	})
	g.Go(func() error {
		return load(gctx, opener, source.ReferencesName, func(r io.Reader) (err error) {
			s.refs, err = ref.New(r)
			if err != nil {
				return err
			}
			return s.refs.Validate()
		})
	})
	g.Go(func() error {
		return load(gctx, opener, source.VersionsName, func(r io.Reader) (err error) {
			s.versions, err = ParseVersions(r)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		//nolint:wrapcheck // errors are wrapped by load.
		return nil, err
	}

	logger.Info("loaded dictionary", "words", s.dict.Len())
	logger.Info("loaded flags", "categories", len(s.categories))
	logger.Info("loaded references", "references", len(s.refs))
	logger.Info("loaded versions", "versions", len(s.versions))

	s.state = StateDictionaryLoaded
	return s, nil
}

// load opens the named data file and passes it to parse.
func load(ctx context.Context, opener wordlist.Opener, name string, parse func(io.Reader) error) error {
	r, err := opener.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupData, err)
	}
	defer r.Close()

	if err := parse(r); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStartupData, name, err)
	}
	return nil
}

// State returns the current state of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Versions returns the versions catalog in display order.
func (s *Session) Versions() []string {
	return slices.Clone(s.versions)
}

// DefaultVersion returns the first version in the catalog.
func (s *Session) DefaultVersion() string {
	return s.versions[0]
}

// Categories returns the word list categories.
func (s *Session) Categories() []wordlist.Category {
	return slices.Clone(s.categories)
}

// Resolve returns the canonical version for version.
func (s *Session) Resolve(version string) (string, error) {
	//nolint:wrapcheck // errors are returned as is.
	return s.refs.Resolve(version)
}

// DisplayString returns the display form of version, e.g. "1.0 -> 1.1".
func (s *Session) DisplayString(version string) (string, error) {
	//nolint:wrapcheck // errors are returned as is.
	return s.refs.DisplayString(version)
}

// Generation returns the number of indexes that have been installed. Results
// carry the generation they were computed against so that results computed
// before a version change can be recognized and discarded.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Select resolves version to its canonical version and builds its index.
// Queries fail with ErrNotReady until the build completes. If the build
// fails the previous index, if any, remains active.
//
// The version does not need to be in the versions catalog.
func (s *Session) Select(ctx context.Context, version string) error {
	s.selectMu.Lock()
	defer s.selectMu.Unlock()

	s.mu.Lock()
	prev := s.state
	if prev == StateUninitialized {
		s.mu.Unlock()
		return fmt.Errorf("%w: session is %s", ErrNotReady, prev)
	}
	s.state = StateVersionSelected
	s.mu.Unlock()

	restore := func() {
		s.mu.Lock()
		s.state = prev
		s.mu.Unlock()
	}

	canonical, err := s.refs.Resolve(version)
	if err != nil {
		restore()
		return fmt.Errorf("selecting version %q: %w", version, err)
	}
	display, err := s.refs.DisplayString(version)
	if err != nil {
		restore()
		return fmt.Errorf("selecting version %q: %w", version, err)
	}

	s.logger.Info("selected version", "version", version, "referenced", canonical, "display", display)

	idx, err := wordlist.Build(ctx, s.opener, canonical, s.categories, &wordlist.Options{
		Concurrency: s.concurrency,
		Logger:      s.logger,
	})
	if err != nil {
		restore()
		return fmt.Errorf("selecting version %q: %w", version, err)
	}

	s.mu.Lock()
	s.index = idx
	s.requested = version
	s.display = display
	s.generation++
	s.state = StateIndexReady
	s.mu.Unlock()

	return nil
}

// Result is the result of checking a word.
type Result struct {
	// Word is the normalized word that was checked.
	Word string

	// Version is the selected version and Canonical is the version whose
	// word lists were checked.
	Version   string
	Canonical string

	// Display is the display form of the version, e.g. "1.0 -> 1.1".
	Display string

	// Valid is true if the word is in the selected version's word lists.
	Valid bool

	// Flags are the sorted flags of a valid word. Flags is empty, not nil,
	// if the word is invalid or has no flags.
	Flags []string

	// Definition is the word's definition. HasDefinition is false for
	// invalid words and for words with no definition.
	Definition    string
	HasDefinition bool

	// Generation is the session generation the result was computed against.
	Generation uint64
}

// Check checks word against the selected version. Check returns ErrNotReady
// if no version's index is ready.
func (s *Session) Check(word string) (*Result, error) {
	s.mu.RLock()
	state, idx := s.state, s.index
	r := &Result{
		Version:    s.requested,
		Display:    s.display,
		Flags:      []string{},
		Generation: s.generation,
	}
	s.mu.RUnlock()

	if state != StateIndexReady {
		return nil, fmt.Errorf("%w: session is %s", ErrNotReady, state)
	}

	folded, err := folding.String(word)
	if err != nil {
		return nil, err //nolint:wrapcheck // errors are returned as is.
	}
	r.Word = folded
	r.Canonical = idx.Version()

	s.logger.Debug("checking word", "word", folded, "version", r.Display)

	e, ok := idx.Lookup(folded)
	if !ok {
		s.logger.Debug("invalid word", "word", folded)
		return r, nil
	}
	r.Valid = true
	r.Flags = e.Flags
	s.logger.Debug("valid word", "word", folded, "flags", r.Flags)

	if def, ok := s.dict.Definition(folded); ok {
		r.Definition = def
		r.HasDefinition = true
		s.logger.Debug("definition found", "word", folded)
	} else {
		s.logger.Debug("no definition found", "word", folded)
	}

	return r, nil
}

// Coverage is the proportion of a version's words that have a definition.
type Coverage struct {
	// Version is the selected version and Display its display form.
	Version string
	Display string

	// Words is the number of words in the version.
	Words int

	// Definitions is the number of the version's words with a definition.
	Definitions int
}

// Percent returns the percentage of words with a definition.
func (c *Coverage) Percent() float64 {
	if c.Words == 0 {
		return 0
	}
	return float64(c.Definitions) / float64(c.Words) * 100
}

// Coverage returns the definition coverage of the selected version. Coverage
// returns ErrNotReady if no version's index is ready.
func (s *Session) Coverage() (*Coverage, error) {
	s.mu.RLock()
	state, idx := s.state, s.index
	c := &Coverage{
		Version: s.requested,
		Display: s.display,
	}
	s.mu.RUnlock()

	if state != StateIndexReady {
		return nil, fmt.Errorf("%w: session is %s", ErrNotReady, state)
	}

	c.Words = idx.Len()
	c.Definitions = s.dict.Filter(idx.Contains).Len()
	return c, nil
}
