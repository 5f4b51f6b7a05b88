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
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-watchword"
	"github.com/ianlewis/go-watchword/source"
	"github.com/ianlewis/go-watchword/wordlist"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeInvalidWord is the exit code when a word given to the check
	// command is not a valid word.
	ExitCodeInvalidWord

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWwutil is a parent error for all command errors.
var ErrWwutil = errors.New("wwutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWwutil)

// ErrInvalidInput indicates that some words given to a command were not
// valid words.
var ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrWwutil)

// ErrNoData indicates that no data directory could be found.
var ErrNoData = fmt.Errorf("%w: no data directory", ErrWwutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrInvalidInput):
		return ExitCodeInvalidWord
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"), versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrWwutil, err)
	}
	return nil
}

// newLogger returns the logger for commands. Only warnings and errors are
// shown unless --debug is given.
func newLogger(c *cli.Context) *log.Logger {
	level := log.WarnLevel
	if c.Bool("debug") {
		level = log.DebugLevel
	}
	return log.NewWithOptions(c.App.ErrWriter, log.Options{
		Prefix: c.App.Name,
		Level:  level,
	})
}

// newOpener returns the data source selected by the global flags. A bucket
// selects an S3 compatible object store. Otherwise the data directory is
// used, or the first existing default data location.
func newOpener(c *cli.Context, logger *log.Logger) (wordlist.Opener, error) {
	if bucket := c.String("s3-bucket"); bucket != "" {
		logger.Debug("using object store", "endpoint", c.String("s3-endpoint"), "bucket", bucket)
		m, err := source.DialMinio(&source.MinioOptions{
			Endpoint:  c.String("s3-endpoint"),
			AccessKey: c.String("s3-access-key"),
			SecretKey: c.String("s3-secret-key"),
			Insecure:  c.Bool("s3-insecure"),
		}, bucket, c.String("s3-prefix"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWwutil, err)
		}
		return m, nil
	}

	path := c.String("data-dir")
	if path == "" {
		for _, loc := range dataLocations() {
			if info, err := os.Stat(loc); err == nil && info.IsDir() {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return nil, fmt.Errorf("%w: use --data-dir", ErrNoData)
	}

	logger.Debug("using data directory", "path", path)
	d, err := source.OpenDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWwutil, err)
	}
	return d, nil
}

// openSession opens a session from the data source selected by the global
// flags.
func openSession(c *cli.Context) (*watchword.Session, error) {
	logger := newLogger(c)

	opener, err := newOpener(c, logger)
	if err != nil {
		return nil, err
	}

	s, err := watchword.Open(c.Context, opener, &watchword.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWwutil, err)
	}
	return s, nil
}

// selectVersion selects the version given by the --version flag, or the
// default version.
func selectVersion(c *cli.Context, s *watchword.Session) error {
	v := c.String("version")
	if v == "" {
		v = s.DefaultVersion()
	}
	if err := s.Select(c.Context, v); err != nil {
		return fmt.Errorf("%w: %w", ErrWwutil, err)
	}
	return nil
}

func newVersionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "version",
		Usage:   "use Watchword `VERSION` (default: the first listed version)",
		Aliases: []string{"r"},
	}
}

func newWatchwordApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Check words against the Watchword word lists.",
		Description: strings.Join([]string{
			"Watchword utility written in Go.",
			"http://github.com/ianlewis/go-watchword",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read Watchword data from `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"WATCHWORD_DATA_DIR"},
			},
			&cli.StringFlag{
				Name:    "s3-endpoint",
				Usage:   "read Watchword data from the object store at `HOST[:PORT]`",
				EnvVars: []string{"WATCHWORD_S3_ENDPOINT"},
				Value:   "s3.amazonaws.com",
			},
			&cli.StringFlag{
				Name:    "s3-bucket",
				Usage:   "read Watchword data from `BUCKET`",
				EnvVars: []string{"WATCHWORD_S3_BUCKET"},
			},
			&cli.StringFlag{
				Name:    "s3-prefix",
				Usage:   "object name `PREFIX` of Watchword data",
				EnvVars: []string{"WATCHWORD_S3_PREFIX"},
			},
			&cli.StringFlag{
				Name:    "s3-access-key",
				Usage:   "object store access `KEY`",
				EnvVars: []string{"WATCHWORD_S3_ACCESS_KEY"},
			},
			&cli.StringFlag{
				Name:    "s3-secret-key",
				Usage:   "object store secret `KEY`",
				EnvVars: []string{"WATCHWORD_S3_SECRET_KEY"},
			},
			&cli.BoolFlag{
				Name:               "s3-insecure",
				Usage:              "connect to the object store without TLS",
				EnvVars:            []string{"WATCHWORD_S3_INSECURE"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "print debug logs",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			newVersionsCommand(),
			newCheckCommand(),
			newCoverageCommand(),
		},
	}
}
