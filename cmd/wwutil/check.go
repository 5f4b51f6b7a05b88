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
	"fmt"
	"io"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-watchword"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check words against a Watchword version",
		UsageText: "check [--version VERSION] WORD...",
		Flags: []cli.Flag{
			newVersionFlag(),
		},
		Action: func(c *cli.Context) error {
			words := c.Args().Slice()
			if len(words) == 0 {
				return fmt.Errorf("%w: no words given", ErrFlagParse)
			}

			s, err := openSession(c)
			if err != nil {
				return err
			}
			if err := selectVersion(c, s); err != nil {
				return err
			}

			var invalid []string
			printed := 0
			for _, word := range words {
				folded, err := watchword.ValidateWord(word)
				if err != nil {
					fmt.Fprintln(c.App.ErrWriter, err)
					invalid = append(invalid, word)
					continue
				}

				r, err := s.Check(folded)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrWwutil, err)
				}

				if printed > 0 {
					fmt.Fprintln(c.App.Writer)
				}
				if err := printResult(c.App.Writer, r); err != nil {
					return err
				}
				printed++
			}

			if len(invalid) > 0 {
				return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(invalid, ", "))
			}
			return nil
		},
	}
}

// formatFlags returns the flags of a result for display.
func formatFlags(flags []string) string {
	if len(flags) == 0 {
		return "(none)"
	}
	return strings.Join(flags, ", ")
}

func printResult(w io.Writer, r *watchword.Result) error {
	var b strings.Builder
	if !r.Valid {
		fmt.Fprintf(&b, "%s is not valid in Watchword %s\n", r.Word, r.Display)
	} else {
		fmt.Fprintf(&b, "%s is valid in Watchword %s\n", r.Word, r.Display)
		fmt.Fprintf(&b, "Flags: %s\n", formatFlags(r.Flags))
		if r.HasDefinition {
			fmt.Fprintf(&b, "Definition: %s\n", strings.TrimSpace(html2text.HTML2Text(r.Definition)))
		} else {
			b.WriteString("Definition: (none)\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: printing result: %w", ErrWwutil, err)
	}
	return nil
}
