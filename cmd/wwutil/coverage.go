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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func newCoverageCommand() *cli.Command {
	return &cli.Command{
		Name:      "coverage",
		Usage:     "Show how many words of a Watchword version have definitions",
		UsageText: "coverage [--version VERSION]",
		Flags: []cli.Flag{
			newVersionFlag(),
		},
		Action: func(c *cli.Context) error {
			s, err := openSession(c)
			if err != nil {
				return err
			}
			if err := selectVersion(c, s); err != nil {
				return err
			}

			cov, err := s.Coverage()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWwutil, err)
			}

			tbl := table.New("Watchword", "Words", "Definitions", "Coverage").WithWriter(c.App.Writer)
			tbl.AddRow(cov.Display, cov.Words, cov.Definitions, fmt.Sprintf("%.2f%%", cov.Percent()))
			tbl.Print()

			return nil
		},
	}
}
