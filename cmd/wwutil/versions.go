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

func newVersionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "versions",
		Usage:     "List Watchword versions",
		UsageText: "versions",
		Action: func(c *cli.Context) error {
			s, err := openSession(c)
			if err != nil {
				return err
			}

			tbl := table.New("Version", "Watchword", "Default").WithWriter(c.App.Writer)
			for i, v := range s.Versions() {
				display, err := s.DisplayString(v)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrWwutil, err)
				}
				def := ""
				if i == 0 {
					def = "*"
				}
				tbl.AddRow(v, display, def)
			}
			tbl.Print()

			return nil
		},
	}
}
