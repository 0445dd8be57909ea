// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ninflang/go-ninf/pkg/ninf"
)

const defaultTerminalWidth = 80

var stepsCmd = &cobra.Command{
	Use:   "steps proposition",
	Short: "print the simpSteps trace of a proposition's simplification.",
	Long: `Parse a proposition, then print one line per intermediate form the driver
produces on the way to its normal form, wrapping long lines to the terminal
width (or --max-steps entries, whichever is reached first).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		p := parsePropArg(args)
		width := terminalWidth()
		maxSteps := getUint(cmd, "max-steps")

		it := ninf.SimpStepsIter(p)

		for i := uint(0); it.HasNext(); i++ {
			if maxSteps != 0 && i >= maxSteps {
				fmt.Printf("... (truncated at %d steps)\n", maxSteps)
				break
			}

			fmt.Println(wrap(ninf.String(it.Next()), width))
		}
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

// terminalWidth detects stdout's width, falling back to 80 columns when
// stdout is not a TTY (a pipe, a file, a test harness).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}

	return w
}

// wrap breaks s into width-wide lines on word boundaries, joined by
// newline-plus-indent, without splitting inside a word.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}

	var (
		out  []byte
		line int
	)

	words := splitSpaces(s)

	for i, w := range words {
		sep := " "
		if i == 0 {
			sep = ""
		}

		if line+len(sep)+len(w) > width && line > 0 {
			out = append(out, '\n', ' ', ' ')
			line = 0
			sep = ""
		}

		out = append(out, sep...)
		out = append(out, w...)
		line += len(sep) + len(w)
	}

	return string(out)
}

func splitSpaces(s string) []string {
	var (
		words []string
		cur   []byte
	)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for _, r := range s {
		if r == ' ' {
			flush()
		} else {
			cur = append(cur, string(r)...)
		}
	}

	flush()

	return words
}
