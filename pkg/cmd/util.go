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

	"github.com/ninflang/go-ninf/pkg/ninf"
)

// getFlag fetches an expected bool flag, or exits with a diagnostic if it
// was never registered — a programmer error, not a user one.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getUint fetches an expected uint flag.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getString fetches an expected string flag.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parsePropArg parses a single positional argument as printer syntax, or
// prints the syntax error and exits. Parse failures are user errors (a
// malformed command-line argument), unlike the panics pkg/ninf itself uses
// for programmer errors, so they are reported and exited here rather than
// propagated as panics.
func parsePropArg(args []string) ninf.Prop {
	if len(args) != 1 {
		fmt.Println("expected exactly one proposition argument")
		os.Exit(2)
	}

	p, err := ninf.Parse(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return p
}

// parseExprArg parses a single positional argument as an expression.
func parseExprArg(args []string) ninf.Expr {
	if len(args) != 1 {
		fmt.Println("expected exactly one expression argument")
		os.Exit(2)
	}

	e, err := ninf.ParseExpr(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return e
}
