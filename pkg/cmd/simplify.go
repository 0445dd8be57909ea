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

	"github.com/spf13/cobra"

	"github.com/ninflang/go-ninf/pkg/ninf"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify proposition",
	Short: "simplify a proposition over ℕ∞ to its normal form.",
	Long: `Parse a proposition in printer syntax (e.g. "fin (a + b)"), simplify it to a
fixpoint, and print the result.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		p := parsePropArg(args)
		fmt.Println(ninf.String(ninf.Simplify(p)))
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}
