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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ninflang/go-ninf/pkg/ninf"
)

var varsCmd = &cobra.Command{
	Use:   "vars expression",
	Short: "list the free variables of an expression in canonical order.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		e := parseExprArg(args)
		names := ninf.FreeVars(e).Iter().Collect()

		rendered := make([]string, len(names))
		for i, n := range names {
			rendered[i] = ninf.VarName(n)
		}

		fmt.Println(strings.Join(rendered, ", "))
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
