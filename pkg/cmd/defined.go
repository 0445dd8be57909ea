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

var simplifyDefined bool

var definedCmd = &cobra.Command{
	Use:   "defined expression",
	Short: "print the well-definedness guard of an expression.",
	Long: `Parse an expression and print defined(e): the proposition whose truth is a
necessary condition for e to denote a value. Pass --simplify to additionally
run the result through the driver.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		e := parseExprArg(args)
		p := ninf.Defined(e)

		if simplifyDefined {
			p = ninf.Simplify(p)
		}

		fmt.Println(ninf.String(p))
	},
}

func init() {
	rootCmd.AddCommand(definedCmd)
	definedCmd.Flags().BoolVar(&simplifyDefined, "simplify", false, "simplify defined(e) before printing")
}
