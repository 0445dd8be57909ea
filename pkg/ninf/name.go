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
package ninf

// Name is an opaque variable identifier.  Names are supplied by the caller
// (the type-checker's fresh-name generator); this package never allocates
// one.  Names are compared for equality only, though they do admit a total
// order so they can live in a sorted set.
type Name uint

// Cmp orders Names numerically, the same order in which FreeVars reports
// them.
func (n Name) Cmp(o Name) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	default:
		return 0
	}
}
