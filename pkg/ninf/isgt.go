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

// IsGt rewrites x :> y. Unlike IsEq this always succeeds: every shape has a
// rule.
func IsGt(x, y Expr) Prop {
	return isGtStep(x, y)
}

func isGtStep(x, y Expr) Prop {
	if kx, okx := IsConst(x); okx {
		if ky, oky := IsConst(y); oky {
			return boolToProp(kx.Cmp(ky) > 0)
		}
	}

	if isZeroConst(y) {
		return Not{Eq{x, zero}}
	}

	return natOp(gtAtom, x, y)
}
