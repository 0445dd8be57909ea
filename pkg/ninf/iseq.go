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

// IsEq rewrites x :== y per the case table in isEqStep. It is exposed
// publicly (mirroring spec §6) for callers building constraints directly in
// simplified form. ok is false only when one side is the literal 0 and the
// other is a variable or a Mod, the shapes for which is0 has no rule.
func IsEq(x, y Expr) (Prop, bool) {
	return isEqStep(x, y)
}

func isEqStep(x, y Expr) (Prop, bool) {
	if kx, okx := IsConst(x); okx {
		if ky, oky := IsConst(y); oky {
			return boolToProp(kx.Equals(ky)), true
		}
	}

	if isZeroConst(x) {
		return is0(y)
	}

	if isZeroConst(y) {
		return is0(x)
	}

	if isLitInf(x) {
		return Not{Fin{y}}, true
	}

	if isLitInf(y) {
		return Not{Fin{x}}, true
	}

	return natOp(eqAtom, x, y), true
}
