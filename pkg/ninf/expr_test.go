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

import "testing"

func TestExprEquals(t *testing.T) {
	if !ExprEquals(Add{va, vb}, Add{va, vb}) {
		t.Fatalf("expected structural equality")
	}

	if ExprEquals(Add{va, vb}, Add{vb, va}) {
		t.Fatalf("operand order should matter")
	}

	if ExprEquals(Add{va, vb}, Sub{va, vb}) {
		t.Fatalf("different constructors should not be equal")
	}
}

func TestVars(t *testing.T) {
	e := LenFromThenTo{Add{va, vb}, vc, Mul{vd, va}}
	vars := Vars(e)

	for _, n := range []Name{nameA, nameB, nameC, nameD} {
		if !vars.Test(uint(n)) {
			t.Fatalf("expected %s to be free in %s", VarName(n), exprStr(e))
		}
	}

	if vars.Test(uint(nameX)) {
		t.Fatalf("x should not occur in %s", exprStr(e))
	}
}

func TestFreeVars(t *testing.T) {
	e := LenFromThenTo{Add{vd, vb}, vc, Mul{va, vd}}

	got := FreeVars(e).Iter().Collect()
	want := []Name{nameA, nameB, nameC, nameD}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i, n := range want {
		if got[i] != n {
			t.Fatalf("got %v, want %v (canonical order)", got, want)
		}
	}
}

func TestSubstExpr(t *testing.T) {
	e := Add{va, Mul{va, vb}}
	got := SubstExpr(e, nameA, vc)

	want := Add{vc, Mul{vc, vb}}
	if !ExprEquals(got, want) {
		t.Fatalf("got %s, want %s", exprStr(got), exprStr(want))
	}
}

func TestIsConst(t *testing.T) {
	if _, ok := IsConst(va); ok {
		t.Fatalf("a variable is not a constant")
	}

	n, ok := IsConst(K{NatFromUint64(7)})
	if !ok || n.Cmp(NatFromUint64(7)) != 0 {
		t.Fatalf("expected constant 7")
	}
}
