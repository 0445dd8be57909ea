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

func TestPropEquals(t *testing.T) {
	if !PropEquals(And{Fin{va}, Fin{vb}}, And{Fin{va}, Fin{vb}}) {
		t.Fatalf("expected structural equality")
	}

	if PropEquals(And{Fin{va}, Fin{vb}}, Or{Fin{va}, Fin{vb}}) {
		t.Fatalf("different connectives should not be equal")
	}
}

func TestSubstPropExprReportsNoOp(t *testing.T) {
	q := Fin{vb}

	_, changed := substPropExpr(q, nameA, vc)
	if changed {
		t.Fatalf("substituting an absent variable must report no change")
	}

	got, changed := substPropExpr(q, nameB, vc)
	if !changed {
		t.Fatalf("substituting a present variable must report a change")
	}

	if !PropEquals(got, Fin{vc}) {
		t.Fatalf("got %s", String(got))
	}
}

func TestSyntacticSize(t *testing.T) {
	p := And{Fin{va}, Eq{vb, zero}}

	if syntacticSize(p) != 1+1+1+1+1+1 {
		t.Fatalf("unexpected size %d", syntacticSize(p))
	}
}

func TestContainsVar(t *testing.T) {
	if containsVar(Add{va, vb}, nameC) {
		t.Fatalf("c does not occur")
	}

	if !containsVar(Add{va, vb}, nameA) {
		t.Fatalf("a occurs")
	}
}
