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

import (
	"strings"
	"testing"
)

var (
	nameA = Name(0)
	nameB = Name(1)
	nameC = Name(2)
	nameD = Name(3)
	nameX = Name(23)
	nameY = Name(24)

	va = Var{nameA}
	vb = Var{nameB}
	vc = Var{nameC}
	vd = Var{nameD}
	vx = Var{nameX}
	vy = Var{nameY}
)

// S1: a plain variable equality has no rule, but an additive one decomposes.
func TestScenarioS1(t *testing.T) {
	if _, ok := SimpStep(Eq{va, zero}); ok {
		t.Fatalf("expected no step for a bare variable equality")
	}

	got := Simplify(Eq{Add{va, vb}, zero})
	if String(got) != "a == 0 && b == 0" {
		t.Fatalf("got %q", String(got))
	}
}

// S2: fin(a + b) decomposes and reaches a fixpoint immediately.
func TestScenarioS2(t *testing.T) {
	got := Simplify(Fin{Add{va, vb}})
	if String(got) != "fin a && fin b" {
		t.Fatalf("got %q", String(got))
	}
}

// S3: a natOp-bridged equality over a term mixing ∞ literals with variables
// must end up with no inf subterm anywhere in the result.
func TestScenarioS3(t *testing.T) {
	ab := Mul{va, vb}
	input := Eq{Min{ab, Mul{inf, Mul{inf, Add{vc, vd}}}}, ab}

	got := Simplify(input)

	if strings.Contains(String(got), "inf") {
		t.Fatalf("result still mentions inf: %s", String(got))
	}
}

// S4: not (x == inf) collapses directly to fin x.
func TestScenarioS4(t *testing.T) {
	got, ok := SimpStep(Not{Eq{vx, inf}})
	if !ok {
		t.Fatalf("expected a step")
	}

	if String(got) != "fin x" {
		t.Fatalf("got %q", String(got))
	}
}

// S5: not (x >= y) first becomes y > x, then expands via the :> rule.
func TestScenarioS5(t *testing.T) {
	step1, ok := SimpStep(Not{Ge{vx, vy}})
	if !ok {
		t.Fatalf("expected a step")
	}

	if String(step1) != "y > x" {
		t.Fatalf("step 1: got %q", String(step1))
	}

	step2, ok := SimpStep(step1)
	if !ok {
		t.Fatalf("expected a second step")
	}

	want := "fin x && (y == inf || fin y && y :>: x)"
	if String(step2) != want {
		t.Fatalf("step 2: got %q, want %q", String(step2), want)
	}
}

// S6: finiteness of a variable propagates into a sibling conjunct.
func TestScenarioS6(t *testing.T) {
	got := Simplify(And{Fin{va}, Fin{Add{va, vb}}})
	if String(got) != "fin a && fin b" {
		t.Fatalf("got %q", String(got))
	}
}

// S7: defined(Div x y) reduces to its side condition once the vacuous
// Defined(Var) conjuncts collapse away.
func TestScenarioS7(t *testing.T) {
	got := Simplify(Defined(Div{vx, vy}))
	if String(got) != "fin x && not (y == 0)" {
		t.Fatalf("got %q", String(got))
	}
}

// Property 1/2: idempotence and fixpoint termination over the scenario set.
func TestSimplifyIsIdempotentAndTerminates(t *testing.T) {
	inputs := []Prop{
		Eq{va, zero},
		Eq{Add{va, vb}, zero},
		Fin{Add{va, vb}},
		Not{Eq{vx, inf}},
		Not{Ge{vx, vy}},
		And{Fin{va}, Fin{Add{va, vb}}},
		Defined(Div{vx, vy}),
		Defined(LenFromThenTo{vx, vy, vc}),
	}

	for _, in := range inputs {
		once := Simplify(in)
		twice := Simplify(once)

		if !PropEquals(once, twice) {
			t.Fatalf("not idempotent: simplify(%s) = %s, simplify(that) = %s", String(in), String(once), String(twice))
		}

		if _, ok := SimpStep(once); ok {
			t.Fatalf("not a fixpoint: %s still has a step", String(once))
		}
	}
}

// Property 7: finiteness propagation leaves no occurrence of fin(Var a)
// outside the leading conjunct.
func TestVariableFinitenessPropagation(t *testing.T) {
	got := Simplify(And{Fin{va}, Fin{Add{va, vb}}})

	and, ok := got.(And)
	if !ok {
		t.Fatalf("expected a top-level conjunction, got %s", String(got))
	}

	if !occursOnlyAsLeadingFin(and.Q, nameA) {
		t.Fatalf("fin a leaked into the trailing conjunct: %s", String(got))
	}

	gotNeg := Simplify(And{Not{Fin{va}}, Fin{Add{va, vb}}})

	andNeg, ok := gotNeg.(And)
	if !ok {
		t.Fatalf("expected a top-level conjunction, got %s", String(gotNeg))
	}

	if !occursOnlyAsLeadingFin(andNeg.Q, nameA) {
		t.Fatalf("not (fin a) leaked into the trailing conjunct: %s", String(gotNeg))
	}
}

func occursOnlyAsLeadingFin(p Prop, name Name) bool {
	switch p := p.(type) {
	case Fin:
		v, ok := p.E.(Var)
		return !(ok && v.Name == name)
	case And:
		return occursOnlyAsLeadingFin(p.P, name) && occursOnlyAsLeadingFin(p.Q, name)
	case Or:
		return occursOnlyAsLeadingFin(p.P, name) && occursOnlyAsLeadingFin(p.Q, name)
	case Not:
		return occursOnlyAsLeadingFin(p.P, name)
	default:
		return true
	}
}

// The let-binding extension to andRule must still fire when the bound
// variable occurs more than once downstream (duplicating the bound term at
// each occurrence), and the resulting growth must still resolve to a
// fixpoint within the driver's step-count cap.
func TestAndRuleLetBindingSubstitution(t *testing.T) {
	input := And{Eq{vx, Add{va, vb}}, Fin{Add{vx, vx}}}

	step1, ok := SimpStep(input)
	if !ok {
		t.Fatalf("expected a step")
	}

	want := "x == a + b && fin (a + b + a + b)"
	if String(step1) != want {
		t.Fatalf("got %q, want %q", String(step1), want)
	}

	got := Simplify(input)
	if _, ok := SimpStep(got); ok {
		t.Fatalf("not a fixpoint: %s still has a step", String(got))
	}

	if twice := Simplify(got); !PropEquals(got, twice) {
		t.Fatalf("not idempotent: simplify(%s) = %s", String(got), String(twice))
	}
}

// SimpStepsIter must produce the same trace as SimpSteps but pulled lazily:
// taking only the first step must not force the rest.
func TestSimpStepsIterIsLazy(t *testing.T) {
	p := Fin{Add{va, Add{vb, vc}}}

	eager := SimpSteps(p)
	if len(eager) < 2 {
		t.Fatalf("expected a multi-step trace, got %d steps", len(eager))
	}

	it := SimpStepsIter(p)
	if !it.HasNext() {
		t.Fatalf("expected a first step")
	}

	first := it.Next()
	if !PropEquals(first, eager[0]) {
		t.Fatalf("first lazy step %s != first eager step %s", String(first), String(eager[0]))
	}

	rest := it.Collect()
	if len(rest) != len(eager)-1 {
		t.Fatalf("got %d remaining steps, want %d", len(rest), len(eager)-1)
	}

	for i, p := range rest {
		if !PropEquals(p, eager[i+1]) {
			t.Fatalf("step %d: got %s, want %s", i+1, String(p), String(eager[i+1]))
		}
	}
}

func TestSimpStepsMatchesSimplify(t *testing.T) {
	p := Fin{Add{va, vb}}
	steps := SimpSteps(p)

	if len(steps) == 0 {
		t.Fatalf("expected at least one step")
	}

	if !PropEquals(steps[len(steps)-1], Simplify(p)) {
		t.Fatalf("SimpSteps and Simplify disagree: %s vs %s", String(steps[len(steps)-1]), String(Simplify(p)))
	}
}
