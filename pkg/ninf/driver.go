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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ninflang/go-ninf/pkg/util/collection/iter"
)

// SimpStep performs one simplification step using the leftmost-outermost
// strategy: try the operator-specific rule at the current node; if it
// fails, recurse left; if that fails, recurse right; if both fail, report
// no step. The two strict predicates always report no step — they are the
// fixed points handed to the external decision procedure.
func SimpStep(p Prop) (Prop, bool) {
	if np, ok := stepAt(p); ok {
		log.WithField("from", String(p)).WithField("to", String(np)).Debug("ninf: step")

		return np, true
	}

	switch p := p.(type) {
	case And:
		if np, ok := SimpStep(p.P); ok {
			return And{np, p.Q}, true
		}

		if np, ok := SimpStep(p.Q); ok {
			return And{p.P, np}, true
		}

		return nil, false
	case Or:
		if np, ok := SimpStep(p.P); ok {
			return Or{np, p.Q}, true
		}

		if np, ok := SimpStep(p.Q); ok {
			return Or{p.P, np}, true
		}

		return nil, false
	case Not:
		if np, ok := SimpStep(p.P); ok {
			return Not{np}, true
		}

		return nil, false
	default:
		return nil, false
	}
}

// stepAt tries the operator-specific rule at p itself, without recursing.
func stepAt(p Prop) (Prop, bool) {
	switch p := p.(type) {
	case Not:
		return notRule(p.P)
	case And:
		return andRule(p.P, p.Q)
	case Or:
		return orRule(p.P, p.Q)
	case Fin:
		return isFin(p.E)
	case Eq:
		return isEqStep(p.X, p.Y)
	case Gt:
		return isGtStep(p.X, p.Y), true
	case Ge, SEq, SGt, True, False:
		return nil, false
	default:
		panic("ninf: unreachable Prop case")
	}
}

// notRule pushes a negation inward or decides it outright.
func notRule(p Prop) (Prop, bool) {
	switch p := p.(type) {
	case True:
		return False{}, true
	case False:
		return True{}, true
	case Not:
		return p.P, true
	case And:
		return Or{Not{p.P}, Not{p.Q}}, true
	case Or:
		return And{Not{p.P}, Not{p.Q}}, true
	case Ge:
		return Gt{p.Y, p.X}, true
	case Gt:
		return Ge{p.Y, p.X}, true
	case Eq:
		if isLitInf(p.X) {
			return Fin{p.Y}, true
		}

		if isLitInf(p.Y) {
			return Fin{p.X}, true
		}

		return nil, false
	default:
		// not(fin _), not of the strict predicates: unchanged.
		return nil, false
	}
}

// andRule implements: True ∧ q = q; False ∧ _ = False; right-association of
// conjunction chains; and finiteness propagation when one conjunct is
// fin(Var x) or ¬fin(Var x). It additionally propagates a plain x :== t
// conjunct (x a variable not occurring in t) through the rest of the
// conjunction by substitution, per the let-binding extension noted as an
// open rule-completeness question; this never disturbs a conjunct where the
// substitution is a no-op, so it cannot loop. The substitution duplicates t
// at every occurrence of x in q, so it is only taken when boundedGrowth
// confirms the result stays within substGrowthFactor of q's own size: the
// step-count cap in SimpStepsIter is sized from the original input before
// any such growth, and an unchecked multi-occurrence substitution could
// otherwise outrun it.
func andRule(p, q Prop) (Prop, bool) {
	switch pp := p.(type) {
	case True:
		return q, true
	case False:
		return False{}, true
	case And:
		return And{pp.P, And{pp.Q, q}}, true
	}

	if value, name, ok := finVar(p); ok {
		if nq, changed := propagateFin(q, name, value); changed {
			return And{p, nq}, true
		}

		return nil, false
	}

	if eq, ok := p.(Eq); ok {
		if v, isVar := eq.X.(Var); isVar && !containsVar(eq.Y, v.Name) {
			if nq, changed := substPropExpr(q, v.Name, eq.Y); changed && boundedGrowth(q, nq) {
				return And{p, nq}, true
			}
		} else if v, isVar := eq.Y.(Var); isVar && !containsVar(eq.X, v.Name) {
			if nq, changed := substPropExpr(q, v.Name, eq.X); changed && boundedGrowth(q, nq) {
				return And{p, nq}, true
			}
		}
	}

	return nil, false
}

// orRule implements the duals of the and-rule's constant cases; there is no
// propagation for disjunction.
func orRule(p, q Prop) (Prop, bool) {
	switch p.(type) {
	case True:
		return True{}, true
	case False:
		return q, true
	}

	return nil, false
}

// finVar reports whether p is fin(Var x) or ¬fin(Var x), returning the
// truth value fin(Var x) should be propagated to and the variable's name.
func finVar(p Prop) (value bool, name Name, ok bool) {
	switch p := p.(type) {
	case Fin:
		if v, isVar := p.E.(Var); isVar {
			return true, v.Name, true
		}
	case Not:
		if f, isFin := p.P.(Fin); isFin {
			if v, isVar := f.E.(Var); isVar {
				return false, v.Name, true
			}
		}
	}

	return false, 0, false
}

// propagateFin rewrites every occurrence of fin(Var name) within q to its
// decided truth value, descending through And/Or/Not. It reports whether
// anything changed.
func propagateFin(q Prop, name Name, value bool) (Prop, bool) {
	switch q := q.(type) {
	case Fin:
		if v, ok := q.E.(Var); ok && v.Name == name {
			return boolToProp(value), true
		}

		return q, false
	case And:
		l, lc := propagateFin(q.P, name, value)
		r, rc := propagateFin(q.Q, name, value)

		if lc || rc {
			return And{l, r}, true
		}

		return q, false
	case Or:
		l, lc := propagateFin(q.P, name, value)
		r, rc := propagateFin(q.Q, name, value)

		if lc || rc {
			return Or{l, r}, true
		}

		return q, false
	case Not:
		inner, changed := propagateFin(q.P, name, value)
		if changed {
			return Not{inner}, true
		}

		return q, false
	default:
		return q, false
	}
}

// maxStepsFactor bounds simpSteps/Simplify proportional to the square of
// the input's syntactic size, per the driver's termination guidance.
const maxStepsFactor = 64

// substGrowthFactor bounds how far andRule's let-binding substitution may
// grow a conjunct relative to its pre-substitution size.
const substGrowthFactor = 4

// boundedGrowth reports whether after (the result of substituting into
// before) stays within substGrowthFactor of before's own syntactic size.
func boundedGrowth(before, after Prop) bool {
	return syntacticSize(after) <= substGrowthFactor*syntacticSize(before)+1
}

// Simplify returns the idempotent normal form of p, or p itself if no step
// applies. It pulls SimpStepsIter to its end without materialising the
// whole trace, since only the final form is wanted.
func Simplify(p Prop) Prop {
	cur := p
	it := SimpStepsIter(p)

	for it.HasNext() {
		cur = it.Next()
	}

	return cur
}

// SimpSteps returns the finite sequence of intermediate forms produced by
// repeatedly applying SimpStep, stopping the first time it reports no step.
// It is a diagnostic trace: the last element equals Simplify(p) only if
// SimpStep(Simplify(p)) also reports no step, which holds for any p that
// terminates within the cap below. This drains SimpStepsIter into a slice;
// callers who want to stop early (e.g. the CLI's "steps" command bounding
// output by --max-steps) should pull SimpStepsIter directly instead.
func SimpSteps(p Prop) []Prop {
	return SimpStepsIter(p).Collect()
}

// SimpStepsIter returns the lazy sequence of intermediate forms produced by
// repeatedly applying SimpStep: each Next() call computes one more step
// rather than the whole trace up front, matching the "lazy finite sequence"
// entry point of the driver's interface.
func SimpStepsIter(p Prop) iter.Iterator[Prop] {
	return &stepIterator{
		cur:     p,
		stepCap: maxStepsFactor*syntacticSize(p)*syntacticSize(p) + maxStepsFactor,
	}
}

// stepIterator pulls one SimpStep application per Next() call.
type stepIterator struct {
	cur      Prop
	next     Prop
	hasNext  bool
	advanced bool
	steps    uint
	stepCap  uint
}

func (p *stepIterator) lookahead() {
	if p.advanced {
		return
	}

	p.advanced = true

	np, ok := SimpStep(p.cur)
	if !ok {
		p.hasNext = false
		return
	}

	p.steps++
	if p.steps > p.stepCap {
		panic(fmt.Sprintf("ninf: step-count cap exceeded simplifying %s (last form: %s)", String(p.cur), String(np)))
	}

	p.next, p.hasNext = np, true
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *stepIterator) HasNext() bool {
	p.lookahead()
	return p.hasNext
}

// Next returns the next item, and advances the iterator.
//
//nolint:revive
func (p *stepIterator) Next() Prop {
	p.lookahead()

	v := p.next
	p.cur = v
	p.advanced = false

	return v
}

// Collect allocates a new array containing all items of this iterator.
//
//nolint:revive
func (p *stepIterator) Collect() []Prop {
	return iter.Collect[Prop](p)
}
