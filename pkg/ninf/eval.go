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

import "math/big"

// Env is a finite variable assignment into ℕ∞, used by EvalExpr/EvalProp.
// It exists for testing the soundness and definedness-monotonicity
// properties against a reference semantics; the core simplifier itself
// never evaluates anything.
type Env map[Name]Nat

// EvalExpr evaluates e under env. The second return value is false exactly
// when e is undefined under env (division by zero, subtraction underflow,
// or a degenerate enumeration), mirroring Defined's side conditions.
func EvalExpr(env Env, e Expr) (Nat, bool) {
	switch e := e.(type) {
	case K:
		return e.Val, true
	case Var:
		n, ok := env[e.Name]
		return n, ok
	case Add:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok {
			return Nat{}, false
		}

		return x.Add(y), true
	case Sub:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok || y.IsInf() || x.Cmp(y) < 0 {
			return Nat{}, false
		}

		if x.IsInf() {
			return InfNat, true
		}

		xb, yb := x.BigInt(), y.BigInt()

		var diff big.Int

		diff.Sub(&xb, &yb)

		return NatFromBigInt(diff), true
	case Mul:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok {
			return Nat{}, false
		}

		return x.Mul(y), true
	case Exp:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok {
			return Nat{}, false
		}

		return evalExp(x, y), true
	case Div:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok || x.IsInf() || y.IsZero() {
			return Nat{}, false
		}

		if y.IsInf() {
			return NatFromUint64(0), true
		}

		xb, yb := x.BigInt(), y.BigInt()

		var q, r big.Int

		q.QuoRem(&xb, &yb, &r)

		return NatFromBigInt(q), true
	case Mod:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok || x.IsInf() || y.IsZero() {
			return Nat{}, false
		}

		if y.IsInf() {
			return x, true
		}

		xb, yb := x.BigInt(), y.BigInt()

		var q, r big.Int

		q.QuoRem(&xb, &yb, &r)

		return NatFromBigInt(r), true
	case Lg2:
		x, ok := EvalExpr(env, e.X)
		if !ok {
			return Nat{}, false
		}

		if x.IsInf() {
			return InfNat, true
		}

		xb := x.BigInt()
		if xb.Cmp(big.NewInt(1)) <= 0 {
			return NatFromUint64(0), true
		}

		var pred big.Int

		pred.Sub(&xb, big.NewInt(1))

		return NatFromUint64(uint64(pred.BitLen())), true
	case Width:
		x, ok := EvalExpr(env, e.X)
		if !ok {
			return Nat{}, false
		}

		if x.IsInf() {
			return InfNat, true
		}

		return NatFromUint64(uint64(bitLen(x))), true
	case Min:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok {
			return Nat{}, false
		}

		if x.Cmp(y) <= 0 {
			return x, true
		}

		return y, true
	case Max:
		x, y, ok := evalPair(env, e.X, e.Y)
		if !ok {
			return Nat{}, false
		}

		if x.Cmp(y) >= 0 {
			return x, true
		}

		return y, true
	case LenFromThen:
		x, y, ok := evalPair(env, e.X, e.Y)
		w, wok := EvalExpr(env, e.W)

		if !ok || !wok || x.IsInf() || y.IsInf() || w.IsInf() || x.Equals(y) {
			return Nat{}, false
		}

		return evalEnumLength(), true
	case LenFromThenTo:
		x, y, ok := evalPair(env, e.X, e.Y)
		z, zok := EvalExpr(env, e.Z)

		if !ok || !zok || x.IsInf() || y.IsInf() || z.IsInf() || x.Equals(y) {
			return Nat{}, false
		}

		return evalEnumLength(), true
	default:
		panic("ninf: unreachable Expr case")
	}
}

func evalPair(env Env, a, b Expr) (Nat, Nat, bool) {
	x, ok := EvalExpr(env, a)
	if !ok {
		return Nat{}, Nat{}, false
	}

	y, ok := EvalExpr(env, b)
	if !ok {
		return Nat{}, Nat{}, false
	}

	return x, y, true
}

func evalExp(x, y Nat) Nat {
	switch {
	case x.IsInf() && y.IsInf():
		return InfNat
	case x.IsInf() && y.IsZero():
		return NatFromUint64(1)
	case x.IsInf():
		return InfNat
	case y.IsInf() && x.IsZero():
		return NatFromUint64(0)
	case y.IsInf() && x.Equals(NatFromUint64(1)):
		return NatFromUint64(1)
	case y.IsInf():
		return InfNat
	default:
		xb, yb := x.BigInt(), y.BigInt()

		var out big.Int

		out.Exp(&xb, &yb, nil)

		return NatFromBigInt(out)
	}
}

// evalEnumLength is a placeholder reference semantics for the length of a
// [x, y .. ] / [x, y .. z] enumeration: it returns 0 for every enumeration.
// EvalExpr does not compute enumeration lengths, so its verdict on a
// proposition comparing such a length (for instance against 0, which is0
// rewrites into conditions on x, y and z or w) does not follow is0's rule.
func evalEnumLength() Nat {
	return NatFromUint64(0)
}

func bitLen(n Nat) int {
	b := n.BigInt()
	return b.BitLen()
}

// EvalProp evaluates p under env. The second return value is false when
// some subexpression is undefined under env.
func EvalProp(env Env, p Prop) (bool, bool) {
	switch p := p.(type) {
	case Fin:
		x, ok := EvalExpr(env, p.E)
		if !ok {
			return false, false
		}

		return !x.IsInf(), true
	case Eq:
		x, y, ok := evalPair(env, p.X, p.Y)
		if !ok {
			return false, false
		}

		return x.Equals(y), true
	case Ge:
		x, y, ok := evalPair(env, p.X, p.Y)
		if !ok {
			return false, false
		}

		return x.Cmp(y) >= 0, true
	case Gt:
		x, y, ok := evalPair(env, p.X, p.Y)
		if !ok {
			return false, false
		}

		return x.Cmp(y) > 0, true
	case SEq:
		x, y, ok := evalPair(env, p.X, p.Y)
		if !ok || x.IsInf() || y.IsInf() {
			return false, false
		}

		return x.Equals(y), true
	case SGt:
		x, y, ok := evalPair(env, p.X, p.Y)
		if !ok || x.IsInf() || y.IsInf() {
			return false, false
		}

		return x.Cmp(y) > 0, true
	case And:
		l, lok := EvalProp(env, p.P)
		r, rok := EvalProp(env, p.Q)

		if !lok || !rok {
			return false, false
		}

		return l && r, true
	case Or:
		l, lok := EvalProp(env, p.P)
		r, rok := EvalProp(env, p.Q)

		if !lok || !rok {
			return false, false
		}

		return l || r, true
	case Not:
		v, ok := EvalProp(env, p.P)
		if !ok {
			return false, false
		}

		return !v, true
	case True:
		return true, true
	case False:
		return false, true
	default:
		panic("ninf: unreachable Prop case")
	}
}
