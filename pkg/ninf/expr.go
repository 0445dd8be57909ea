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
	"github.com/bits-and-blooms/bitset"

	"github.com/ninflang/go-ninf/pkg/util/collection/set"
)

// Expr is a symbolic arithmetic expression over ℕ∞.  It is a closed sum
// type: the only implementations are the ones in this package, and every
// function operating on an Expr is expected to exhaustively switch over
// them rather than rely on virtual dispatch.
type Expr interface {
	// sealed restricts implementations of Expr to this package.
	sealed()
}

// K is a constant extended-natural literal.
type K struct{ Val Nat }

// Var is a reference to a caller-supplied variable.
type Var struct{ Name Name }

// Add is x + y.
type Add struct{ X, Y Expr }

// Sub is x - y.
type Sub struct{ X, Y Expr }

// Mul is x * y.
type Mul struct{ X, Y Expr }

// Exp is x ^^ y.
type Exp struct{ X, Y Expr }

// Div is x `div` y.
type Div struct{ X, Y Expr }

// Mod is x `mod` y.
type Mod struct{ X, Y Expr }

// Lg2 is the ceiling base-2 logarithm of x.
type Lg2 struct{ X Expr }

// Width is the bit-width of x.
type Width struct{ X Expr }

// Min is the lesser of x and y.
type Min struct{ X, Y Expr }

// Max is the greater of x and y.
type Max struct{ X, Y Expr }

// LenFromThen is the length of the enumeration [x, y .. ] bounded to width w.
type LenFromThen struct{ X, Y, W Expr }

// LenFromThenTo is the length of the enumeration [x, y .. z].
type LenFromThenTo struct{ X, Y, Z Expr }

func (K) sealed()             {}
func (Var) sealed()           {}
func (Add) sealed()           {}
func (Sub) sealed()           {}
func (Mul) sealed()           {}
func (Exp) sealed()           {}
func (Div) sealed()           {}
func (Mod) sealed()           {}
func (Lg2) sealed()           {}
func (Width) sealed()         {}
func (Min) sealed()           {}
func (Max) sealed()           {}
func (LenFromThen) sealed()   {}
func (LenFromThenTo) sealed() {}

// zero, one and inf are the three constants every rule table keys off.
var (
	zero = K{NatFromUint64(0)}
	one  = K{NatFromUint64(1)}
	inf  = K{InfNat}
)

// IsConst reports whether e is a K literal, returning its value.
func IsConst(e Expr) (Nat, bool) {
	if k, ok := e.(K); ok {
		return k.Val, true
	}

	return Nat{}, false
}

// ExprEquals performs structural equality over Expr trees.
func ExprEquals(a, b Expr) bool {
	switch a := a.(type) {
	case K:
		b, ok := b.(K)
		return ok && a.Val.Equals(b.Val)
	case Var:
		b, ok := b.(Var)
		return ok && a.Name == b.Name
	case Add:
		b, ok := b.(Add)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Sub:
		b, ok := b.(Sub)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Mul:
		b, ok := b.(Mul)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Exp:
		b, ok := b.(Exp)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Div:
		b, ok := b.(Div)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Mod:
		b, ok := b.(Mod)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Lg2:
		b, ok := b.(Lg2)
		return ok && ExprEquals(a.X, b.X)
	case Width:
		b, ok := b.(Width)
		return ok && ExprEquals(a.X, b.X)
	case Min:
		b, ok := b.(Min)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case Max:
		b, ok := b.(Max)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y)
	case LenFromThen:
		b, ok := b.(LenFromThen)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y) && ExprEquals(a.W, b.W)
	case LenFromThenTo:
		b, ok := b.(LenFromThenTo)
		return ok && ExprEquals(a.X, b.X) && ExprEquals(a.Y, b.Y) && ExprEquals(a.Z, b.Z)
	default:
		panic("ninf: unreachable Expr case")
	}
}

// CloneExpr returns a deep copy of e.  Since every Expr implementation here
// is an immutable value type (no pointers into shared mutable state), a
// plain value copy already gives deep-copy semantics; this exists so
// callers that want to be explicit about ownership have a name for it.
func CloneExpr(e Expr) Expr {
	return e
}

// Vars collects the set of variable Names occurring anywhere within e.
func Vars(e Expr) *bitset.BitSet {
	vars := bitset.New(0)
	collectVars(e, vars)

	return vars
}

func collectVars(e Expr, out *bitset.BitSet) {
	switch e := e.(type) {
	case K:
		// no variables
	case Var:
		out.Set(uint(e.Name))
	case Add:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Sub:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Mul:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Exp:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Div:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Mod:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Lg2:
		collectVars(e.X, out)
	case Width:
		collectVars(e.X, out)
	case Min:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case Max:
		collectVars(e.X, out)
		collectVars(e.Y, out)
	case LenFromThen:
		collectVars(e.X, out)
		collectVars(e.Y, out)
		collectVars(e.W, out)
	case LenFromThenTo:
		collectVars(e.X, out)
		collectVars(e.Y, out)
		collectVars(e.Z, out)
	default:
		panic("ninf: unreachable Expr case")
	}
}

// FreeVars returns the free variable Names of e in canonical ascending
// order, for callers that report them to a user (the CLI's "vars" command)
// rather than merely testing membership; Vars above stays the bitset this
// package's own rules test membership against.
func FreeVars(e Expr) *set.SortedSet[Name] {
	vars := set.NewSortedSet[Name]()
	collectFreeVars(e, vars)

	return vars
}

func collectFreeVars(e Expr, out *set.SortedSet[Name]) {
	switch e := e.(type) {
	case K:
		// no variables
	case Var:
		out.Insert(e.Name)
	case Add:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Sub:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Mul:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Exp:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Div:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Mod:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Lg2:
		collectFreeVars(e.X, out)
	case Width:
		collectFreeVars(e.X, out)
	case Min:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case Max:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
	case LenFromThen:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
		collectFreeVars(e.W, out)
	case LenFromThenTo:
		collectFreeVars(e.X, out)
		collectFreeVars(e.Y, out)
		collectFreeVars(e.Z, out)
	default:
		panic("ninf: unreachable Expr case")
	}
}

// SubstExpr replaces every occurrence of Var{name} within e by replacement.
func SubstExpr(e Expr, name Name, replacement Expr) Expr {
	switch e := e.(type) {
	case K:
		return e
	case Var:
		if e.Name == name {
			return replacement
		}

		return e
	case Add:
		return Add{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Sub:
		return Sub{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Mul:
		return Mul{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Exp:
		return Exp{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Div:
		return Div{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Mod:
		return Mod{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Lg2:
		return Lg2{SubstExpr(e.X, name, replacement)}
	case Width:
		return Width{SubstExpr(e.X, name, replacement)}
	case Min:
		return Min{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case Max:
		return Max{SubstExpr(e.X, name, replacement), SubstExpr(e.Y, name, replacement)}
	case LenFromThen:
		return LenFromThen{
			SubstExpr(e.X, name, replacement),
			SubstExpr(e.Y, name, replacement),
			SubstExpr(e.W, name, replacement),
		}
	case LenFromThenTo:
		return LenFromThenTo{
			SubstExpr(e.X, name, replacement),
			SubstExpr(e.Y, name, replacement),
			SubstExpr(e.Z, name, replacement),
		}
	default:
		panic("ninf: unreachable Expr case")
	}
}
