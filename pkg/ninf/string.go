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

import "strconv"

// VarName renders a Name using the canonical infinite stream a, b, ..., z,
// a1, b1, ..., z1, a2, ...: the i-th name is (char 'a' + (i mod 26)) followed
// by show(i/26) unless that is zero.
func VarName(n Name) string {
	i := uint(n)
	letter := string(rune('a' + i%26))

	if i/26 == 0 {
		return letter
	}

	return letter + strconv.FormatUint(uint64(i/26), 10)
}

// precedence levels for the infix arithmetic operators; Div/Mod/Lg2/Width/
// Min/Max/LenFromThen*/LenFromThenTo are rendered as unambiguous function
// applications and need no precedence handling.
const (
	precAdd = 1
	precMul = 2
	precExp = 3
	precAtom = 4
)

// String renders p in the deterministic printer syntax used throughout
// this package's tests and diagnostics.
func String(p Prop) string {
	switch p := p.(type) {
	case Fin:
		return "fin " + exprAtom(p.E)
	case Eq:
		return exprStr(p.X) + " == " + exprStr(p.Y)
	case Ge:
		return exprStr(p.X) + " >= " + exprStr(p.Y)
	case Gt:
		return exprStr(p.X) + " > " + exprStr(p.Y)
	case SEq:
		return exprStr(p.X) + " :==: " + exprStr(p.Y)
	case SGt:
		return exprStr(p.X) + " :>: " + exprStr(p.Y)
	case And:
		return propSide(p.P) + " && " + propSide(p.Q)
	case Or:
		return String(p.P) + " || " + String(p.Q)
	case Not:
		return "not (" + String(p.P) + ")"
	case True:
		return "true"
	case False:
		return "false"
	default:
		panic("ninf: unreachable Prop case")
	}
}

// propSide parenthesizes a disjunction used as an operand of &&. Since &&
// binds tighter than || in the parser, no other and/or operand needs
// parentheses for the output to parse back to an equivalent proposition.
func propSide(p Prop) string {
	if _, ok := p.(Or); ok {
		return "(" + String(p) + ")"
	}

	return String(p)
}

// exprAtom parenthesizes e unless it is already an unambiguous atom (a
// constant, a variable, or a function-style application).
func exprAtom(e Expr) string {
	switch e.(type) {
	case K, Var, Div, Mod, Lg2, Width, Min, Max, LenFromThen, LenFromThenTo:
		return exprStr(e)
	default:
		return "(" + exprStr(e) + ")"
	}
}

func exprStr(e Expr) string {
	return exprStrPrec(e, 0)
}

func exprStrPrec(e Expr, minPrec int) string {
	var (
		str  string
		prec int
	)

	switch e := e.(type) {
	case K:
		str, prec = e.Val.String(), precAtom
	case Var:
		str, prec = VarName(e.Name), precAtom
	case Add:
		str, prec = exprStrPrec(e.X, precAdd)+" + "+exprStrPrec(e.Y, precAdd), precAdd
	case Sub:
		str, prec = exprStrPrec(e.X, precAdd)+" - "+exprStrPrec(e.Y, precAdd+1), precAdd
	case Mul:
		str, prec = exprStrPrec(e.X, precMul)+" * "+exprStrPrec(e.Y, precMul), precMul
	case Exp:
		str, prec = exprStrPrec(e.X, precExp+1)+" ^^ "+exprStrPrec(e.Y, precExp), precExp
	case Div:
		str, prec = "Div("+exprStr(e.X)+", "+exprStr(e.Y)+")", precAtom
	case Mod:
		str, prec = "Mod("+exprStr(e.X)+", "+exprStr(e.Y)+")", precAtom
	case Lg2:
		str, prec = "Lg2("+exprStr(e.X)+")", precAtom
	case Width:
		str, prec = "Width("+exprStr(e.X)+")", precAtom
	case Min:
		str, prec = "Min("+exprStr(e.X)+", "+exprStr(e.Y)+")", precAtom
	case Max:
		str, prec = "Max("+exprStr(e.X)+", "+exprStr(e.Y)+")", precAtom
	case LenFromThen:
		str, prec = "LenFromThen("+exprStr(e.X)+", "+exprStr(e.Y)+", "+exprStr(e.W)+")", precAtom
	case LenFromThenTo:
		str, prec = "LenFromThenTo("+exprStr(e.X)+", "+exprStr(e.Y)+", "+exprStr(e.Z)+")", precAtom
	default:
		panic("ninf: unreachable Expr case")
	}

	if prec < minPrec {
		return "(" + str + ")"
	}

	return str
}
