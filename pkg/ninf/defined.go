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

// Defined conservatively encodes the partiality of e: a proposition whose
// truth is a necessary condition for e to denote a value.
//
// Div and Mod require fin(x), not merely x's definedness: Div ∞ n is left
// undefined here rather than assigned ∞, which is stricter than a classical
// ℕ∞ semantics but matches what the external decision procedure on the other
// side of the :==:/:>: interface expects.
func Defined(e Expr) Prop {
	switch e := e.(type) {
	case K, Var:
		return True{}
	case Add:
		return And{Defined(e.X), Defined(e.Y)}
	case Mul:
		return And{Defined(e.X), Defined(e.Y)}
	case Exp:
		return And{Defined(e.X), Defined(e.Y)}
	case Min:
		return And{Defined(e.X), Defined(e.Y)}
	case Max:
		return And{Defined(e.X), Defined(e.Y)}
	case Lg2:
		return Defined(e.X)
	case Width:
		return Defined(e.X)
	case Sub:
		return And{Defined(e.X), And{Defined(e.Y), And{Fin{e.Y}, Ge{e.X, e.Y}}}}
	case Div:
		return And{Defined(e.X), And{Defined(e.Y), And{Fin{e.X}, Not{Eq{e.Y, zero}}}}}
	case Mod:
		return And{Defined(e.X), And{Defined(e.Y), And{Fin{e.X}, Not{Eq{e.Y, zero}}}}}
	case LenFromThen:
		return And{Defined(e.X), And{Defined(e.Y), And{Defined(e.W),
			And{Fin{e.X}, And{Fin{e.Y}, And{Fin{e.W}, Not{Eq{e.X, e.Y}}}}}}}}
	case LenFromThenTo:
		return And{Defined(e.X), And{Defined(e.Y), And{Defined(e.Z),
			And{Fin{e.X}, And{Fin{e.Y}, And{Fin{e.Z}, Not{Eq{e.X, e.Y}}}}}}}}
	default:
		panic("ninf: unreachable Expr case")
	}
}
