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

// isFin decides or rewrites fin(e), shape-directed on e.  These are the only
// points at which ∞ interacts with finite arithmetic outside noInf; the
// table below enumerates them all statically.
func isFin(e Expr) (Prop, bool) {
	switch e := e.(type) {
	case K:
		return boolToProp(!e.Val.IsInf()), true
	case Var:
		return nil, false
	case Add:
		return And{Fin{e.X}, Fin{e.Y}}, true
	case Sub:
		return Fin{e.X}, true
	case Mul:
		return Or{And{Fin{e.X}, Fin{e.Y}},
			Or{And{Eq{e.X, zero}, Eq{e.Y, inf}}, And{Eq{e.Y, zero}, Eq{e.X, inf}}}}, true
	case Div:
		return Fin{e.X}, true
	case Mod:
		return True{}, true
	case Exp:
		return Or{And{Fin{e.X}, Fin{e.Y}},
			Or{And{Eq{e.X, inf}, Eq{e.Y, zero}},
				And{Eq{e.Y, inf}, Or{Eq{e.X, zero}, Eq{e.X, one}}}}}, true
	case Min:
		return Or{Fin{e.X}, Fin{e.Y}}, true
	case Max:
		return And{Fin{e.X}, Fin{e.Y}}, true
	case Lg2:
		return Fin{e.X}, true
	case Width:
		return Fin{e.X}, true
	case LenFromThen:
		return True{}, true
	case LenFromThenTo:
		return True{}, true
	default:
		panic("ninf: unreachable Expr case")
	}
}
