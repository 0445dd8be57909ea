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

// is0 decides or rewrites e :== 0, shape-directed on e.  The second return
// value is false exactly when no rule applies (Var, Mod), mirroring isFin.
func is0(e Expr) (Prop, bool) {
	switch e := e.(type) {
	case K:
		return boolToProp(e.Val.IsZero()), true
	case Var:
		return nil, false
	case Add:
		return And{Eq{e.X, zero}, Eq{e.Y, zero}}, true
	case Sub:
		return Eq{e.X, e.Y}, true
	case Mul:
		return Or{Eq{e.X, zero}, Eq{e.Y, zero}}, true
	case Div:
		return Gt{e.Y, e.X}, true
	case Mod:
		return nil, false
	case Exp:
		return And{Eq{e.X, zero}, Gt{e.Y, zero}}, true
	case Min:
		return Or{Eq{e.X, zero}, Eq{e.Y, zero}}, true
	case Max:
		return And{Eq{e.X, zero}, Eq{e.Y, zero}}, true
	case Lg2:
		return Or{Eq{e.X, zero}, Eq{e.X, one}}, true
	case Width:
		return Eq{e.X, zero}, true
	case LenFromThen:
		return Or{Eq{e.W, zero}, Gt{e.X, e.Y}}, true
	case LenFromThenTo:
		return Or{And{Gt{e.X, e.Y}, Gt{e.Z, e.X}}, And{Gt{e.Y, e.X}, Gt{e.X, e.Z}}}, true
	default:
		panic("ninf: unreachable Expr case")
	}
}
