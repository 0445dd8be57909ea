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

// noInf lifts every occurrence of ∞ out of e, producing a decision tree
// whose Return leaves are either ∞-free (relative to e's own literal
// structure; free variables may still evaluate to ∞ at runtime, which is why
// leaves still carry fin(...) checks downstream) or the literal inf itself,
// when a whole sub-expression folds to ∞ (e.g. Add{inf, v}), and whose If
// predicates are
// strict equalities on finite sub-expressions. Children are always
// recursed on first and their trees bound monadically, per constructor.
func noInf(e Expr) IfExpr[Expr] {
	switch e := e.(type) {
	case K, Var:
		return IfReturn[Expr]{e}
	case Add:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				if isLitInf(x) || isLitInf(y) {
					return IfReturn[Expr]{inf}
				}

				return IfReturn[Expr]{Add{x, y}}
			})
		})
	case Sub:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(y):
					return IfImpossible[Expr]{}
				case isLitInf(x):
					return IfReturn[Expr]{inf}
				default:
					return IfReturn[Expr]{Sub{x, y}}
				}
			})
		})
	case Mul:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(x) && isLitInf(y):
					return IfReturn[Expr]{inf}
				case isLitInf(x):
					return IfIf[Expr]{P: SEq{y, zero}, Then: IfReturn[Expr]{zero}, Else: IfReturn[Expr]{inf}}
				case isLitInf(y):
					return IfIf[Expr]{P: SEq{x, zero}, Then: IfReturn[Expr]{zero}, Else: IfReturn[Expr]{inf}}
				default:
					return IfReturn[Expr]{Mul{x, y}}
				}
			})
		})
	case Exp:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(x) && isLitInf(y):
					return IfReturn[Expr]{inf}
				case isLitInf(x):
					return IfIf[Expr]{P: SEq{y, zero}, Then: IfReturn[Expr]{one}, Else: IfReturn[Expr]{inf}}
				case isLitInf(y):
					return IfIf[Expr]{
						P:    SEq{x, zero},
						Then: IfReturn[Expr]{zero},
						Else: IfIf[Expr]{P: SEq{x, one}, Then: IfReturn[Expr]{one}, Else: IfReturn[Expr]{inf}},
					}
				default:
					return IfReturn[Expr]{Exp{x, y}}
				}
			})
		})
	case Div:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(x):
					return IfImpossible[Expr]{}
				case isLitInf(y):
					return IfReturn[Expr]{zero}
				default:
					return IfReturn[Expr]{Div{x, y}}
				}
			})
		})
	case Mod:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(x):
					return IfImpossible[Expr]{}
				case isLitInf(y):
					return IfReturn[Expr]{x}
				default:
					return IfReturn[Expr]{Mod{x, y}}
				}
			})
		})
	case Min:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isLitInf(x):
					return IfReturn[Expr]{y}
				case isLitInf(y):
					return IfReturn[Expr]{x}
				default:
					return IfReturn[Expr]{Min{x, y}}
				}
			})
		})
	case Max:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				if isLitInf(x) || isLitInf(y) {
					return IfReturn[Expr]{inf}
				}

				return IfReturn[Expr]{Max{x, y}}
			})
		})
	case Lg2:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			if isLitInf(x) {
				return IfReturn[Expr]{inf}
			}

			return IfReturn[Expr]{Lg2{x}}
		})
	case Width:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			if isLitInf(x) {
				return IfReturn[Expr]{inf}
			}

			return IfReturn[Expr]{Width{x}}
		})
	case LenFromThen:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				return BindIf(noInf(e.W), func(w Expr) IfExpr[Expr] {
					if isLitInf(x) || isLitInf(y) || isLitInf(w) {
						return IfImpossible[Expr]{}
					}

					return IfReturn[Expr]{LenFromThen{x, y, w}}
				})
			})
		})
	case LenFromThenTo:
		return BindIf(noInf(e.X), func(x Expr) IfExpr[Expr] {
			return BindIf(noInf(e.Y), func(y Expr) IfExpr[Expr] {
				return BindIf(noInf(e.Z), func(z Expr) IfExpr[Expr] {
					if isLitInf(x) || isLitInf(y) || isLitInf(z) {
						return IfImpossible[Expr]{}
					}

					return IfReturn[Expr]{LenFromThenTo{x, y, z}}
				})
			})
		})
	default:
		panic("ninf: unreachable Expr case")
	}
}

// natOp is the bridge used by isEq/isGt once the top-level variant check
// (both constants, either zero, either ∞) has been ruled out. It resolves
// both operands through noInf and builds the leaf proposition via atom at
// every reachable pair of ∞-free leaves, then collapses the resulting tree
// with ToProp so the external decision procedure never receives ∞. A leaf
// pair where either side still resolved to a literal ∞ (noInf's own Return
// can carry one, e.g. folding Add{inf, v}) is rejected outright as False
// rather than handed to atom.
func natOp(atom func(x, y Expr) Prop, x, y Expr) Prop {
	combined := BindIf(noInf(x), func(x2 Expr) IfExpr[Prop] {
		return BindIf(noInf(y), func(y2 Expr) IfExpr[Prop] {
			if isLitInf(x2) || isLitInf(y2) {
				return IfReturn[Prop]{False{}}
			}

			return IfReturn[Prop]{atom(x2, y2)}
		})
	})

	return ToProp(combined)
}

// eqAtom is the leaf formula for isEq's general case: (¬fin x ∧ ¬fin y) ∨
// (fin x ∧ fin y ∧ x :==: y).
func eqAtom(x, y Expr) Prop {
	return Or{And{Not{Fin{x}}, Not{Fin{y}}}, And{Fin{x}, And{Fin{y}, SEq{x, y}}}}
}

// gtAtom is the leaf formula for isGt's general case: fin y ∧ (x == inf ∨
// (fin x ∧ x :>: y)).
func gtAtom(x, y Expr) Prop {
	return And{Fin{y}, Or{Eq{x, inf}, And{Fin{x}, SGt{x, y}}}}
}
