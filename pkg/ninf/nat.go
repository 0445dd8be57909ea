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
	"math/big"
)

// Nat represents an element of the extended naturals ℕ∞ = ℕ ∪ {∞}: either an
// arbitrary-precision natural number, or infinity.
type Nat struct {
	// val holds the finite value when inf is false; undefined otherwise.
	val big.Int
	// inf indicates this value is ∞.
	inf bool
}

// InfNat is the single infinite element of ℕ∞.
var InfNat = Nat{big.Int{}, true}

// NatFromUint64 constructs a finite Nat from a uint64.
func NatFromUint64(n uint64) Nat {
	var val big.Int
	val.SetUint64(n)

	return Nat{val, false}
}

// NatFromBigInt constructs a finite Nat from a big.Int.  Panics if negative.
func NatFromBigInt(n big.Int) Nat {
	if n.Sign() < 0 {
		panic("natural number cannot be negative")
	}

	var val big.Int
	val.Set(&n)

	return Nat{val, false}
}

// IsInf returns true if this value is ∞.
func (p Nat) IsInf() bool {
	return p.inf
}

// IsZero returns true if this value is the finite value 0.
func (p Nat) IsZero() bool {
	return !p.inf && p.val.Sign() == 0
}

// BigInt returns the underlying finite value.  Panics if this is ∞.
func (p Nat) BigInt() big.Int {
	if p.inf {
		panic("cannot extract big.Int from infinity")
	}

	return p.val
}

// Cmp compares two extended naturals.  ∞ is strictly greater than every
// finite value, and equal only to itself.
func (p Nat) Cmp(o Nat) int {
	switch {
	case p.inf && o.inf:
		return 0
	case p.inf:
		return 1
	case o.inf:
		return -1
	default:
		return p.val.Cmp(&o.val)
	}
}

// Equals returns whether two extended naturals are structurally identical.
func (p Nat) Equals(o Nat) bool {
	return p.Cmp(o) == 0
}

// Add combines two extended naturals, where ∞ absorbs any finite value.
func (p Nat) Add(o Nat) Nat {
	if p.inf || o.inf {
		return InfNat
	}

	var val big.Int

	val.Add(&p.val, &o.val)

	return Nat{val, false}
}

// Mul multiplies two extended naturals under the convention 0 * ∞ = 0.
func (p Nat) Mul(o Nat) Nat {
	switch {
	case p.IsZero() || o.IsZero():
		return NatFromUint64(0)
	case p.inf || o.inf:
		return InfNat
	default:
		var val big.Int

		val.Mul(&p.val, &o.val)

		return Nat{val, false}
	}
}

func (p Nat) String() string {
	if p.inf {
		return "inf"
	}

	return p.val.String()
}
