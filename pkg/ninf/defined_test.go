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

import "testing"

func TestDefinedConstAndVar(t *testing.T) {
	if _, ok := Defined(va).(True); !ok {
		t.Fatalf("a variable is always defined")
	}

	if _, ok := Defined(K{NatFromUint64(3)}).(True); !ok {
		t.Fatalf("a constant is always defined")
	}
}

func TestDefinedSub(t *testing.T) {
	got := Simplify(Defined(Sub{vx, vy}))
	if String(got) != "fin y && x >= y" {
		t.Fatalf("got %q", String(got))
	}
}

func TestDefinedDiv(t *testing.T) {
	got := Simplify(Defined(Div{vx, vy}))
	if String(got) != "fin x && not (y == 0)" {
		t.Fatalf("got %q", String(got))
	}
}

func TestDefinedMod(t *testing.T) {
	got := Simplify(Defined(Mod{vx, vy}))
	if String(got) != "fin x && not (y == 0)" {
		t.Fatalf("got %q", String(got))
	}
}

func TestDefinedLenFromThenTo(t *testing.T) {
	got := Defined(LenFromThenTo{vx, vy, vc})

	// All three operands must be finite and x must differ from y.
	want := "fin x && fin y && fin c && not (x :==: y)"
	if String(Simplify(got)) != want {
		t.Fatalf("got %q, want %q", String(Simplify(got)), want)
	}
}
