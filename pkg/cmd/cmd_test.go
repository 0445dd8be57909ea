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
package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// runRoot executes rootCmd with the given arguments and returns whatever it
// wrote to stdout. Cobra commands here print with fmt.Println rather than
// returning values, so capturing os.Stdout is the only way to observe them.
func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	os.Stdout = w
	rootCmd.SetArgs(args)

	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)

	if execErr != nil {
		t.Fatalf("rootCmd.Execute(%v): %v", args, execErr)
	}

	return buf.String()
}

func TestSimplifyCommand(t *testing.T) {
	got := strings.TrimSpace(runRoot(t, "simplify", "fin (a + b)"))
	if got != "fin a && fin b" {
		t.Fatalf("got %q", got)
	}
}

func TestDefinedCommand(t *testing.T) {
	got := strings.TrimSpace(runRoot(t, "defined", "--simplify", "Div(x, y)"))
	if got != "fin x && not (y == 0)" {
		t.Fatalf("got %q", got)
	}
}

func TestVarsCommand(t *testing.T) {
	got := strings.TrimSpace(runRoot(t, "vars", "LenFromThenTo(a + b, c, d * a)"))
	if got != "a, b, c, d" {
		t.Fatalf("got %q", got)
	}
}

func TestStepsCommandTerminates(t *testing.T) {
	got := runRoot(t, "steps", "fin (a + b)")
	if !strings.Contains(got, "fin a && fin b") {
		t.Fatalf("expected the fixpoint to appear in the trace, got %q", got)
	}
}
