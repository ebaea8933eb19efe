// This file is part of stackvm.
//
// Copyright 2026 The stackvm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"stackvm/asm"
	"stackvm/vm"
)

func assembleToObject(t *testing.T, src string) []byte {
	t.Helper()
	var obj, lst bytes.Buffer
	if err := asm.Assemble("t.asm", strings.NewReader(src), &obj, &lst, nil); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return obj.Bytes()
}

func TestLoadAndRunRoundTrip(t *testing.T) {
	src := `
N: SET 7
start: ldc N
       HALT
`
	obj := assembleToObject(t, src)

	in := vm.New(vm.DefaultMemorySize)
	n, err := vm.Load(in, bytes.NewReader(obj))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 2 {
		t.Fatalf("loaded %d words, want 2", n)
	}
	if err := vm.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if in.A != 7 {
		t.Errorf("A = %d, want 7", in.A)
	}
	if !in.Halted {
		t.Error("Halted = false")
	}
}

func TestLoadGrowsMemory(t *testing.T) {
	in := vm.New(1)
	src := "ldc 1\nldc 2\nldc 3\nHALT\n"
	obj := assembleToObject(t, src)
	n, err := vm.Load(in, bytes.NewReader(obj))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 4 {
		t.Fatalf("loaded %d words, want 4", n)
	}
	if len(in.Memory) < 4 {
		t.Fatalf("memory did not grow to fit the program: len=%d", len(in.Memory))
	}
}

func TestLoadTruncatedFileFails(t *testing.T) {
	in := vm.New(vm.DefaultMemorySize)
	_, err := vm.Load(in, bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected an error for a truncated object file")
	}
}

func TestDumpFormat(t *testing.T) {
	in := vm.New(4)
	in.A, in.B, in.PC, in.SP = 1, 2, 3, 4
	var buf bytes.Buffer
	vm.Dump(&buf, in)
	out := buf.String()
	for _, want := range []string{"A:", "B:", "PC:", "SP:"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q: %q", want, out)
		}
	}
}
