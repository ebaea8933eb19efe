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

package vm

import (
	"fmt"
	"io"
)

// DefaultMemorySize is the word count a freshly constructed Instance gets
// when the caller does not ask for a specific size.
const DefaultMemorySize = 65536

// Instance is one stack machine: its four registers, halted flag and the
// memory it executes against.
type Instance struct {
	A, B, PC, SP int32
	Halted       bool
	Memory       []int32
}

// New returns an Instance with size words of zeroed memory, all registers
// at zero and Halted false.
func New(size int) *Instance {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &Instance{Memory: make([]int32, size)}
}

// Dump writes a register snapshot to w in the same shape the machine's
// halt-time diagnostic uses: one line per register, hex and decimal.
func Dump(w io.Writer, in *Instance) {
	fmt.Fprintf(w, "A:  0x%08x (%d)\n", uint32(in.A), in.A)
	fmt.Fprintf(w, "B:  0x%08x (%d)\n", uint32(in.B), in.B)
	fmt.Fprintf(w, "PC: 0x%08x (%d)\n", uint32(in.PC), in.PC)
	fmt.Fprintf(w, "SP: 0x%08x (%d)\n", uint32(in.SP), in.SP)
}
