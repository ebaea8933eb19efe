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

// Package vm implements the stack machine the asm package targets: four
// 32-bit registers (A, B, PC, SP), a flat word-addressed memory, and a
// fetch-decode-execute loop over the 19 opcodes in package isa.
//
// A and B act as a tiny two-element evaluation stack with A on top; most
// opcodes shuffle a value between them, combine them, or move one to or
// from memory at an SP- or A-relative address. PC is advanced before an
// instruction's body runs, so a branch's operand is added to the address of
// the instruction that follows it -- matching the PC-relative encoding
// Pass2 produces.
//
// Memory accesses outside the PC bounds check (ldl, stl, ldnl, stnl) are
// not validated before dereferencing the slice: an out-of-range address hits
// Go's native slice bounds panic, which Run recovers and reports as a
// trapped runtime error, the same way an unknown opcode or an out-of-bounds
// PC is reported.
package vm
