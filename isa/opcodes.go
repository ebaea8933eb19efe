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

package isa

// Opcode is the 8-bit signed opcode stored in the low byte of a machine
// word. Two values, OpData and OpSet, are sentinels that never appear in
// object code: they only tag table entries that the assembler treats
// specially.
type Opcode int8

// Real machine opcodes, encoded bit-for-bit in the low byte of every word
// except those emitted by the data directive.
const (
	Ldc    Opcode = 0
	Adc    Opcode = 1
	Ldl    Opcode = 2
	Stl    Opcode = 3
	Ldnl   Opcode = 4
	Stnl   Opcode = 5
	Add    Opcode = 6
	Sub    Opcode = 7
	Shl    Opcode = 8
	Shr    Opcode = 9
	Adj    Opcode = 10
	A2sp   Opcode = 11
	Sp2a   Opcode = 12
	Call   Opcode = 13
	Return Opcode = 14
	Brz    Opcode = 15
	Brlz   Opcode = 16
	Br     Opcode = 17
	Halt   Opcode = 18
)

// Sentinel opcodes. They are assembly-time only and never encoded.
const (
	// OpData marks the "data" directive: emit the resolved operand as a
	// raw 32-bit word instead of packing it into the upper 24 bits.
	OpData Opcode = -1
	// OpSet marks the "SET" directive: bind a label to a numeric literal
	// and emit nothing.
	OpSet Opcode = -2
)

// Descriptor pairs a mnemonic's opcode with whether it requires an operand.
type Descriptor struct {
	Opcode       Opcode
	TakesOperand bool
}

// Table is the canonical mnemonic-to-opcode mapping. Mnemonics are
// case-sensitive exactly as written here.
var Table = map[string]Descriptor{
	"data":   {OpData, true},
	"ldc":    {Ldc, true},
	"adc":    {Adc, true},
	"ldl":    {Ldl, true},
	"stl":    {Stl, true},
	"ldnl":   {Ldnl, true},
	"stnl":   {Stnl, true},
	"add":    {Add, false},
	"sub":    {Sub, false},
	"shl":    {Shl, false},
	"shr":    {Shr, false},
	"adj":    {Adj, true},
	"a2sp":   {A2sp, false},
	"sp2a":   {Sp2a, false},
	"call":   {Call, true},
	"return": {Return, false},
	"brz":    {Brz, true},
	"brlz":   {Brlz, true},
	"br":     {Br, true},
	"HALT":   {Halt, false},
	"SET":    {OpSet, true},
}

// branches are the mnemonics whose operand is encoded PC-relative rather
// than as an absolute value when it resolves to a label.
var branches = map[string]bool{
	"br":   true,
	"brz":  true,
	"brlz": true,
	"call": true,
}

// IsBranch reports whether mnemonic resolves its label operand relative to
// the address of the following instruction.
func IsBranch(mnemonic string) bool {
	return branches[mnemonic]
}
