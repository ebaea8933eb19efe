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

// Package isa holds the single, authoritative opcode table for the stackvm
// instruction set. Both the asm and vm packages import it so that the
// mnemonic-to-opcode mapping can never drift between the assembler and the
// emulator that executes its output.
//
// Supported mnemonics:
//
//	mnemonic  opcode  operand  effect
//	data      (word)  yes      emits the operand verbatim as a 32-bit word
//	ldc       0       yes      B <- A; A <- operand
//	adc       1       yes      A <- A + operand
//	ldl       2       yes      B <- A; A <- mem[SP+operand]
//	stl       3       yes      mem[SP+operand] <- A; A <- B
//	ldnl      4       yes      A <- mem[A+operand]
//	stnl      5       yes      mem[A+operand] <- B
//	add       6       no       A <- B + A
//	sub       7       no       A <- B - A
//	shl       8       no       A <- B << A
//	shr       9       no       A <- B >> A (arithmetic)
//	adj       10      yes      SP <- SP + operand
//	a2sp      11      no       SP <- A; A <- B
//	sp2a      12      no       B <- A; A <- SP
//	call      13      yes      B <- A; A <- PC; PC <- PC + operand
//	return    14      no       PC <- A; A <- B
//	brz       15      yes      if A == 0: PC <- PC + operand
//	brlz      16      yes      if A < 0: PC <- PC + operand
//	br        17      yes      PC <- PC + operand
//	HALT      18      no       halted <- true
//	SET       (none)  yes      assembly-time only: binds a label to a literal
//
// data and SET never appear as opcodes in object code: data's Opcode field
// holds the sentinel OpData (-1), meaning "emit the resolved operand as a
// full 32-bit word instead of encoding it", and SET's Opcode field holds the
// sentinel OpSet (-2), meaning "this line emits nothing; it only binds a
// symbol". See the asm package for how those sentinels are interpreted.
package isa
