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
	"github.com/pkg/errors"

	"stackvm/isa"
)

// Run executes in from PC = 0 until it halts or traps. It returns a non-nil
// error for an out-of-bounds PC, an unknown opcode, or a native runtime
// fault (an out-of-range ldl/stl/ldnl/stnl address). A call, return or
// branch that sends PC out of range is caught by the bounds check at the
// next fetch. Native faults surface as Go's own slice-index panics, which
// Run recovers and reports the same way as any other trap.
func Run(in *Instance) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("vm: runtime fault at PC=%d: %v", in.PC, r)
		}
	}()

	in.PC = 0
	in.Halted = false

	for !in.Halted {
		if in.PC < 0 || int(in.PC) >= len(in.Memory) {
			return errors.Errorf("vm: PC out of bounds (%d)", in.PC)
		}
		if err := step(in); err != nil {
			return err
		}
	}
	return nil
}

// step executes exactly one instruction. PC has already been bounds-checked
// by the caller.
func step(in *Instance) error {
	word := in.Memory[in.PC]
	oldPC := in.PC
	in.PC++

	opcode := isa.Opcode(int8(word & 0xFF))
	operand := word >> 8 // arithmetic shift: word is a signed int32

	switch opcode {
	case isa.Ldc:
		in.B = in.A
		in.A = operand
	case isa.Adc:
		in.A = in.A + operand
	case isa.Ldl:
		in.B = in.A
		in.A = in.Memory[in.SP+operand]
	case isa.Stl:
		in.Memory[in.SP+operand] = in.A
		in.A = in.B
	case isa.Ldnl:
		in.A = in.Memory[in.A+operand]
	case isa.Stnl:
		in.Memory[in.A+operand] = in.B
	case isa.Add:
		in.A = in.B + in.A
	case isa.Sub:
		in.A = in.B - in.A
	case isa.Shl:
		in.A = in.B << (uint32(in.A) & 31)
	case isa.Shr:
		in.A = in.B >> (uint32(in.A) & 31)
	case isa.Adj:
		in.SP = in.SP + operand
	case isa.A2sp:
		in.SP = in.A
		in.A = in.B
	case isa.Sp2a:
		in.B = in.A
		in.A = in.SP
	case isa.Call:
		in.B = in.A
		in.A = in.PC
		in.PC = in.PC + operand
	case isa.Return:
		in.PC = in.A
		in.A = in.B
	case isa.Brz:
		if in.A == 0 {
			in.PC = in.PC + operand
		}
	case isa.Brlz:
		if in.A < 0 {
			in.PC = in.PC + operand
		}
	case isa.Br:
		in.PC = in.PC + operand
	case isa.Halt:
		in.Halted = true
	default:
		return errors.Errorf("vm: unknown opcode %d at address %d", opcode, oldPC)
	}
	return nil
}
