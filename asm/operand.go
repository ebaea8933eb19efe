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

package asm

import (
	"github.com/pkg/errors"

	"stackvm/isa"
)

// minOperand24 and maxOperand24 bound the signed 24-bit field instructions
// other than data pack their operand into. Values outside this range still
// encode (the shift into the upper 24 bits drops their top bits) but are
// almost always a mistake, so Pass2 warns.
const (
	minOperand24 = -(1 << 23)
	maxOperand24 = 1<<23 - 1
)

// resolveOperand turns operand text into its 32-bit value: a label looked up
// in symbols, or a numeric literal. Branch mnemonics resolve a label
// relative to the address of the instruction following this one; every
// other mnemonic resolves it as an absolute value. It also reports whether
// the resolved value overflows the 24-bit operand field; that check is made
// for every mnemonic except data and the branches.
func resolveOperand(operand string, address int32, mnemonic string, symbols SymbolTable) (value int32, outOfRange bool, err error) {
	if v, ok := symbols.Lookup(operand); ok {
		if isa.IsBranch(mnemonic) {
			return v - (address + 1), false, nil
		}
		return v, exceeds24Bits(v, mnemonic), nil
	}

	v, err := parseIntLiteral(operand)
	if err != nil {
		return 0, false, errors.Errorf("operand %q is neither a known label nor a numeric literal", operand)
	}
	return v, exceeds24Bits(v, mnemonic), nil
}

func exceeds24Bits(v int32, mnemonic string) bool {
	if mnemonic == "data" || isa.IsBranch(mnemonic) {
		return false
	}
	return v < minOperand24 || v > maxOperand24
}
