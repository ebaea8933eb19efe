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

import "testing"

func TestResolveOperandBranchIsPCRelative(t *testing.T) {
	symbols := NewSymbolTable()
	symbols.Bind("loop", 3)
	v, outOfRange, err := resolveOperand("loop", 7, "brlz", symbols)
	if err != nil {
		t.Fatalf("resolveOperand: %v", err)
	}
	if outOfRange {
		t.Fatal("branch operand must never be range-checked")
	}
	if want := int32(3 - (7 + 1)); v != want {
		t.Fatalf("offset = %d, want %d", v, want)
	}
}

func TestResolveOperandAbsoluteForNonBranch(t *testing.T) {
	symbols := NewSymbolTable()
	symbols.Bind("count", 42)
	v, _, err := resolveOperand("count", 0, "ldc", symbols)
	if err != nil {
		t.Fatalf("resolveOperand: %v", err)
	}
	if v != 42 {
		t.Fatalf("value = %d, want 42", v)
	}
}

func TestResolveOperandNumericLiteral(t *testing.T) {
	symbols := NewSymbolTable()
	for _, c := range []struct {
		text string
		want int32
	}{
		{"10", 10},
		{"-10", -10},
		{"0x1F", 0x1F},
		{"017", 017},
	} {
		v, _, err := resolveOperand(c.text, 0, "adc", symbols)
		if err != nil {
			t.Fatalf("resolveOperand(%q): %v", c.text, err)
		}
		if v != c.want {
			t.Fatalf("resolveOperand(%q) = %d, want %d", c.text, v, c.want)
		}
	}
}

func TestResolveOperandUnknownFails(t *testing.T) {
	symbols := NewSymbolTable()
	_, _, err := resolveOperand("nope", 0, "adc", symbols)
	if err == nil {
		t.Fatal("expected error for unresolvable operand")
	}
}

func TestExceeds24Bits(t *testing.T) {
	if exceeds24Bits(maxOperand24, "adc") {
		t.Fatal("max in-range value flagged as out of range")
	}
	if !exceeds24Bits(maxOperand24+1, "adc") {
		t.Fatal("value just past the 24-bit range not flagged")
	}
	if exceeds24Bits(1<<30, "br") {
		t.Fatal("branch operands must never be range-checked")
	}
	if exceeds24Bits(1<<30, "data") {
		t.Fatal("data operands must never be range-checked")
	}
}

func TestEncodeLineDataEmitsFullWord(t *testing.T) {
	pl := ParsedLine{Mnemonic: "data", Operand: "-1", Line: 1}
	word, err := encodeLine(pl, NewSymbolTable(), nil)
	if err != nil {
		t.Fatalf("encodeLine: %v", err)
	}
	if word != -1 {
		t.Fatalf("data word = %d, want -1 verbatim", word)
	}
}

func TestEncodeLineUnknownMnemonic(t *testing.T) {
	pl := ParsedLine{Mnemonic: "nope", Line: 1}
	if _, err := encodeLine(pl, NewSymbolTable(), nil); err == nil {
		t.Fatal("expected error for unknown mnemonic")
	}
}

func TestEncodeLineUnexpectedOperand(t *testing.T) {
	pl := ParsedLine{Mnemonic: "add", Operand: "1", Line: 1}
	if _, err := encodeLine(pl, NewSymbolTable(), nil); err == nil {
		t.Fatal("expected error: add takes no operand")
	}
}

func TestEncodeLineMissingOperand(t *testing.T) {
	pl := ParsedLine{Mnemonic: "ldc", Line: 1}
	if _, err := encodeLine(pl, NewSymbolTable(), nil); err == nil {
		t.Fatal("expected error: ldc requires an operand")
	}
}
