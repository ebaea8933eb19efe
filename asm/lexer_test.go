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

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ParsedLine
	}{
		{"blank", "", ParsedLine{}},
		{"comment only", "   ; nothing here", ParsedLine{}},
		{"mnemonic only", "  add  ", ParsedLine{Mnemonic: "add"}},
		{"mnemonic with operand", "ldc 5", ParsedLine{Mnemonic: "ldc", Operand: "5"}},
		{"label and mnemonic", "loop: adc -1", ParsedLine{Label: "loop", Mnemonic: "adc", Operand: "-1"}},
		{"label only", "done:", ParsedLine{Label: "done"}},
		{"trailing comment stripped", "br loop ; go again", ParsedLine{Mnemonic: "br", Operand: "loop"}},
		{"operand trimmed at edges", "data   42  ", ParsedLine{Mnemonic: "data", Operand: "42"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := parseLine(c.in)
			if got.Label != c.want.Label || got.Mnemonic != c.want.Mnemonic || got.Operand != c.want.Operand {
				t.Fatalf("parseLine(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
