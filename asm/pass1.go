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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Program is the result of Pass1: every retained source line (instructions
// and label-only lines, in source order) plus the fully-formed symbol table.
// Lines consumed entirely by a SET directive are not retained, since they
// emit nothing and carry no address.
type Program struct {
	Lines   []ParsedLine
	Symbols SymbolTable
}

// Pass1 scans src line by line, assigning each instruction an address and
// building the symbol table. SET directives are resolved immediately: the
// spec requires their operand be a numeric literal, never a label, so they
// never create a forward reference for Pass2 to chase.
func Pass1(src io.Reader) (*Program, error) {
	sc := bufio.NewScanner(src)
	symbols := NewSymbolTable()
	var lines []ParsedLine
	var lc int32
	lineNo := 0

	for sc.Scan() {
		lineNo++
		pl := parseLine(sc.Text())
		if pl.Label == "" && pl.Mnemonic == "" {
			continue
		}
		pl.Line = lineNo
		pl.Address = lc

		if pl.Label != "" {
			if symbols.Defined(pl.Label) {
				return nil, errLine(lineNo, "duplicate label: %s", pl.Label)
			}
			symbols.Bind(pl.Label, lc)
		}

		switch pl.Mnemonic {
		case "":
			// Label-only line: retained for the listing, consumes no address.
			lines = append(lines, pl)
		case "SET":
			if pl.Label == "" {
				return nil, errLine(lineNo, "SET requires a label")
			}
			if pl.Operand == "" {
				return nil, errLine(lineNo, "SET requires a numeric operand")
			}
			v, err := parseIntLiteral(pl.Operand)
			if err != nil {
				return nil, errLine(lineNo, "SET operand %q is not a numeric literal", pl.Operand)
			}
			symbols.Bind(pl.Label, v)
			// No word is emitted and the location counter does not advance.
		default:
			lines = append(lines, pl)
			lc++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "pass1: read source failed")
	}
	return &Program{Lines: lines, Symbols: symbols}, nil
}
