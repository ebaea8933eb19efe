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
	"fmt"
	"io"

	"stackvm/internal/ioerr"
	"stackvm/internal/objfile"
	"stackvm/isa"
)

// Pass2 resolves every retained line's operand, encodes it, and emits the
// object word to obj and a human-readable row to lst. warn may be nil; when
// non-nil it receives one line per operand that overflowed the 24-bit field
// a non-branch, non-data instruction packs its operand into. Pass2 aborts on
// the first fatal error: a half-resolved program has no useful object file.
func Pass2(p *Program, obj io.Writer, lst io.Writer, warn io.Writer) error {
	objW := objfile.NewWriter(obj)
	lstW := ioerr.New(lst)

	for _, pl := range p.Lines {
		if pl.Mnemonic == "" {
			formatLabelRow(lstW, pl.Label)
			continue
		}

		word, err := encodeLine(pl, p.Symbols, warn)
		if err != nil {
			return err
		}

		if err := objW.WriteWord(word); err != nil {
			return err
		}
		if pl.Label != "" {
			formatLabelRow(lstW, pl.Label)
		}
		formatRow(lstW, pl, word)
	}

	if lstW.Err != nil {
		return lstW.Err
	}
	return objW.Flush()
}

// encodeLine resolves pl's operand (if any) and returns the 32-bit word
// Pass2 writes to the object file. It is shared with RenderListing so the
// two never disagree about what a line encodes to.
func encodeLine(pl ParsedLine, symbols SymbolTable, warn io.Writer) (int32, error) {
	desc, ok := isa.Table[pl.Mnemonic]
	if !ok {
		return 0, errLine(pl.Line, "unknown instruction: %s", pl.Mnemonic)
	}

	var operand int32
	if desc.TakesOperand {
		if pl.Operand == "" {
			return 0, errLine(pl.Line, "missing operand for %s", pl.Mnemonic)
		}
		v, outOfRange, err := resolveOperand(pl.Operand, pl.Address, pl.Mnemonic, symbols)
		if err != nil {
			return 0, errLine(pl.Line, "%s", err)
		}
		if outOfRange && warn != nil {
			fmt.Fprintf(warn, "warning: line %d: operand %d out of range for %s\n", pl.Line, v, pl.Mnemonic)
		}
		operand = v
	} else if pl.Operand != "" {
		return 0, errLine(pl.Line, "unexpected operand for %s", pl.Mnemonic)
	}

	if desc.Opcode == isa.OpData {
		return operand, nil
	}
	return (operand << 8) | (int32(desc.Opcode) & 0xFF), nil
}

func formatRow(w io.Writer, pl ParsedLine, word int32) {
	fmt.Fprintf(w, "%08x %08x    %s %s\n", uint32(pl.Address), uint32(word), pl.Mnemonic, pl.Operand)
}

func formatLabelRow(w io.Writer, label string) {
	fmt.Fprintf(w, "\n%s:\n", label)
}
