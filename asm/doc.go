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

// Package asm implements the two-pass assembler: source text in, an object
// file and a listing out.
//
// Pass1 walks the source once, assigning every instruction a location and
// building the symbol table; SET directives are resolved on the spot since
// their operand must already be a numeric literal. Pass2 walks the retained
// lines a second time, resolving each operand (a label becomes its address,
// or a PC-relative offset for the branch mnemonics; anything else is parsed
// as a numeric literal) and emitting the encoded word and its listing row.
//
// Errors are fatal and reported one at a time: the first problem Pass1 or
// Pass2 hits aborts assembly, since a half-resolved program has no object
// file worth emitting.
package asm
