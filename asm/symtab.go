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

// SymbolTable maps label names to their resolved 32-bit value: a location
// counter for an ordinary label, or a literal for one rebound by SET.
type SymbolTable map[string]int32

// NewSymbolTable returns an empty table.
func NewSymbolTable() SymbolTable {
	return make(SymbolTable)
}

// Lookup reports whether name is bound and its value.
func (t SymbolTable) Lookup(name string) (int32, bool) {
	v, ok := t[name]
	return v, ok
}

// Defined reports whether name already has a binding.
func (t SymbolTable) Defined(name string) bool {
	_, ok := t[name]
	return ok
}

// Bind binds name to value, replacing any existing binding. Callers must
// check Defined first:
// Bind does not itself guard against redefinition, since SET deliberately
// rebinds the same label its own line just bound to the location counter.
func (t SymbolTable) Bind(name string, value int32) {
	t[name] = value
}
