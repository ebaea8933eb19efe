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

import "io"

// RenderListing re-renders a successfully assembled Program's listing rows
// to w, using the same per-line encoding encodeLine uses during Pass2. It
// lets a caller (or a test) recover the listing independently of whatever
// stream Pass2 originally wrote it to, without re-deriving the row format.
func RenderListing(p *Program, w io.Writer) error {
	for _, pl := range p.Lines {
		if pl.Mnemonic == "" {
			formatLabelRow(w, pl.Label)
			continue
		}
		word, err := encodeLine(pl, p.Symbols, nil)
		if err != nil {
			return err
		}
		if pl.Label != "" {
			formatLabelRow(w, pl.Label)
		}
		formatRow(w, pl, word)
	}
	return nil
}
