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
	"io"

	"github.com/pkg/errors"

	"stackvm/internal/objfile"
)

// Load reads words from r into in.Memory starting at address 0, growing the
// memory image by doubling whenever the program outruns it. It returns the
// number of words read. A trailing partial word is a load error.
func Load(in *Instance, r io.Reader) (int, error) {
	rd := objfile.NewReader(r)
	addr := 0
	for {
		w, err := rd.ReadWord()
		if err == io.EOF {
			return addr, nil
		}
		if err != nil {
			return addr, errors.Wrap(err, "vm: load failed")
		}
		if addr >= len(in.Memory) {
			newSize := len(in.Memory) * 2
			if newSize == 0 {
				newSize = 1
			}
			grown := make([]int32, newSize)
			copy(grown, in.Memory)
			in.Memory = grown
		}
		in.Memory[addr] = w
		addr++
	}
}
