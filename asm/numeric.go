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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseIntLiteral parses a numeric operand with C-style base detection:
// a "0x"/"0X" prefix means hexadecimal, a bare leading "0" means octal,
// anything else is decimal. A leading "-" is honored in any base.
func parseIntLiteral(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty numeric operand")
	}
	// strconv's base 0 also accepts 0b/0o prefixes and digit underscores,
	// which are not part of the C-style literal syntax.
	digits := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.Contains(digits, "_") || strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0o") {
		return 0, errors.Errorf("%q is not a valid numeric literal", s)
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "%q is not a valid numeric literal", s)
	}
	return int32(n), nil
}
