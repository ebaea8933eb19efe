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

// Package ioerr provides a small write wrapper for code that emits many
// small writes (the assembler's listing rows) and would otherwise have to check an error after every one of them.
package ioerr

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and latches the first error it sees. Once Err is
// set, every subsequent Write is a no-op that returns the same error, so
// callers can fire off a sequence of writes and check Err once at the end.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a Writer delegating to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
