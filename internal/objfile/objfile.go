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

// Package objfile implements the single binary word codec shared by the
// assembler's Pass 2 writer and the VM's loader. An object file is a raw
// concatenation of 32-bit signed words, one per emitted instruction or data
// directive, with no header, no trailer and no padding. Words are encoded
// little-endian; this is a fixed choice (the original tool emitted raw host
// byte order) made so the format is portable across hosts. Both producer and
// consumer go through this package so that they can never disagree about it.
package objfile

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Word is a single machine word as stored in an object file.
type Word = int32

// wordSize is the number of bytes a Word occupies on disk.
const wordSize = 4

// Encode returns the 4-byte little-endian encoding of w.
func Encode(w Word) [wordSize]byte {
	var b [wordSize]byte
	binary.LittleEndian.PutUint32(b[:], uint32(w))
	return b
}

// Decode reconstructs a Word from its 4-byte little-endian encoding. The
// caller must supply at least wordSize bytes.
func Decode(b []byte) Word {
	return Word(int32(binary.LittleEndian.Uint32(b)))
}

// Writer emits a sequence of words in the object file's fixed encoding.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer that buffers its output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteWord appends v to the object stream.
func (w *Writer) WriteWord(v Word) error {
	b := Encode(v)
	_, err := w.w.Write(b[:])
	return errors.Wrap(err, "objfile: write word failed")
}

// Flush flushes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return errors.Wrap(w.w.Flush(), "objfile: flush failed")
}

// Reader reads a sequence of words from the object file's fixed encoding.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader that buffers reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadWord reads the next word. It returns io.EOF when the stream is
// exhausted on a word boundary, and a descriptive error if the file ends in
// the middle of a word (a malformed object file per the format spec).
func (r *Reader) ReadWord() (Word, error) {
	var b [wordSize]byte
	n, err := io.ReadFull(r.r, b[:])
	switch err {
	case nil:
		return Decode(b[:]), nil
	case io.EOF:
		return 0, io.EOF
	case io.ErrUnexpectedEOF:
		return 0, errors.Errorf("objfile: truncated object file, %d trailing byte(s)", n)
	default:
		return 0, errors.Wrap(err, "objfile: read word failed")
	}
}
