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
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Assemble runs Pass1 and Pass2 over src, writing the object file to obj and
// the listing to lst. name identifies src in any error returned (typically
// the source path) and carries no other meaning. warn may be nil.
//
// Pass2's listing output is cross-checked against RenderListing before
// either output is written: the two render the same Program through two
// independent call paths (one streaming, one from the fully-resolved
// program), so any future change that makes them disagree is caught here
// instead of shipping a listing file nobody would notice was wrong.
func Assemble(name string, src io.Reader, obj, lst, warn io.Writer) error {
	p, err := Pass1(src)
	if err != nil {
		return annotate(name, err)
	}

	var objBuf, lstBuf bytes.Buffer
	if err := Pass2(p, &objBuf, &lstBuf, warn); err != nil {
		return annotate(name, err)
	}

	var verify bytes.Buffer
	if err := RenderListing(p, &verify); err != nil {
		return annotate(name, err)
	}
	if verify.String() != lstBuf.String() {
		return annotate(name, errors.New("internal error: listing verification mismatch"))
	}

	if _, err := obj.Write(objBuf.Bytes()); err != nil {
		return annotate(name, errors.Wrap(err, "write object file"))
	}
	if _, err := lst.Write(lstBuf.Bytes()); err != nil {
		return annotate(name, errors.Wrap(err, "write listing file"))
	}
	return nil
}

func annotate(name string, err error) error {
	if ae, ok := err.(*Error); ok {
		return errors.Errorf("%s:%s", name, ae.Error())
	}
	return errors.Wrap(err, name)
}
