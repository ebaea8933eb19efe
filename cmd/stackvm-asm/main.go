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

// Command stackvm-asm assembles a source file into an object file and a
// listing: stackvm-asm <input.asm> <output.obj> <output.lst>
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"stackvm/asm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: stackvm-asm <input.asm> <output.obj> <output.lst>")
		return 1
	}
	srcPath, objPath, lstPath := args[0], args[1], args[2]

	if err := assembleFiles(srcPath, objPath, lstPath); err != nil {
		fmt.Fprintln(os.Stderr, "stackvm-asm:", err)
		return 1
	}
	return 0
}

func assembleFiles(srcPath, objPath, lstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrap(err, "open source")
	}
	defer src.Close()

	obj, err := os.Create(objPath)
	if err != nil {
		return errors.Wrap(err, "create object file")
	}
	defer obj.Close()

	lst, err := os.Create(lstPath)
	if err != nil {
		return errors.Wrap(err, "create listing file")
	}
	defer lst.Close()

	if err := asm.Assemble(srcPath, src, obj, lst, os.Stderr); err != nil {
		return err
	}
	fmt.Printf("assembled %s -> %s, %s\n", srcPath, objPath, lstPath)
	return nil
}
