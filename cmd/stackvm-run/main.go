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

// Command stackvm-run loads and executes an object file:
// stackvm-run <input.obj>
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"stackvm/vm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: stackvm-run <input.obj>")
		return 1
	}

	in, err := loadAndRun(args[0])
	if in != nil {
		vm.Dump(os.Stdout, in)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "stackvm-run:", err)
		return 1
	}
	return 0
}

func loadAndRun(objPath string) (*vm.Instance, error) {
	f, err := os.Open(objPath)
	if err != nil {
		return nil, errors.Wrap(err, "open object file")
	}
	defer f.Close()

	in := vm.New(vm.DefaultMemorySize)
	n, err := vm.Load(in, f)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	fmt.Printf("loaded %d words\n", n)

	if err := vm.Run(in); err != nil {
		return in, err
	}
	return in, nil
}
