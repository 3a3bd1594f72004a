// Copyright 2024 Google LLC
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

// Package diag accumulates compiler diagnostics and formats them against a
// source position. It is the core's only contract with diagnostic
// rendering: message text layout belongs to the caller, not to this
// package.
package diag

import (
	"go/ast"
	"go/token"
)

// FileSet builds positioned diagnostics for a given file set.
type FileSet struct {
	FSet *token.FileSet
}

// Errorf returns a formatted, positioned error.
func (f FileSet) Errorf(node ast.Node, format string, a ...any) error {
	return Errorf(f.FSet, node, format, a...)
}

// Position attaches position information from node to err.
func (f FileSet) Position(node ast.Node, err error) error {
	return Position(f.FSet, node, err)
}

// Pos returns a formatter carrying a fileset and a fixed position.
func (f FileSet) Pos(node ast.Node) Pos {
	return Pos{FileSet: f, Node: node}
}

// Pos builds diagnostics for one fixed position in a file set.
type Pos struct {
	FileSet
	Node ast.Node
}

// Errorf returns a formatted, positioned error at the fixed position.
func (p Pos) Errorf(format string, a ...any) error {
	return p.FileSet.Errorf(p.Node, format, a...)
}

// PosString renders a position the way the sink expects to see it in a
// message prefix.
func PosString(fset *token.FileSet, pos token.Pos) string {
	if fset == nil {
		return ""
	}
	return fset.Position(pos).String() + ":"
}
