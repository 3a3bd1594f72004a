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

// Package sym implements the lexical symbol table: scoped storage for
// variables, named types and function overload sets, plus near-miss
// suggestions for unresolved identifiers.
package sym

import (
	"go/ast"

	"github.com/kavalang/spmdc/ir"
)

// StorageClass records where a variable's value lives, mirroring the
// declaration qualifiers a caller's parser would have already resolved.
type StorageClass int

// The storage classes a variable symbol can carry.
const (
	StorageAuto StorageClass = iota
	StorageStatic
	StorageExternC
	StorageTask
)

// Variable is a declared name bound to a type and a storage class. pos
// anchors diagnostics about this declaration (shadow warnings, etc.) back
// to the source.
type Variable struct {
	Name    string
	Type    ir.Type
	Storage StorageClass
	Pos     ast.Node
}

// Function is one overload of a declared function name.
type Function struct {
	Name string
	Type *ir.FuncType
	Pos  ast.Node
}

// MangledName returns the signature-qualified name used to key this
// overload among others sharing the same declared Name.
func (f *Function) MangledName() string {
	return f.Name + f.Type.Mangle()
}

// NamedType is a struct or enum type bound to a declared name.
type NamedType struct {
	Name string
	Type ir.Type
	Pos  ast.Node
}
