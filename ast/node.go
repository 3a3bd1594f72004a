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

// Package ast is the expression AST: a closed set of node kinds sharing
// a type-check / optimize / cost-estimate contract. Every node carries
// the go/ast.Node that produced it for diagnostic positioning, and
// traversal is exhaustive type switching rather than run-time
// downcasting from a virtual hierarchy.
package ast

import (
	gast "go/ast"

	"github.com/kavalang/spmdc/diag"
	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
	"github.com/kavalang/spmdc/target"
)

// Context threads every piece of process-wide state a pass needs —
// the symbol table, the diagnostic sink, the target description and
// optimization flags — explicitly through the call chain instead of
// reading it off global state.
type Context struct {
	Syms   *sym.Table
	Sink   diag.Sink
	Target *target.Info
	Opt    *target.OptFlags
	FSet   *diag.FileSet
}

// Node is implemented by every ast node. node is unexported so the
// variant stays closed to this package.
type Node interface {
	node()
	// Source returns the go/ast node this node was produced from, for
	// positioning diagnostics.
	Source() gast.Node
}

// Expr is the common contract every expression node implements.
type Expr interface {
	Node

	// Type returns the semantic type of the expression's value, or
	// ir.None if an earlier pass already reported a fatal error here.
	Type() ir.Type

	// LValueType returns the pointer-to-target type if this node
	// designates addressable storage, or ir.None otherwise.
	LValueType() ir.Type

	// BaseSymbol returns the root variable this expression ultimately
	// refers to, used to pick the lane mask on assignment. May be nil.
	BaseSymbol() *sym.Variable

	// TypeCheck returns a (possibly substituted) node, or nil if this
	// node could not be given a type; a nil result means a diagnostic
	// has already been reported and the caller must not report again.
	TypeCheck(ctx *Context) Expr

	// Optimize returns a (possibly substituted, typically constant-
	// folded) node, or the receiver unchanged if nothing folds.
	Optimize(ctx *Context) Expr

	// EstimateCost is a small heuristic used by a downstream emitter;
	// not otherwise observable in semantics.
	EstimateCost() int
}
