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

package ast

import (
	gast "go/ast"

	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// SyncExpr is the `sync;` statement-as-expression: it waits for every
// outstanding launched task to complete. It carries no value.
type SyncExpr struct {
	Src gast.Node
}

func (*SyncExpr) node() {}

// Source implements Node.
func (e *SyncExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *SyncExpr) Type() ir.Type { return ir.VoidType() }

// LValueType implements Expr.
func (e *SyncExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *SyncExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr: always legal, wherever a statement may
// appear.
func (e *SyncExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr: a sync is a side effect, never folded away.
func (e *SyncExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *SyncExpr) EstimateCost() int { return 8 }
