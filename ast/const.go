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

// Literal is the value payload of a ConstExpr: at most one of IntVal,
// FloatVal, BoolVal is meaningful, selected by Typ's kind.
type Literal struct {
	IntVal   int64
	FloatVal float64
	BoolVal  bool
}

// IsAllZeroInt reports whether this literal is an integer 0 — the
// "could be a null pointer" flag the overload resolver and the pointer
// conversion rules (case 6) both key on.
func (l Literal) IsAllZeroInt(t ir.Type) bool {
	return ir.IsInteger(t) && l.IntVal == 0
}

// ConstExpr is a literal of atomic type.
type ConstExpr struct {
	Src gast.Node
	Typ *ir.AtomicType
	Val Literal
}

func (*ConstExpr) node() {}

// Source implements Node.
func (e *ConstExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *ConstExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a literal never designates storage.
func (e *ConstExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *ConstExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr: a literal is already fully typed.
func (e *ConstExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr: a literal is already its own fixed point.
func (e *ConstExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *ConstExpr) EstimateCost() int { return 0 }

// NullPointerExpr is the `NULL` literal: type `void *`, distinct from
// every other pointer literal.
type NullPointerExpr struct {
	Src gast.Node
}

func (*NullPointerExpr) node() {}

// Source implements Node.
func (e *NullPointerExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *NullPointerExpr) Type() ir.Type { return ir.NullPointerType() }

// LValueType implements Expr.
func (e *NullPointerExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *NullPointerExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr.
func (e *NullPointerExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr.
func (e *NullPointerExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *NullPointerExpr) EstimateCost() int { return 0 }
