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

// SizeOfExpr is `sizeof(x)` or `sizeof(TypeName)`; exactly one of X or
// OperandType is set, matching the two parse shapes the grammar allows.
type SizeOfExpr struct {
	Src         gast.Node
	X           Expr
	OperandType ir.Type
	Typ         ir.Type
}

func (*SizeOfExpr) node() {}

// Source implements Node.
func (e *SizeOfExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *SizeOfExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: sizeof is a pure value.
func (e *SizeOfExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *SizeOfExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr: the operand expression, if any, is checked
// only for its type — sizeof never evaluates it; the core never
// evaluates expressions at run time.
func (e *SizeOfExpr) TypeCheck(ctx *Context) Expr {
	if e.X != nil {
		x := e.X.TypeCheck(ctx)
		if x == nil {
			return nil
		}
		e.X = x
	}
	e.Typ = ctx.Target.PointerIntType
	if e.Typ == nil {
		e.Typ = ir.Uint64Type()
	}
	return e
}

// Optimize implements Expr: sizeof of a type with a statically known
// layout could fold to a ConstExpr, but the core has no byte-layout
// model of its own (that is the emitter's job), so it is left unfolded.
func (e *SizeOfExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *SizeOfExpr) EstimateCost() int { return 1 }
