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

// SelectExpr is the ternary `cond ? a : b`. When cond is varying, the
// result is forced varying too: a per-lane select needs both arms
// materialized regardless of the mask, the way the masked-store model
// requires for every other varying write.
type SelectExpr struct {
	Src        gast.Node
	Cond, A, B Expr
	Typ        ir.Type
}

func (*SelectExpr) node() {}

// Source implements Node.
func (e *SelectExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *SelectExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a select result is never storage.
func (e *SelectExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *SelectExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr.
func (e *SelectExpr) TypeCheck(ctx *Context) Expr {
	cond := e.Cond.TypeCheck(ctx)
	a := e.A.TypeCheck(ctx)
	b := e.B.TypeCheck(ctx)
	if cond == nil || a == nil || b == nil {
		return nil
	}
	if !ir.IsBool(cond.Type()) {
		ctx.Sink.Error(e.Src, "select condition must be bool")
		return nil
	}
	forceVarying := ir.VariabilityOf(cond.Type()) == ir.Varying
	common, err := ir.MoreGeneralType(a.Type(), b.Type(), "select expression", forceVarying, 0)
	if err != nil {
		ctx.Sink.Error(e.Src, err.Error())
		return nil
	}
	na := applyConversion(ctx, a, common, isNullLiteral(a))
	nb := applyConversion(ctx, b, common, isNullLiteral(b))
	if na == nil || nb == nil {
		return nil
	}
	e.Cond, e.A, e.B = cond, na, nb
	e.Typ = common
	return e
}

// Optimize implements Expr: folds to whichever arm a constant condition
// selects.
func (e *SelectExpr) Optimize(ctx *Context) Expr {
	e.Cond = e.Cond.Optimize(ctx)
	e.A = e.A.Optimize(ctx)
	e.B = e.B.Optimize(ctx)
	if c, ok := e.Cond.(*ConstExpr); ok {
		if c.Val.BoolVal {
			return e.A
		}
		return e.B
	}
	return e
}

// EstimateCost implements Expr.
func (e *SelectExpr) EstimateCost() int {
	return e.Cond.EstimateCost() + e.A.EstimateCost() + e.B.EstimateCost() + 1
}
