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

	"github.com/kavalang/spmdc/check"
	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// TypeCastExpr wraps X with a target type: either an implicit cast the
// conversion engine inserted, or an explicit `(Typ)x` parse node.
type TypeCastExpr struct {
	Src      gast.Node
	X        Expr
	Typ      ir.Type
	Explicit bool
}

func (*TypeCastExpr) node() {}

// Source implements Node.
func (e *TypeCastExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *TypeCastExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a cast never designates storage.
func (e *TypeCastExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *TypeCastExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr. An implicitly-inserted cast (Explicit ==
// false) was already checked by applyConversion's caller; an explicit
// cast parsed directly from source still needs X checked and the
// conversion validated with the same check.Convert table: a failed
// conversion is an error, and a conversion Convert accepts with a
// warning reports that warning.
func (e *TypeCastExpr) TypeCheck(ctx *Context) Expr {
	if !e.Explicit {
		return e
	}
	x := e.X.TypeCheck(ctx)
	if x == nil {
		return nil
	}
	e.X = x
	decision := check.Convert(x.Type(), e.Typ, false)
	if !decision.OK {
		ctx.Sink.Error(e.Src, convertErrorMessage(x.Type(), e.Typ))
		return nil
	}
	if decision.Warning != "" {
		ctx.Sink.Warning(e.Src, decision.Warning)
	}
	return e
}

// Optimize implements Expr: folds when X is a constant of atomic type.
func (e *TypeCastExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	c, ok := e.X.(*ConstExpr)
	toAtom, toOk := e.Typ.(*ir.AtomicType)
	if !ok || !toOk {
		return e
	}
	if ir.IsFloat(toAtom) {
		v := c.Val.FloatVal
		if ir.IsInteger(c.Typ) {
			v = float64(c.Val.IntVal)
		}
		return &ConstExpr{Src: e.Src, Typ: toAtom, Val: Literal{FloatVal: v}}
	}
	if ir.IsInteger(toAtom) {
		v := c.Val.IntVal
		if ir.IsFloat(c.Typ) {
			v = int64(c.Val.FloatVal)
		}
		if ir.IsBool(c.Typ) && c.Val.BoolVal {
			v = 1
		}
		return &ConstExpr{Src: e.Src, Typ: toAtom, Val: Literal{IntVal: check.WrapInt(v, toAtom.AKind)}}
	}
	return e
}

// EstimateCost implements Expr.
func (e *TypeCastExpr) EstimateCost() int { return e.X.EstimateCost() + 1 }
