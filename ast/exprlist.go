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

// ExprListExpr is a brace initializer list `{ a, b, c }`. Its type is
// a vector of the elements' common promoted type, sized to the element
// count, matching MoreGeneralType's vectorSize parameter.
type ExprListExpr struct {
	Src   gast.Node
	Elems []Expr
	Typ   ir.Type
}

func (*ExprListExpr) node() {}

// Source implements Node.
func (e *ExprListExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *ExprListExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: an initializer list is never storage.
func (e *ExprListExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *ExprListExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr.
func (e *ExprListExpr) TypeCheck(ctx *Context) Expr {
	if len(e.Elems) == 0 {
		ctx.Sink.Error(e.Src, "empty initializer list")
		return nil
	}
	checked := make([]Expr, len(e.Elems))
	common := ir.Type(nil)
	for i, el := range e.Elems {
		c := el.TypeCheck(ctx)
		if c == nil {
			return nil
		}
		checked[i] = c
		if common == nil {
			common = c.Type()
			continue
		}
		next, err := ir.MoreGeneralType(common, c.Type(), "initializer list", false, 0)
		if err != nil {
			ctx.Sink.Error(e.Src, err.Error())
			return nil
		}
		common = next
	}
	for i, c := range checked {
		converted := applyConversion(ctx, c, common, isNullLiteral(c))
		if converted == nil {
			return nil
		}
		checked[i] = converted
	}
	e.Elems = checked
	e.Typ = ir.NewVectorType(common, len(checked), ir.VariabilityOf(common), false)
	return e
}

// Optimize implements Expr.
func (e *ExprListExpr) Optimize(ctx *Context) Expr {
	for i, el := range e.Elems {
		e.Elems[i] = el.Optimize(ctx)
	}
	return e
}

// EstimateCost implements Expr.
func (e *ExprListExpr) EstimateCost() int {
	cost := 0
	for _, el := range e.Elems {
		cost += el.EstimateCost()
	}
	return cost
}
