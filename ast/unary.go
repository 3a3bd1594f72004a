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
	"fmt"
	gast "go/ast"

	"github.com/kavalang/spmdc/check"
	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// UnaryOp is the closed set of unary operators.
type UnaryOp int

// The unary operators the checker and folder understand.
const (
	Neg UnaryOp = iota
	LogicalNot
	BitNot
	PreInc
	PreDec
	PostInc
	PostDec
)

// UnaryExpr is a prefix or postfix unary operator application.
type UnaryExpr struct {
	Src gast.Node
	Op  UnaryOp
	X   Expr
	Typ ir.Type
}

func (*UnaryExpr) node() {}

// Source implements Node.
func (e *UnaryExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *UnaryExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: unary results are values, not storage,
// except prefix ++/-- which yield the same storage as their operand.
func (e *UnaryExpr) LValueType() ir.Type {
	switch e.Op {
	case PreInc, PreDec:
		return e.X.LValueType()
	default:
		return ir.None
	}
}

// BaseSymbol implements Expr.
func (e *UnaryExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr.
func (e *UnaryExpr) TypeCheck(ctx *Context) Expr {
	x := e.X.TypeCheck(ctx)
	if x == nil {
		return nil
	}
	e.X = x
	t := x.Type()
	switch e.Op {
	case Neg:
		if !ir.IsNumeric(t) || ir.IsBool(t) {
			ctx.Sink.Error(e.Src, fmt.Sprintf("unary minus requires a numeric operand, got %q", t.String()))
			return nil
		}
	case BitNot:
		if !ir.IsInteger(t) {
			ctx.Sink.Error(e.Src, fmt.Sprintf("bitwise negation requires an integer operand, got %q", t.String()))
			return nil
		}
	case LogicalNot:
		if !ir.IsBool(t) {
			ctx.Sink.Error(e.Src, fmt.Sprintf("logical negation requires a bool operand, got %q", t.String()))
			return nil
		}
	case PreInc, PreDec, PostInc, PostDec:
		if ir.IsNone(x.LValueType()) {
			ctx.Sink.Error(e.Src, "increment/decrement operand does not designate storage")
			return nil
		}
		if !ir.IsNumeric(t) {
			ctx.Sink.Error(e.Src, fmt.Sprintf("increment/decrement requires a numeric operand, got %q", t.String()))
			return nil
		}
	}
	e.Typ = t
	return e
}

// Optimize implements Expr: folds when X is a constant. Folding covers
// every integer width uniformly, including int8/uint8/int16/uint16/
// int64/uint64, by routing through check.WrapInt the same way the binary
// folder does.
func (e *UnaryExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	c, ok := e.X.(*ConstExpr)
	if !ok {
		return e
	}
	switch e.Op {
	case Neg:
		if ir.IsFloat(c.Typ) {
			return &ConstExpr{Src: e.Src, Typ: c.Typ, Val: Literal{FloatVal: -c.Val.FloatVal}}
		}
		return &ConstExpr{Src: e.Src, Typ: c.Typ, Val: Literal{IntVal: check.WrapInt(-c.Val.IntVal, c.Typ.AKind)}}
	case BitNot:
		return &ConstExpr{Src: e.Src, Typ: c.Typ, Val: Literal{IntVal: check.WrapInt(^c.Val.IntVal, c.Typ.AKind)}}
	case LogicalNot:
		return &ConstExpr{Src: e.Src, Typ: c.Typ, Val: Literal{BoolVal: !c.Val.BoolVal}}
	default:
		return e // ++/-- never fold: they have a storage side effect.
	}
}

// EstimateCost implements Expr.
func (e *UnaryExpr) EstimateCost() int { return e.X.EstimateCost() + 1 }
