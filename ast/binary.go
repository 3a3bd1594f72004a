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

// BinaryOp is the closed set of binary operators, ordered to match
// check.ArithOp for the arithmetic/comparison subset so the translation
// in arith is a trivial identity.
type BinaryOp int

// The binary operators the checker and folder understand.
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	BitAnd
	BitOr
	BitXor
	Land
	Lor
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op BinaryOp) arith() check.ArithOp { return check.ArithOp(op) }

func (op BinaryOp) isCompare() bool { return op >= Eq && op <= Ge }
func (op BinaryOp) isLogical() bool { return op == Land || op == Lor }
func (op BinaryOp) isShift() bool   { return op == Shl || op == Shr }

// BinaryExpr is a two-operand operator application.
type BinaryExpr struct {
	Src gast.Node
	Op  BinaryOp
	X, Y Expr
	Typ ir.Type
}

func (*BinaryExpr) node() {}

// Source implements Node.
func (e *BinaryExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *BinaryExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a binary result is never storage.
func (e *BinaryExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *BinaryExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr.
func (e *BinaryExpr) TypeCheck(ctx *Context) Expr {
	x := e.X.TypeCheck(ctx)
	y := e.Y.TypeCheck(ctx)
	if x == nil || y == nil {
		return nil
	}
	e.X, e.Y = x, y

	if ptr := e.typeCheckPointerArith(ctx); ptr != nil {
		return ptr
	}

	xt, yt := x.Type(), y.Type()
	if e.Op.isLogical() {
		return e.typeCheckLogical(ctx, xt, yt)
	}

	ctxMsg := "binary operator"
	common, err := ir.MoreGeneralType(xt, yt, ctxMsg, false, 0)
	if err != nil {
		ctx.Sink.Error(e.Src, err.Error())
		return nil
	}
	if e.Op.isShift() {
		// Shift's result type tracks the left operand only, not the
		// promoted common type of both operands.
		common = xt
	} else if !ir.IsNumeric(common) && !e.Op.isCompare() {
		ctx.Sink.Error(e.Src, fmt.Sprintf("operator requires numeric operands, got %q", common.String()))
		return nil
	}
	if e.Op == Mod && ir.IsFloat(common) {
		ctx.Sink.Error(e.Src, "modulo requires integer operands")
		return nil
	}
	if ir.IsInteger(common) && ir.VariabilityOf(xt).Or(ir.VariabilityOf(yt)) == ir.Varying {
		switch e.Op {
		case Div:
			ctx.Sink.PerformanceWarning(e.Src, "division with varying integer types is slow")
		case Mod:
			ctx.Sink.PerformanceWarning(e.Src, "modulus with varying integer types is slow")
		case Shr:
			ctx.Sink.PerformanceWarning(e.Src, "right shift with varying operands is slow")
		}
	}

	nx := applyConversion(ctx, x, common, false)
	ny := applyConversion(ctx, y, common, false)
	if nx == nil || ny == nil {
		return nil
	}
	e.X, e.Y = nx, ny
	if e.Op.isCompare() {
		e.Typ = ir.AsUniform(ir.BoolType())
		e.Typ = asVariabilityOf(e.Typ, ir.VariabilityOf(common))
	} else {
		e.Typ = common
	}
	return e
}

func asVariabilityOf(t ir.Type, v ir.Variability) ir.Type {
	if v == ir.Varying {
		return ir.AsVarying(t)
	}
	return ir.AsUniform(t)
}

func (e *BinaryExpr) typeCheckLogical(ctx *Context, xt, yt ir.Type) Expr {
	if !ir.IsBool(xt) || !ir.IsBool(yt) {
		ctx.Sink.Error(e.Src, "logical operator requires bool operands")
		return nil
	}
	v := ir.VariabilityOf(xt).Or(ir.VariabilityOf(yt))
	e.Typ = asVariabilityOf(ir.BoolType(), v)
	return e
}

// typeCheckPointerArith handles pointer+integer and pointer-pointer,
// returning non-nil (possibly nil on error, meaning "handled, failed")
// only when one of X or Y is a pointer; returns nil otherwise so the
// caller falls through to the numeric path.
func (e *BinaryExpr) typeCheckPointerArith(ctx *Context) Expr {
	xp, xIsPtr := e.X.Type().(*ir.PointerType)
	yp, yIsPtr := e.Y.Type().(*ir.PointerType)
	if !xIsPtr && !yIsPtr {
		return nil
	}
	if xIsPtr && yIsPtr && e.Op == Sub {
		if !ir.EqualIgnoringConst(xp.Base, yp.Base) {
			ctx.Sink.Error(e.Src, "pointer difference requires pointers to the same type")
			return nil
		}
		kind := ir.Int64Kind
		if ctx.Target != nil && (ctx.Target.Is32Bit || ctx.Opt.Force32BitAddressing) {
			kind = ir.Int32Kind
		}
		v := ir.VariabilityOf(xp).Or(ir.VariabilityOf(yp))
		e.Typ = asVariabilityOf(atomicOfKind(kind), v)
		return e
	}
	if xIsPtr && !yIsPtr && (e.Op == Add || e.Op == Sub) && ir.IsInteger(e.Y.Type()) {
		v := ir.VariabilityOf(xp).Or(ir.VariabilityOf(e.Y.Type()))
		e.Typ = asVariabilityOf(xp, v)
		return e
	}
	if yIsPtr && !xIsPtr && e.Op == Add && ir.IsInteger(e.X.Type()) {
		v := ir.VariabilityOf(yp).Or(ir.VariabilityOf(e.X.Type()))
		e.Typ = asVariabilityOf(yp, v)
		return e
	}
	ctx.Sink.Error(e.Src, "invalid pointer arithmetic")
	return nil
}

func atomicOfKind(k ir.Kind) *ir.AtomicType {
	switch k {
	case ir.Int32Kind:
		return ir.Int32Type()
	default:
		return ir.Int64Type()
	}
}

// Optimize implements Expr.
func (e *BinaryExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	if e.Op.isLogical() {
		if cx, ok := e.X.(*ConstExpr); ok {
			if result, determined := check.ShortCircuit(e.Op.arith(), cx.Val.BoolVal); determined {
				return &ConstExpr{Src: e.Src, Typ: ir.BoolType(), Val: Literal{BoolVal: result}}
			}
		}
	}
	e.Y = e.Y.Optimize(ctx)

	if e.Op == Div && ctx.Opt != nil && ctx.Opt.FastMath && ir.IsFloat(e.Typ) {
		if rewritten := e.rewriteReciprocal(ctx); rewritten != nil {
			return rewritten
		}
	}

	cx, xok := e.X.(*ConstExpr)
	cy, yok := e.Y.(*ConstExpr)
	if !xok || !yok {
		return e
	}
	if e.Op.isLogical() {
		result := cx.Val.BoolVal
		if e.Op == Land {
			result = cx.Val.BoolVal && cy.Val.BoolVal
		} else {
			result = cx.Val.BoolVal || cy.Val.BoolVal
		}
		return &ConstExpr{Src: e.Src, Typ: ir.BoolType(), Val: Literal{BoolVal: result}}
	}
	if ir.IsFloat(cx.Typ) {
		if e.Op.isCompare() {
			if result, ok := check.FoldFloatCompare(e.Op.arith(), cx.Val.FloatVal, cy.Val.FloatVal); ok {
				return &ConstExpr{Src: e.Src, Typ: ir.BoolType(), Val: Literal{BoolVal: result}}
			}
			return e
		}
		if result, ok := check.FoldFloatArith(e.Op.arith(), cx.Val.FloatVal, cy.Val.FloatVal); ok {
			return &ConstExpr{Src: e.Src, Typ: cx.Typ, Val: Literal{FloatVal: result}}
		}
		return e
	}
	if e.Op.isCompare() {
		if result, ok := check.FoldIntCompare(e.Op.arith(), cx.Val.IntVal, cy.Val.IntVal, cx.Typ.AKind); ok {
			return &ConstExpr{Src: e.Src, Typ: ir.BoolType(), Val: Literal{BoolVal: result}}
		}
		return e
	}
	if result, ok := check.FoldIntArith(e.Op.arith(), cx.Val.IntVal, cy.Val.IntVal, cx.Typ.AKind); ok {
		return &ConstExpr{Src: e.Src, Typ: cx.Typ, Val: Literal{IntVal: result}}
	}
	return e
}

// rewriteReciprocal implements the fast-math division-by-reciprocal
// rewrite: "x / v" becomes "x * rcp(v)" when a stdlib rcp() overload
// accepting v's type is in scope. A constant divisor is left to the
// ordinary constant-folding path below. Returns nil when no rewrite
// applies, meaning the caller should fall through unchanged.
func (e *BinaryExpr) rewriteReciprocal(ctx *Context) Expr {
	if _, isConst := e.Y.(*ConstExpr); isConst {
		return nil
	}
	candidates := ctx.Syms.LookupFunctionAny("rcp")
	if len(candidates) == 0 {
		ctx.Sink.PerformanceWarning(e.Src, "rcp() not found from stdlib")
		return nil
	}
	match, err := check.ResolveOverload("rcp", candidates, []ir.Type{e.Y.Type()}, []bool{false})
	if err != nil {
		ctx.Sink.PerformanceWarning(e.Src, "rcp() not found from stdlib")
		return nil
	}
	call := &CallExpr{
		Src:  e.Src,
		Func: &FuncSymbolExpr{Src: e.Src, Name: "rcp", Candidates: candidates, Matching: match},
		Args: []Expr{e.Y},
		Typ:  match.Type.Return,
	}
	mul := &BinaryExpr{Src: e.Src, Op: Mul, X: e.X, Y: call, Typ: e.Typ}
	return mul.Optimize(ctx)
}

// EstimateCost implements Expr.
func (e *BinaryExpr) EstimateCost() int { return e.X.EstimateCost() + e.Y.EstimateCost() + 1 }
