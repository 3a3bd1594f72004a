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

	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// AssignOp is the closed set of assignment operators. Compound forms
// (AddSet, SubSet, ...) desugar to the matching BinaryOp during checking.
type AssignOp int

// The assignment operators.
const (
	Set AssignOp = iota
	AddSet
	SubSet
	MulSet
	DivSet
	ModSet
	ShlSet
	ShrSet
	AndSet
	OrSet
	XorSet
)

var compoundToBinary = map[AssignOp]BinaryOp{
	AddSet: Add, SubSet: Sub, MulSet: Mul, DivSet: Div, ModSet: Mod,
	ShlSet: Shl, ShrSet: Shr, AndSet: BitAnd, OrSet: BitOr, XorSet: BitXor,
}

// AssignExpr is `lhs = rhs` or one of the compound forms.
type AssignExpr struct {
	Src      gast.Node
	Op       AssignOp
	Lhs, Rhs Expr
	Typ      ir.Type
}

func (*AssignExpr) node() {}

// Source implements Node.
func (e *AssignExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *AssignExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: an assignment's value is the (now updated)
// lhs storage, so it designates the same storage lhs did.
func (e *AssignExpr) LValueType() ir.Type { return e.Lhs.LValueType() }

// BaseSymbol implements Expr.
func (e *AssignExpr) BaseSymbol() *sym.Variable { return e.Lhs.BaseSymbol() }

// TypeCheck implements Expr.
func (e *AssignExpr) TypeCheck(ctx *Context) Expr {
	lhs := e.Lhs.TypeCheck(ctx)
	rhs := e.Rhs.TypeCheck(ctx)
	if lhs == nil || rhs == nil {
		return nil
	}
	e.Lhs, e.Rhs = lhs, rhs

	lvType := lhs.LValueType()
	lvPtr, isLV := lvType.(*ir.PointerType)
	if !isLV {
		ctx.Sink.Error(e.Src, "left-hand side of assignment is not assignable")
		return nil
	}
	target := lvPtr.Base

	if msg := constViolation(target); msg != "" {
		ctx.Sink.Error(e.Src, msg)
		return nil
	}

	if binOp, isCompound := compoundToBinary[e.Op]; isCompound {
		combined := &BinaryExpr{Src: e.Src, Op: binOp, X: lhs, Y: rhs}
		checked := combined.TypeCheck(ctx)
		if checked == nil {
			return nil
		}
		rhs = checked
	}

	converted := applyConversion(ctx, rhs, target, isNullLiteral(rhs))
	if converted == nil {
		return nil
	}
	e.Rhs = converted
	e.Typ = target
	return e
}

// constViolation reports the exact diagnostic text for an assignment
// target that cannot be assigned as a whole, or "" if assignment is
// legal.
func constViolation(target ir.Type) string {
	if ir.IsConst(target) {
		return fmt.Sprintf("Can't assign to type %q on left-hand side of expression.", assignTargetString(target))
	}
	if st, isStruct := target.(*ir.StructType); isStruct && ir.HasConstMember(st) {
		f := firstConstField(st)
		return fmt.Sprintf("Can't assign to struct %q: member %q has type %q.", st.Name, f.Name, assignTargetString(f.Type))
	}
	return ""
}

// firstConstField returns the first field, found by a depth-first walk,
// that is itself const or transitively contains a const member.
func firstConstField(st *ir.StructType) ir.StructField {
	for _, f := range st.Fields {
		if f.Const {
			return f
		}
		if sub, ok := f.Type.(*ir.StructType); ok && ir.HasConstMember(sub) {
			return f
		}
	}
	return ir.StructField{}
}

func isNullLiteral(e Expr) bool {
	c, ok := e.(*ConstExpr)
	return ok && c.Val.IsAllZeroInt(c.Typ)
}

// Optimize implements Expr: assignments are never folded away — they
// carry a storage side effect.
func (e *AssignExpr) Optimize(ctx *Context) Expr {
	e.Rhs = e.Rhs.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *AssignExpr) EstimateCost() int { return e.Rhs.EstimateCost() + 1 }
