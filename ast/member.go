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

// MemberExpr is `x.field` or `p->field`; Arrow records which spelling
// was written. TypeCheck does not consult it: both forms are checked
// identically, a pointer base being dereferenced first.
type MemberExpr struct {
	Src   gast.Node
	X     Expr
	Field string
	Arrow bool
	Typ   ir.Type
}

func (*MemberExpr) node() {}

// Source implements Node.
func (e *MemberExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *MemberExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a struct field access designates storage
// whenever its base does.
func (e *MemberExpr) LValueType() ir.Type {
	if ir.IsNone(e.X.LValueType()) {
		return ir.None
	}
	return ir.NewPointerType(e.Typ, ir.VariabilityOf(e.Typ), ir.IsConst(e.Typ))
}

// BaseSymbol implements Expr.
func (e *MemberExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr.
func (e *MemberExpr) TypeCheck(ctx *Context) Expr {
	x := e.X.TypeCheck(ctx)
	if x == nil {
		return nil
	}
	t := x.Type()
	if p, isPtr := t.(*ir.PointerType); isPtr {
		x = &DerefExpr{Src: x.Source(), X: x, Typ: p.Base}
		t = p.Base
	}
	st, isStruct := t.(*ir.StructType)
	if !isStruct {
		ctx.Sink.Error(e.Src, fmt.Sprintf("%q is not a struct", t.String()))
		return nil
	}
	field, found := st.FieldByName(e.Field)
	if !found {
		msg := fmt.Sprintf("struct %q has no member named %q", st.Name, e.Field)
		if suggestions := ctx.Syms.ClosestTypeMatch(e.Field); len(suggestions) > 0 {
			msg += fmt.Sprintf("; did you mean %q?", suggestions[0])
		}
		ctx.Sink.Error(e.Src, msg)
		return nil
	}
	e.X = x
	e.Typ = asVariabilityOf(field.Type, ir.VariabilityOf(t))
	if field.Const {
		e.Typ = ir.AsConst(e.Typ)
	}
	return e
}

// Optimize implements Expr.
func (e *MemberExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *MemberExpr) EstimateCost() int { return e.X.EstimateCost() + 1 }
