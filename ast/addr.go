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

// AddressOfExpr is the explicit `&x` operator: legal only when X
// designates storage.
type AddressOfExpr struct {
	Src gast.Node
	X   Expr
}

func (*AddressOfExpr) node() {}

// Source implements Node.
func (e *AddressOfExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *AddressOfExpr) Type() ir.Type { return e.X.LValueType() }

// LValueType implements Expr: the address itself is a value, not storage.
func (e *AddressOfExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *AddressOfExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr.
func (e *AddressOfExpr) TypeCheck(ctx *Context) Expr {
	x := e.X.TypeCheck(ctx)
	if x == nil {
		return nil
	}
	if ir.IsNone(x.LValueType()) {
		ctx.Sink.Error(e.Src, "address-of operand does not designate storage")
		return nil
	}
	e.X = x
	return e
}

// Optimize implements Expr.
func (e *AddressOfExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *AddressOfExpr) EstimateCost() int { return e.X.EstimateCost() }

// DerefExpr is `*p`, `p->field`'s implicit deref, or the dereference the
// conversion engine inserts for a reference-to-target dereference.
type DerefExpr struct {
	Src gast.Node
	X   Expr
	Typ ir.Type
}

func (*DerefExpr) node() {}

// Source implements Node.
func (e *DerefExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *DerefExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: dereferencing always yields storage.
func (e *DerefExpr) LValueType() ir.Type {
	return ir.NewPointerType(e.Typ, ir.VariabilityOf(e.Typ), ir.IsConst(e.Typ))
}

// BaseSymbol implements Expr.
func (e *DerefExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr: it type-checks X, then takes the pointee of
// a pointer or the target of a reference as this node's type.
func (e *DerefExpr) TypeCheck(ctx *Context) Expr {
	x := e.X.TypeCheck(ctx)
	if x == nil {
		return nil
	}
	e.X = x
	switch t := x.Type().(type) {
	case *ir.PointerType:
		e.Typ = t.Base
	case *ir.ReferenceType:
		e.Typ = t.Target
	default:
		ctx.Sink.Error(e.Src, "indirection requires a pointer or reference operand")
		return nil
	}
	return e
}

// Optimize implements Expr.
func (e *DerefExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *DerefExpr) EstimateCost() int { return e.X.EstimateCost() + 1 }

// ReferenceOfExpr is the implicit reference-binding the conversion engine
// inserts for binding a value to a reference parameter.
type ReferenceOfExpr struct {
	Src gast.Node
	X   Expr
	Typ *ir.ReferenceType
}

func (*ReferenceOfExpr) node() {}

// Source implements Node.
func (e *ReferenceOfExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *ReferenceOfExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr.
func (e *ReferenceOfExpr) LValueType() ir.Type { return e.X.LValueType() }

// BaseSymbol implements Expr.
func (e *ReferenceOfExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr: constructed already checked by applyConversion.
func (e *ReferenceOfExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr.
func (e *ReferenceOfExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *ReferenceOfExpr) EstimateCost() int { return e.X.EstimateCost() }

// ArrayDecayExpr is the address-of-first-element substitution an
// array undergoes when converted to a pointer.
type ArrayDecayExpr struct {
	Src gast.Node
	X   Expr
	Typ *ir.PointerType
}

func (*ArrayDecayExpr) node() {}

// Source implements Node.
func (e *ArrayDecayExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *ArrayDecayExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: the decayed pointer is a value, not storage
// (it is not the array's own storage slot).
func (e *ArrayDecayExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *ArrayDecayExpr) BaseSymbol() *sym.Variable { return e.X.BaseSymbol() }

// TypeCheck implements Expr: constructed already checked by applyConversion.
func (e *ArrayDecayExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr.
func (e *ArrayDecayExpr) Optimize(ctx *Context) Expr {
	e.X = e.X.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *ArrayDecayExpr) EstimateCost() int { return e.X.EstimateCost() }
