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

// IndexExpr is `base[index]` on an array, vector, or pointer.
type IndexExpr struct {
	Src         gast.Node
	Base, Index Expr
	Typ         ir.Type
}

func (*IndexExpr) node() {}

// Source implements Node.
func (e *IndexExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *IndexExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: indexing an array or pointer always
// designates storage; indexing a vector (by-value SIMD register) does
// not.
func (e *IndexExpr) LValueType() ir.Type {
	switch e.Base.Type().(type) {
	case *ir.ArrayType, *ir.PointerType:
		return ir.NewPointerType(e.Typ, ir.VariabilityOf(e.Typ), ir.IsConst(e.Typ))
	default:
		return ir.None
	}
}

// BaseSymbol implements Expr.
func (e *IndexExpr) BaseSymbol() *sym.Variable { return e.Base.BaseSymbol() }

// TypeCheck implements Expr. Per invariant 6, an indexed r-value is
// varying if either the base or the index is varying.
func (e *IndexExpr) TypeCheck(ctx *Context) Expr {
	base := e.Base.TypeCheck(ctx)
	index := e.Index.TypeCheck(ctx)
	if base == nil || index == nil {
		return nil
	}
	if !ir.IsInteger(index.Type()) || ir.IsBool(index.Type()) {
		ctx.Sink.Error(e.Src, "index expression must be an integer")
		return nil
	}

	baseType := base.Type()
	if arr, isArr := baseType.(*ir.ArrayType); isArr {
		decayed := &ArrayDecayExpr{Src: base.Source(), X: base, Typ: ir.NewPointerType(arr.Elem, arr.Var, arr.Const)}
		base = decayed
		baseType = decayed.Typ
	}

	var elem ir.Type
	switch t := baseType.(type) {
	case *ir.PointerType:
		elem = t.Base
	case *ir.VectorType:
		elem = t.Elem
	default:
		ctx.Sink.Error(e.Src, "indexed value is not an array, pointer, or vector")
		return nil
	}
	v := ir.VariabilityOf(baseType).Or(ir.VariabilityOf(index.Type()))
	e.Base, e.Index = base, index
	e.Typ = asVariabilityOf(elem, v)
	return e
}

// Optimize implements Expr.
func (e *IndexExpr) Optimize(ctx *Context) Expr {
	e.Base = e.Base.Optimize(ctx)
	e.Index = e.Index.Optimize(ctx)
	return e
}

// EstimateCost implements Expr.
func (e *IndexExpr) EstimateCost() int { return e.Base.EstimateCost() + e.Index.EstimateCost() + 1 }
