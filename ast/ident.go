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
	"strings"

	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// IdentExpr is an unresolved name reference as produced by the parser;
// TypeCheck resolves it against the symbol table and substitutes either
// a bound variable reference or a FuncSymbolExpr.
type IdentExpr struct {
	Src  gast.Node
	Name string

	// Resolved is set once TypeCheck succeeds, and makes a second
	// TypeCheck call (e.g. a retry after a sibling error) idempotent.
	Resolved *sym.Variable
}

func (*IdentExpr) node() {}

// Source implements Node.
func (e *IdentExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *IdentExpr) Type() ir.Type {
	if e.Resolved == nil {
		return ir.None
	}
	return e.Resolved.Type
}

// LValueType implements Expr: a resolved variable always designates
// storage, so its lvalue type is pointer-to-its-type.
func (e *IdentExpr) LValueType() ir.Type {
	if e.Resolved == nil {
		return ir.None
	}
	return ir.NewPointerType(e.Resolved.Type, ir.VariabilityOf(e.Resolved.Type), false)
}

// BaseSymbol implements Expr.
func (e *IdentExpr) BaseSymbol() *sym.Variable { return e.Resolved }

// TypeCheck implements Expr: resolves the name as a variable first, then
// as a function symbol reference; reports a lookup error with near-miss
// suggestions on failure.
func (e *IdentExpr) TypeCheck(ctx *Context) Expr {
	if e.Resolved != nil {
		return e
	}
	if v := ctx.Syms.LookupVariable(e.Name); v != nil {
		e.Resolved = v
		return e
	}
	if overloads := ctx.Syms.LookupFunctionAny(e.Name); len(overloads) > 0 {
		return &FuncSymbolExpr{Src: e.Src, Name: e.Name, Candidates: overloads}
	}
	ctx.Sink.Error(e.Src, lookupError(e.Name, ctx.Syms.ClosestVariableOrFunctionMatch(e.Name)))
	return nil
}

func lookupError(name string, suggestions []string) string {
	msg := "Undeclared symbol \"" + name + "\""
	if len(suggestions) > 0 {
		msg += "; did you mean " + strings.Join(suggestions, " or ") + "?"
	}
	return msg
}

// Optimize implements Expr.
func (e *IdentExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *IdentExpr) EstimateCost() int { return 1 }

// FuncSymbolExpr is a reference to an overload set by name, bound to one
// concrete overload once the call site's argument types are known.
type FuncSymbolExpr struct {
	Src        gast.Node
	Name       string
	Candidates []*sym.Function

	// Matching is set by CallExpr.TypeCheck (or by module's
	// ResolveOverload) once the call site's argument types are known.
	Matching *sym.Function
}

func (*FuncSymbolExpr) node() {}

// Source implements Node.
func (e *FuncSymbolExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *FuncSymbolExpr) Type() ir.Type {
	if e.Matching == nil {
		return ir.None
	}
	return e.Matching.Type
}

// LValueType implements Expr: function references are never storage.
func (e *FuncSymbolExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *FuncSymbolExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr: already resolved to an overload set by the
// identifier lookup that produced it; binding a specific overload to
// Matching happens at the call site, where argument types are known.
func (e *FuncSymbolExpr) TypeCheck(ctx *Context) Expr { return e }

// Optimize implements Expr.
func (e *FuncSymbolExpr) Optimize(ctx *Context) Expr { return e }

// EstimateCost implements Expr.
func (e *FuncSymbolExpr) EstimateCost() int { return 0 }
