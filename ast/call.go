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

// LaunchSpec marks a call as a `launch[count] f(args)` task launch.
// Count is nil for a bare `launch f(args)` (launch count implicitly 1).
type LaunchSpec struct {
	Count Expr
}

// CallExpr is a function call, with an optional launch.
type CallExpr struct {
	Src    gast.Node
	Func   Expr
	Args   []Expr
	Launch *LaunchSpec
	Typ    ir.Type
}

func (*CallExpr) node() {}

// Source implements Node.
func (e *CallExpr) Source() gast.Node { return e.Src }

// Type implements Expr.
func (e *CallExpr) Type() ir.Type { return e.Typ }

// LValueType implements Expr: a call result is never storage.
func (e *CallExpr) LValueType() ir.Type { return ir.None }

// BaseSymbol implements Expr.
func (e *CallExpr) BaseSymbol() *sym.Variable { return nil }

// TypeCheck implements Expr: resolves the callee's overload set against
// the checked argument types, then converts each argument to its bound
// formal type.
func (e *CallExpr) TypeCheck(ctx *Context) Expr {
	fn := e.Func.TypeCheck(ctx)
	if fn == nil {
		return nil
	}
	args := make([]Expr, len(e.Args))
	ok := true
	for i, a := range e.Args {
		checked := a.TypeCheck(ctx)
		if checked == nil {
			ok = false
			continue
		}
		args[i] = checked
	}
	if !ok {
		return nil
	}

	fse, isOverloadRef := fn.(*FuncSymbolExpr)
	if !isOverloadRef {
		ctx.Sink.Error(e.Src, "callee is not a function")
		return nil
	}
	argTypes := make([]ir.Type, len(args))
	nullFlags := make([]bool, len(args))
	for i, a := range args {
		argTypes[i] = a.Type()
		nullFlags[i] = isNullLiteral(a)
	}
	match, err := check.ResolveOverload(fse.Name, fse.Candidates, argTypes, nullFlags)
	if err != nil {
		ctx.Sink.Error(e.Src, err.Error())
		return nil
	}
	fse.Matching = match

	if e.Launch != nil {
		if !match.Type.IsTask {
			ctx.Sink.Error(e.Src, "launch expression illegal with non-task-qualified function.")
			return nil
		}
		if e.Launch.Count != nil {
			count := e.Launch.Count.TypeCheck(ctx)
			if count == nil {
				return nil
			}
			e.Launch.Count = count
		}
	}

	for i, p := range match.Type.Params {
		if i >= len(args) {
			break
		}
		converted := applyConversion(ctx, args[i], p.SignatureType(), nullFlags[i])
		if converted == nil {
			return nil
		}
		args[i] = converted
	}
	e.Func, e.Args = fse, args
	e.Typ = match.Type.Return
	if ir.IsNone(e.Typ) {
		e.Typ = ir.VoidType()
	}
	return e
}

// Optimize implements Expr: calls are never folded (even a call bound to
// a known-pure function may have an unmodeled side effect through the
// opaque EmitContext), only their operands are.
func (e *CallExpr) Optimize(ctx *Context) Expr {
	for i, a := range e.Args {
		e.Args[i] = a.Optimize(ctx)
	}
	if e.Launch != nil && e.Launch.Count != nil {
		e.Launch.Count = e.Launch.Count.Optimize(ctx)
	}
	return e
}

// EstimateCost implements Expr.
func (e *CallExpr) EstimateCost() int {
	cost := 4
	for _, a := range e.Args {
		cost += a.EstimateCost()
	}
	return cost
}
