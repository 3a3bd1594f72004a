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
	"go/ast"
	"strings"
	"testing"

	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

func declareFunc(ctx *Context, name string, ret ir.Type, isTask bool, paramTypes ...ir.Type) *sym.Function {
	params := make([]ir.Param, len(paramTypes))
	for i, pt := range paramTypes {
		params[i] = ir.Param{Name: "p", Type: pt}
	}
	f := &sym.Function{Name: name, Type: ir.NewFuncType(name, ret, params, isTask), Pos: ast.NewIdent(name)}
	ctx.Syms.AddFunction(f)
	return f
}

// int f(float); int f(int); f(1) — exact match picks f(int).
func TestOverloadExactMatchWins(t *testing.T) {
	ctx, collector := newTestContext()
	declareFunc(ctx, "f", ir.Int32Type(), false, ir.Float32Type())
	wantExact := declareFunc(ctx, "f", ir.Int32Type(), false, ir.Int32Type())

	call := &CallExpr{Src: ast.NewIdent("_"), Func: identFor("f"), Args: []Expr{constInt(1, ir.Int32Kind)}}
	result := call.TypeCheck(ctx)
	if result == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	got := result.(*CallExpr).Func.(*FuncSymbolExpr).Matching
	if got != wantExact {
		t.Errorf("got overload %v, want %v", got.Type, wantExact.Type)
	}
}

// int f(float); int f(int64); f((int16)3) — widening tier
// picks f(int64), not f(float).
func TestOverloadWideningPrefersIntOverFloat(t *testing.T) {
	ctx, collector := newTestContext()
	declareFunc(ctx, "f", ir.Int32Type(), false, ir.Float32Type())
	wantWiden := declareFunc(ctx, "f", ir.Int32Type(), false, ir.Int64Type())

	arg := &TypeCastExpr{Src: ast.NewIdent("_"), X: constInt(3, ir.Int16Kind), Typ: ir.Int16Type()}
	call := &CallExpr{Src: ast.NewIdent("_"), Func: identFor("f"), Args: []Expr{arg}}
	result := call.TypeCheck(ctx)
	if result == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	got := result.(*CallExpr).Func.(*FuncSymbolExpr).Matching
	if got != wantWiden {
		t.Errorf("got overload %v, want %v", got.Type, wantWiden.Type)
	}
}

// launch[N] task_func(args); on a function not marked task.
func TestLaunchOnNonTaskFunctionErrors(t *testing.T) {
	ctx, collector := newTestContext()
	declareFunc(ctx, "plain_func", ir.VoidType(), false)

	call := &CallExpr{
		Src:    ast.NewIdent("_"),
		Func:   identFor("plain_func"),
		Launch: &LaunchSpec{},
	}
	result := call.TypeCheck(ctx)
	if result != nil {
		t.Fatalf("expected TypeCheck to fail, got %#v", result)
	}
	want := "launch expression illegal with non-task-qualified function."
	found := false
	for _, err := range collector.Errs.All() {
		if strings.Contains(err.Error(), want) {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v do not contain %q", collector.Errs.All(), want)
	}
}

func TestLaunchOnTaskFunctionSucceeds(t *testing.T) {
	ctx, collector := newTestContext()
	declareFunc(ctx, "task_func", ir.VoidType(), true)

	call := &CallExpr{
		Src:    ast.NewIdent("_"),
		Func:   identFor("task_func"),
		Launch: &LaunchSpec{},
	}
	result := call.TypeCheck(ctx)
	if result == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
}
