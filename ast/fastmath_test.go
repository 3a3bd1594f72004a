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
)

// varying float v; int r = 1 / v; under fastMath rewrites to
// 1 * rcp(v) when rcp is in scope.
func TestFastMathRewritesDivisionToReciprocalCall(t *testing.T) {
	ctx, collector := newTestContext()
	ctx.Opt.FastMath = true
	vt := ir.AsVarying(ir.Float32Type())
	declareVar(ctx, "v", vt)
	declareFunc(ctx, "rcp", vt, false, vt)

	one := &ConstExpr{Src: ast.NewIdent("_"), Typ: ir.Float32Type(), Val: Literal{FloatVal: 1}}
	e := &BinaryExpr{Src: ast.NewIdent("_"), Op: Div, X: one, Y: identFor("v")}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	optimized := checked.Optimize(ctx)
	mul, ok := optimized.(*BinaryExpr)
	if !ok || mul.Op != Mul {
		t.Fatalf("got %#v, want a Mul BinaryExpr", optimized)
	}
	call, ok := mul.Y.(*CallExpr)
	if !ok {
		t.Fatalf("got %T, want *CallExpr for the rcp call", mul.Y)
	}
	if fse, ok := call.Func.(*FuncSymbolExpr); !ok || fse.Name != "rcp" {
		t.Errorf("got callee %#v, want rcp", call.Func)
	}
	if len(collector.PerfWarn) != 0 {
		t.Errorf("unexpected warnings: %v", collector.PerfWarn)
	}
}

// Absent an rcp() overload, fastMath leaves the division alone and emits
// the stdlib-missing performance warning.
func TestFastMathWarnsWhenReciprocalMissing(t *testing.T) {
	ctx, collector := newTestContext()
	ctx.Opt.FastMath = true
	vt := ir.AsVarying(ir.Float32Type())
	declareVar(ctx, "v", vt)

	one := &ConstExpr{Src: ast.NewIdent("_"), Typ: ir.Float32Type(), Val: Literal{FloatVal: 1}}
	e := &BinaryExpr{Src: ast.NewIdent("_"), Op: Div, X: one, Y: identFor("v")}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	optimized := checked.Optimize(ctx)
	if _, ok := optimized.(*BinaryExpr); !ok {
		t.Fatalf("got %T, want the division left unrewritten", optimized)
	}
	found := false
	for _, w := range collector.PerfWarn {
		if strings.Contains(w, "rcp() not found from stdlib") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings %v do not contain the rcp-missing message", collector.PerfWarn)
	}
}
