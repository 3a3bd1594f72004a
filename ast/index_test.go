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
	"testing"

	"github.com/kavalang/spmdc/ir"
)

// int a[10]; a[0] decays the array to a pointer before indexing, and
// the result is an lvalue (pointer-to-element).
func TestIndexArrayDecaysAndYieldsLvalue(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "a", ir.NewArrayType(ir.Int32Type(), 10, ir.Uniform, false))

	e := &IndexExpr{Src: ast.NewIdent("_"), Base: identFor("a"), Index: constInt(0, ir.Int32Kind)}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if _, ok := checked.(*IndexExpr).Base.(*ArrayDecayExpr); !ok {
		t.Errorf("got base %T, want *ArrayDecayExpr", checked.(*IndexExpr).Base)
	}
	if _, ok := checked.LValueType().(*ir.PointerType); !ok {
		t.Errorf("got lvalue type %T, want *ir.PointerType", checked.LValueType())
	}
}

// invariant 6: indexing by a varying index makes the result varying
// even when the base is uniform.
func TestIndexVaryingIndexForcesVaryingResult(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "a", ir.NewArrayType(ir.Int32Type(), 10, ir.Uniform, false))
	declareVar(ctx, "i", ir.AsVarying(ir.Int32Type()))

	e := &IndexExpr{Src: ast.NewIdent("_"), Base: identFor("a"), Index: identFor("i")}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if ir.VariabilityOf(checked.Type()) != ir.Varying {
		t.Errorf("got %s, want a varying result type", checked.Type())
	}
}

func TestIndexRejectsNonIntegerIndex(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "a", ir.NewArrayType(ir.Int32Type(), 10, ir.Uniform, false))

	e := &IndexExpr{Src: ast.NewIdent("_"), Base: identFor("a"), Index: &ConstExpr{Src: ast.NewIdent("_"), Typ: ir.BoolType(), Val: Literal{BoolVal: true}}}
	result := e.TypeCheck(ctx)
	if result != nil {
		t.Fatal("expected TypeCheck to fail on a bool index")
	}
	if collector.Errs.Empty() {
		t.Error("expected an error to be reported")
	}
}
