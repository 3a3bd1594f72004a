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

func TestMemberAccessOnPointerInsertsImplicitDeref(t *testing.T) {
	ctx, collector := newTestContext()
	st := ir.NewStructType("S", []ir.StructField{
		{Name: "k", Type: ir.Int32Type()},
	}, ir.Uniform, false)
	declareVar(ctx, "p", ir.NewPointerType(st, ir.Uniform, false))

	e := &MemberExpr{Src: ast.NewIdent("_"), X: identFor("p"), Field: "k", Arrow: true}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if _, ok := checked.(*MemberExpr).X.(*DerefExpr); !ok {
		t.Errorf("got base %T, want *DerefExpr", checked.(*MemberExpr).X)
	}
}

func TestMemberConstFieldPropagatesConst(t *testing.T) {
	ctx, collector := newTestContext()
	st := ir.NewStructType("S", []ir.StructField{
		{Name: "k", Type: ir.AsConst(ir.Int32Type()), Const: true},
	}, ir.Uniform, false)
	declareVar(ctx, "s", st)

	e := &MemberExpr{Src: ast.NewIdent("_"), X: identFor("s"), Field: "k"}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if !ir.IsConst(checked.Type()) {
		t.Errorf("got %s, want a const-qualified field type", checked.Type())
	}
}

func TestMemberUnknownFieldErrors(t *testing.T) {
	ctx, collector := newTestContext()
	st := ir.NewStructType("S", []ir.StructField{
		{Name: "k", Type: ir.Int32Type()},
	}, ir.Uniform, false)
	declareVar(ctx, "s", st)

	e := &MemberExpr{Src: ast.NewIdent("_"), X: identFor("s"), Field: "nope"}
	result := e.TypeCheck(ctx)
	if result != nil {
		t.Fatal("expected TypeCheck to fail on an unknown field")
	}
	if collector.Errs.Empty() {
		t.Error("expected an error to be reported")
	}
}
