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

func TestSelectFoldsConstantCondition(t *testing.T) {
	ctx, collector := newTestContext()
	trueCond := &ConstExpr{Src: ast.NewIdent("_"), Typ: ir.BoolType(), Val: Literal{BoolVal: true}}
	e := &SelectExpr{Src: ast.NewIdent("_"), Cond: trueCond, A: constInt(1, ir.Int32Kind), B: constInt(2, ir.Int32Kind)}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	got := checked.Optimize(ctx).(*ConstExpr)
	if got.Val.IntVal != 1 {
		t.Errorf("got %d, want 1", got.Val.IntVal)
	}
}

func TestSelectForcesVaryingOnVaryingCondition(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "cond", ir.AsVarying(ir.BoolType()))
	e := &SelectExpr{Src: ast.NewIdent("_"), Cond: identFor("cond"), A: constInt(1, ir.Int32Kind), B: constInt(2, ir.Int32Kind)}
	checked := e.TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if ir.VariabilityOf(checked.Type()) != ir.Varying {
		t.Errorf("got %s, want a varying result type", checked.Type())
	}
}
