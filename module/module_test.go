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

package module

import (
	gast "go/ast"
	"go/token"
	"testing"

	"github.com/kavalang/spmdc/ast"
	"github.com/kavalang/spmdc/diag"
	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/target"
)

func newTestModule() (*Module, *diag.Collector) {
	fset := diag.FileSet{FSet: token.NewFileSet()}
	collector := diag.NewCollector(fset)
	m := New(collector, &target.Info{VectorWidth: 8, PointerIntType: ir.Int64Type()}, &target.OptFlags{}, &fset)
	return m, collector
}

func TestAddVariableThenCheckAndOptimizeResolvesIdent(t *testing.T) {
	m, collector := newTestModule()
	m.AddVariable("x", ir.Int32Type(), 0, gast.NewIdent("x"))

	ident := &ast.IdentExpr{Src: gast.NewIdent("x"), Name: "x"}
	checked := m.CheckAndOptimize(ident)
	if checked == nil {
		t.Fatalf("CheckAndOptimize failed: %v", collector.Errs.All())
	}
	if !ir.Equal(checked.Type(), ir.Int32Type()) {
		t.Errorf("got %s, want int", checked.Type())
	}
}

// Re-adding a function with an identical signature is an idempotent
// no-op, not a redeclaration error.
func TestAddFunctionIdenticalSignatureIsIdempotent(t *testing.T) {
	m, collector := newTestModule()
	ft := ir.NewFuncType("f", ir.Int32Type(), []ir.Param{{Name: "p", Type: ir.Int32Type()}}, false)
	first := m.AddFunction("f", ft, gast.NewIdent("f"))
	if first == nil {
		t.Fatalf("first AddFunction failed: %v", collector.Errs.All())
	}
	second := m.AddFunction("f", ft, gast.NewIdent("f"))
	if second != nil {
		t.Error("expected the identical-signature redeclaration to be a silent no-op")
	}
	if !collector.Errs.Empty() {
		t.Errorf("unexpected errors: %v", collector.Errs.All())
	}
}

func TestAddVariableRedeclarationErrors(t *testing.T) {
	m, collector := newTestModule()
	if m.AddVariable("x", ir.Int32Type(), 0, gast.NewIdent("x")) == nil {
		t.Fatalf("first AddVariable failed: %v", collector.Errs.All())
	}
	if m.AddVariable("x", ir.Float32Type(), 0, gast.NewIdent("x")) != nil {
		t.Error("expected the same-scope redeclaration to fail")
	}
	if collector.Errs.Empty() {
		t.Error("expected an error to be reported")
	}
}

func TestPushPopScopeShadowsOuterVariable(t *testing.T) {
	m, collector := newTestModule()
	m.AddVariable("x", ir.Int32Type(), 0, gast.NewIdent("x"))
	m.PushScope()
	if m.AddVariable("x", ir.Float32Type(), 0, gast.NewIdent("x")) == nil {
		t.Fatalf("shadowing declaration failed: %v", collector.Errs.All())
	}
	if m.Syms.LookupVariable("x").Type.Kind() != ir.Float32Type().Kind() {
		t.Error("expected the inner scope's declaration to shadow the outer one")
	}
	m.PopScope()
	if !ir.Equal(m.Syms.LookupVariable("x").Type, ir.Int32Type()) {
		t.Error("expected PopScope to restore visibility of the outer declaration")
	}
}
