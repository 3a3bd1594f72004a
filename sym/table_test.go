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

package sym

import (
	"go/ast"
	"go/token"
	"testing"

	"github.com/kavalang/spmdc/diag"
	"github.com/kavalang/spmdc/ir"
)

func newTestTable() (*Table, *diag.Collector) {
	fset := diag.FileSet{FSet: token.NewFileSet()}
	c := diag.NewCollector(fset)
	return New(c), c
}

func TestAddVariableRedeclareSameScope(t *testing.T) {
	table, c := newTestTable()
	v1 := &Variable{Name: "x", Type: ir.Int32Type(), Pos: ast.NewIdent("x")}
	v2 := &Variable{Name: "x", Type: ir.Float32Type(), Pos: ast.NewIdent("x")}
	if !table.AddVariable(v1) {
		t.Fatalf("first declaration of x should succeed")
	}
	if table.AddVariable(v2) {
		t.Errorf("redeclaration in the same scope should fail")
	}
	if c.Errs.Empty() {
		t.Errorf("redeclaration should report an error")
	}
	if got := table.LookupVariable("x"); got != v1 {
		t.Errorf("LookupVariable should still see the first declaration")
	}
}

func TestAddVariableShadowsOuterScope(t *testing.T) {
	table, c := newTestTable()
	outer := &Variable{Name: "x", Type: ir.Int32Type(), Pos: ast.NewIdent("x")}
	table.AddVariable(outer)
	table.PushScope()
	inner := &Variable{Name: "x", Type: ir.Float32Type(), Pos: ast.NewIdent("x")}
	if !table.AddVariable(inner) {
		t.Fatalf("shadowing an outer scope's variable should succeed")
	}
	if len(c.Warns) == 0 {
		t.Errorf("shadowing should report a warning")
	}
	if got := table.LookupVariable("x"); got != inner {
		t.Errorf("LookupVariable should resolve to the innermost declaration")
	}
	table.PopScope()
	if got := table.LookupVariable("x"); got != outer {
		t.Errorf("after PopScope, LookupVariable should see the outer declaration again")
	}
}

func TestAddFunctionOverloadSet(t *testing.T) {
	table, _ := newTestTable()
	f1 := &Function{Name: "foo", Type: ir.NewFuncType("foo", ir.VoidType(), []ir.Param{{Name: "a", Type: ir.Int32Type()}}, false)}
	f2 := &Function{Name: "foo", Type: ir.NewFuncType("foo", ir.VoidType(), []ir.Param{{Name: "a", Type: ir.Float32Type()}}, false)}
	if !table.AddFunction(f1) {
		t.Fatalf("first overload of foo should succeed")
	}
	if !table.AddFunction(f2) {
		t.Fatalf("a distinct overload of foo should succeed")
	}
	if table.AddFunction(f1) {
		t.Errorf("re-adding an identical signature should be idempotent-false")
	}
	matches := table.LookupFunctionAny("foo")
	if len(matches) != 2 {
		t.Errorf("expected 2 overloads of foo, got %d", len(matches))
	}
	if table.LookupFunctionExact("foo", f1.Type) != f1 {
		t.Errorf("LookupFunctionExact should find the exact signature")
	}
}

func TestAddTypeRedeclareAndShadow(t *testing.T) {
	table, c := newTestTable()
	pt := ir.NewStructType("Point", nil, ir.Uniform, false)
	nt1 := &NamedType{Name: "Point", Type: pt, Pos: ast.NewIdent("Point")}
	if !table.AddType(nt1) {
		t.Fatalf("first declaration of Point should succeed")
	}
	nt2 := &NamedType{Name: "Point", Type: pt, Pos: ast.NewIdent("Point")}
	if table.AddType(nt2) {
		t.Errorf("redeclaring Point in the same scope should fail")
	}
	if c.Errs.Empty() {
		t.Errorf("redeclaration should report an error")
	}
}
