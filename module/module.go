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

// Package module is the compilation unit driver: it wires
// the symbol table, diagnostic sink, and target description together and
// exposes the three outward operations (AddFunction, CheckAndOptimize,
// ResolveOverload) an external parser/driver calls into.
package module

import (
	gast "go/ast"

	"github.com/kavalang/spmdc/ast"
	"github.com/kavalang/spmdc/check"
	"github.com/kavalang/spmdc/diag"
	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
	"github.com/kavalang/spmdc/target"
)

// Module is one compilation unit: one symbol table, one diagnostic sink,
// one target description, checked and optimized top to bottom by a
// single driver thread (no concurrent mutation).
type Module struct {
	Syms   *sym.Table
	Sink   diag.Sink
	Target *target.Info
	Opt    *target.OptFlags
	FSet   *diag.FileSet
}

// New returns a Module with a fresh global-scope symbol table.
func New(sink diag.Sink, tgt *target.Info, opt *target.OptFlags, fset *diag.FileSet) *Module {
	return &Module{
		Syms:   sym.New(sink),
		Sink:   sink,
		Target: tgt,
		Opt:    opt,
		FSet:   fset,
	}
}

// context builds the ast.Context this module's passes thread through
// every node.
func (m *Module) context() *ast.Context {
	return &ast.Context{
		Syms:   m.Syms,
		Sink:   m.Sink,
		Target: m.Target,
		Opt:    m.Opt,
		FSet:   m.FSet,
	}
}

// AddFunction canonicalizes funcType's parameter types (invariant 3) and
// adds name to the symbol table's overload set, returning the bound
// symbol — or nil if a signature collision made this an idempotent
// no-op.
func (m *Module) AddFunction(name string, funcType *ir.FuncType, pos gast.Node) *sym.Function {
	f := &sym.Function{Name: name, Type: funcType, Pos: pos}
	if !m.Syms.AddFunction(f) {
		return nil
	}
	return f
}

// AddVariable declares name in the innermost scope, applying the same
// redeclare/shadow rules AddFunction's sibling operations do.
func (m *Module) AddVariable(name string, t ir.Type, storage sym.StorageClass, pos gast.Node) *sym.Variable {
	v := &sym.Variable{Name: name, Type: t, Storage: storage, Pos: pos}
	if !m.Syms.AddVariable(v) {
		return nil
	}
	return v
}

// AddType declares a struct or enum name in the innermost scope.
func (m *Module) AddType(name string, t ir.Type, pos gast.Node) *sym.NamedType {
	nt := &sym.NamedType{Name: name, Type: t, Pos: pos}
	if !m.Syms.AddType(nt) {
		return nil
	}
	return nt
}

// CheckAndOptimize runs the type-check pass followed by the optimize
// pass over expr, returning the checked-and-folded tree or nil if
// type-checking already reported a fatal error.
func (m *Module) CheckAndOptimize(expr ast.Expr) ast.Expr {
	ctx := m.context()
	checked := expr.TypeCheck(ctx)
	if checked == nil {
		return nil
	}
	return checked.Optimize(ctx)
}

// ResolveOverload binds fse.Matching to the unique overload of
// fse.Candidates accepting argTypes (with nullFlags marking which
// arguments are compile-time all-zero integers), reporting an ambiguity
// or no-match error and returning false on failure.
func (m *Module) ResolveOverload(fse *ast.FuncSymbolExpr, argTypes []ir.Type, nullFlags []bool) bool {
	match, err := check.ResolveOverload(fse.Name, fse.Candidates, argTypes, nullFlags)
	if err != nil {
		m.Sink.Error(fse.Source(), err.Error())
		return false
	}
	fse.Matching = match
	return true
}

// PushScope opens a new lexical scope.
func (m *Module) PushScope() { m.Syms.PushScope() }

// PopScope closes the innermost lexical scope.
func (m *Module) PopScope() { m.Syms.PopScope() }
