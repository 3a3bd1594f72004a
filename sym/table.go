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
	"fmt"

	"github.com/kavalang/spmdc/base/iter"
	"github.com/kavalang/spmdc/base/ordered"
	"github.com/kavalang/spmdc/diag"
	"github.com/kavalang/spmdc/ir"
)

// Table is a scoped stack of three parallel namespaces: variables,
// function overload sets and named types. A Table always has at least
// one scope (the global one, pushed by New and never popped).
type Table struct {
	sink diag.Sink

	variables []map[string]*Variable
	functions []*ordered.Map[string, []*Function]
	types     []map[string]*NamedType
}

// New returns a Table with a single, empty global scope. Diagnostics
// raised while populating the table (redeclarations, shadowing) are
// reported to sink.
func New(sink diag.Sink) *Table {
	t := &Table{sink: sink}
	t.PushScope()
	return t
}

// PushScope opens a new, innermost scope.
func (t *Table) PushScope() {
	t.variables = append(t.variables, map[string]*Variable{})
	t.functions = append(t.functions, ordered.NewMap[string, []*Function]())
	t.types = append(t.types, map[string]*NamedType{})
}

// PopScope discards the innermost scope and everything declared in it.
// It panics if called with only the global scope remaining: push and
// pop must always be paired.
func (t *Table) PopScope() {
	if len(t.variables) <= 1 {
		panic("sym: PopScope called on the global scope")
	}
	t.variables = t.variables[:len(t.variables)-1]
	t.functions = t.functions[:len(t.functions)-1]
	t.types = t.types[:len(t.types)-1]
}

// AddVariable declares v in the innermost scope. It reports an error and
// returns false if a variable of the same name is already declared in
// that same scope; it reports a (non-fatal) shadow warning if the name
// merely hides one from an outer scope.
func (t *Table) AddVariable(v *Variable) bool {
	for i := len(t.variables) - 1; i >= 0; i-- {
		if _, found := t.variables[i][v.Name]; !found {
			continue
		}
		if i == len(t.variables)-1 {
			t.sink.Error(v.Pos, fmt.Sprintf("ignoring redeclaration of symbol %q", v.Name))
			return false
		}
		t.sink.Warning(v.Pos, fmt.Sprintf("symbol %q shadows symbol declared in outer scope", v.Name))
		t.variables[len(t.variables)-1][v.Name] = v
		return true
	}
	t.variables[len(t.variables)-1][v.Name] = v
	return true
}

// LookupVariable searches from the innermost scope outward and returns
// the first variable found with the given name, or nil.
func (t *Table) LookupVariable(name string) *Variable {
	for i := len(t.variables) - 1; i >= 0; i-- {
		if v, ok := t.variables[i][name]; ok {
			return v
		}
	}
	return nil
}

// AddType declares a struct or enum name in the innermost scope, with
// the same redeclare/shadow semantics as AddVariable.
func (t *Table) AddType(nt *NamedType) bool {
	for i := len(t.types) - 1; i >= 0; i-- {
		if _, found := t.types[i][nt.Name]; !found {
			continue
		}
		if i == len(t.types)-1 {
			t.sink.Error(nt.Pos, fmt.Sprintf("ignoring redefinition of type %q", nt.Name))
			return false
		}
		t.sink.Warning(nt.Pos, fmt.Sprintf("type %q shadows type declared in outer scope", nt.Name))
		t.types[len(t.types)-1][nt.Name] = nt
		return true
	}
	t.types[len(t.types)-1][nt.Name] = nt
	return true
}

// LookupType searches from the innermost scope outward and returns the
// first named type found, or nil.
func (t *Table) LookupType(name string) *NamedType {
	for i := len(t.types) - 1; i >= 0; i-- {
		if nt, ok := t.types[i][name]; ok {
			return nt
		}
	}
	return nil
}

// AddFunction adds f as one more overload of its declared name in the
// innermost scope. It returns false without reporting a diagnostic if an
// overload with an identical parameter signature already exists
// anywhere in the table — invariant 3 treats such a redeclaration as
// idempotent, not an error.
func (t *Table) AddFunction(f *Function) bool {
	if t.LookupFunctionExact(f.Name, f.Type) != nil {
		return false
	}
	scope := t.functions[len(t.functions)-1]
	overloads, _ := scope.Load(f.Name)
	scope.Store(f.Name, append(overloads, f))
	return true
}

// LookupFunctionAny collects every overload of name visible from any
// scope, innermost first.
func (t *Table) LookupFunctionAny(name string) []*Function {
	var perScope [][]*Function
	for i := len(t.functions) - 1; i >= 0; i-- {
		if overloads, ok := t.functions[i].Load(name); ok {
			perScope = append(perScope, overloads)
		}
	}
	var matches []*Function
	for f := range iter.All(perScope...) {
		matches = append(matches, f)
	}
	return matches
}

// LookupFunctionExact returns the overload of name whose parameter
// signature matches sig exactly (return type and declared name play no
// part, per invariant 3), or nil.
func (t *Table) LookupFunctionExact(name string, sig *ir.FuncType) *Function {
	for i := len(t.functions) - 1; i >= 0; i-- {
		overloads, ok := t.functions[i].Load(name)
		if !ok {
			continue
		}
		for _, f := range overloads {
			if sameSignature(f.Type, sig) {
				return f
			}
		}
	}
	return nil
}

func sameSignature(a, b *ir.FuncType) bool {
	if a.IsTask != b.IsTask {
		return false
	}
	pa, pb := a.SignatureTypes(), b.SignatureTypes()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if !ir.Equal(pa[i], pb[i]) {
			return false
		}
	}
	return true
}
