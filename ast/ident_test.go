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
	"strings"
	"testing"

	"github.com/kavalang/spmdc/ir"
)

func TestIdentResolvesToVariable(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "x", ir.Int32Type())
	checked := identFor("x").TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	if checked.(*IdentExpr).Resolved == nil {
		t.Error("expected Resolved to be set")
	}
}

func TestIdentResolvesToFuncSymbolWhenNoVariableMatches(t *testing.T) {
	ctx, collector := newTestContext()
	declareFunc(ctx, "f", ir.Int32Type(), false, ir.Int32Type())
	checked := identFor("f").TypeCheck(ctx)
	if checked == nil {
		t.Fatalf("TypeCheck failed: %v", collector.Errs.All())
	}
	fse, ok := checked.(*FuncSymbolExpr)
	if !ok {
		t.Fatalf("got %T, want *FuncSymbolExpr", checked)
	}
	if len(fse.Candidates) != 1 {
		t.Errorf("got %d candidates, want 1", len(fse.Candidates))
	}
}

func TestIdentUnknownNameSuggestsNearMiss(t *testing.T) {
	ctx, collector := newTestContext()
	declareVar(ctx, "value", ir.Int32Type())
	result := identFor("valeu").TypeCheck(ctx)
	if result != nil {
		t.Fatal("expected TypeCheck to fail on an undeclared name")
	}
	found := false
	for _, err := range collector.Errs.All() {
		if strings.Contains(err.Error(), "did you mean") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v do not contain a near-miss suggestion", collector.Errs.All())
	}
}
