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

func TestSyncAlwaysTypeChecksAndNeverFolds(t *testing.T) {
	ctx, _ := newTestContext()
	e := &SyncExpr{Src: ast.NewIdent("_")}
	checked := e.TypeCheck(ctx)
	if checked != e {
		t.Fatalf("expected TypeCheck to be a no-op, got %#v", checked)
	}
	if !ir.Equal(checked.Type(), ir.VoidType()) {
		t.Errorf("got %s, want void", checked.Type())
	}
	if checked.Optimize(ctx) != e {
		t.Error("sync must never be optimized away")
	}
}
