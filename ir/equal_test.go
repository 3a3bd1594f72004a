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

package ir

import "testing"

func TestEqualAtomic(t *testing.T) {
	if !Equal(Int32Type(), Int32Type()) {
		t.Errorf("Int32Type() should equal itself")
	}
	if Equal(Int32Type(), Uint32Type()) {
		t.Errorf("int32 should not equal uint32")
	}
	if Equal(Int32Type(), AsVarying(Int32Type())) {
		t.Errorf("uniform int32 should not equal varying int32")
	}
	if Equal(Int32Type(), AsConst(Int32Type())) {
		t.Errorf("mutable int32 should not equal const int32")
	}
	if !EqualIgnoringConst(Int32Type(), AsConst(Int32Type())) {
		t.Errorf("EqualIgnoringConst should ignore const")
	}
}

func TestEqualStructIsNominal(t *testing.T) {
	a := NewStructType("Point", []StructField{{Name: "x", Type: Float32Type()}}, Uniform, false)
	b := NewStructType("Point", []StructField{{Name: "x", Type: Float32Type()}, {Name: "y", Type: Float32Type()}}, Uniform, false)
	if !Equal(a, b) {
		t.Errorf("structs with the same declared name must be equal regardless of field list")
	}
	c := NewStructType("Other", a.Fields, Uniform, false)
	if Equal(a, c) {
		t.Errorf("structs with different declared names must not be equal")
	}
}

func TestEqualArrayVector(t *testing.T) {
	a1 := NewArrayType(Int32Type(), 4, Uniform, false)
	a2 := NewArrayType(Int32Type(), 4, Uniform, false)
	a3 := NewArrayType(Int32Type(), 5, Uniform, false)
	if !Equal(a1, a2) {
		t.Errorf("arrays of equal shape should be equal")
	}
	if Equal(a1, a3) {
		t.Errorf("arrays with different counts should not be equal")
	}
	v1 := NewVectorType(Float32Type(), 4, Uniform, false)
	v2 := NewVectorType(Float32Type(), 4, Uniform, false)
	if !Equal(v1, v2) {
		t.Errorf("vectors of equal shape should be equal")
	}
}

func TestMangleInjective(t *testing.T) {
	types := []Type{
		Int32Type(),
		Uint32Type(),
		AsVarying(Int32Type()),
		AsConst(Int32Type()),
		NewPointerType(Int32Type(), Uniform, false),
		NewPointerType(Int32Type(), Uniform, true),
		NewArrayType(Int32Type(), 4, Uniform, false),
		NewArrayType(Int32Type(), 5, Uniform, false),
		NewVectorType(Float32Type(), 4, Uniform, false),
		NewStructType("Point", nil, Uniform, false),
		NewStructType("Other", nil, Uniform, false),
		NewReferenceType(Int32Type()),
	}
	seen := map[string]Type{}
	for _, ty := range types {
		m := ty.Mangle()
		if other, ok := seen[m]; ok {
			t.Errorf("mangle collision between %v and %v: %q", ty, other, m)
		}
		seen[m] = ty
	}
}
