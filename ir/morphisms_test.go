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

// TestMorphismLattice covers testable property 4: as_uniform(as_varying(t))
// == as_uniform(t); as_const(as_mutable(t)) == as_const(t); the four
// morphisms commute with each other.
func TestMorphismLattice(t *testing.T) {
	base := NewArrayType(Int32Type(), 4, Uniform, false)

	if !Equal(AsUniform(AsVarying(base)), AsUniform(base)) {
		t.Errorf("as_uniform(as_varying(t)) != as_uniform(t)")
	}
	if !Equal(AsConst(AsMutable(base)), AsConst(base)) {
		t.Errorf("as_const(as_mutable(t)) != as_const(t)")
	}

	a := AsConst(AsVarying(base))
	b := AsVarying(AsConst(base))
	if !Equal(a, b) {
		t.Errorf("as_const and as_varying do not commute: %v != %v", a, b)
	}
}

func TestVaryingRecursesIntoElements(t *testing.T) {
	arr := NewArrayType(Int32Type(), 4, Uniform, false)
	varying := AsVarying(arr).(*ArrayType)
	if VariabilityOf(varying.Elem) != Varying {
		t.Errorf("a varying array must have varying elements")
	}

	st := NewStructType("P", []StructField{{Name: "x", Type: Int32Type()}}, Uniform, false)
	vst := AsVarying(st).(*StructType)
	if VariabilityOf(vst.Fields[0].Type) != Varying {
		t.Errorf("a varying struct must have varying members")
	}
}

func TestPointerVariabilityIsNotPointeeVariability(t *testing.T) {
	ptr := NewPointerType(AsVarying(Int32Type()), Uniform, false)
	varying := AsVarying(ptr).(*PointerType)
	if VariabilityOf(varying.Base) != Varying {
		t.Errorf("pointee variability should be untouched")
	}
	if VariabilityOf(varying) != Varying {
		t.Errorf("pointer's own variability should have changed")
	}
}

func TestReferenceAlwaysUniform(t *testing.T) {
	ref := NewReferenceType(Int32Type())
	if VariabilityOf(AsVarying(ref)) != Uniform {
		t.Errorf("references are always uniform, even after as_varying")
	}
}
