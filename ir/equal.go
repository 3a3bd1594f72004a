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

// Equal reports whether a and b are the same type, including const and
// variability.
func Equal(a, b Type) bool {
	return equal(a, b, false)
}

// EqualIgnoringConst reports whether a and b are the same type modulo
// const-ness at every level.
func EqualIgnoringConst(a, b Type) bool {
	return equal(a, b, true)
}

func equal(a, b Type, ignoreConst bool) bool {
	if IsNone(a) || IsNone(b) {
		return false
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !ignoreConst && IsConst(a) != IsConst(b) {
		return false
	}
	if VariabilityOf(a) != VariabilityOf(b) {
		return false
	}
	switch x := a.(type) {
	case *AtomicType:
		y := b.(*AtomicType)
		return x.AKind == y.AKind
	case *EnumType:
		y := b.(*EnumType)
		return x.Name == y.Name
	case *PointerType:
		y := b.(*PointerType)
		return equal(x.Base, y.Base, ignoreConst)
	case *ReferenceType:
		y := b.(*ReferenceType)
		return equal(x.Target, y.Target, ignoreConst)
	case *ArrayType:
		y := b.(*ArrayType)
		return x.Count == y.Count && equal(x.Elem, y.Elem, ignoreConst)
	case *VectorType:
		y := b.(*VectorType)
		return x.Count == y.Count && equal(x.Elem, y.Elem, ignoreConst)
	case *StructType:
		y := b.(*StructType)
		// Structs are nominal: same declared name means same layout.
		return x.Name == y.Name
	case *FuncType:
		y := b.(*FuncType)
		return funcTypeEqual(x, y, ignoreConst)
	default:
		return false
	}
}

func funcTypeEqual(x, y *FuncType, ignoreConst bool) bool {
	if x.IsTask != y.IsTask {
		return false
	}
	if !equal(x.Return, y.Return, ignoreConst) {
		return false
	}
	xs, ys := x.SignatureTypes(), y.SignatureTypes()
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !equal(xs[i], ys[i], ignoreConst) {
			return false
		}
	}
	return true
}
