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

// BaseType strips one level of indirection/composition: the pointee of a
// pointer, the target of a reference, or the element type of an array or
// vector. Returns t unchanged for atomic, enum, struct and function types.
func BaseType(t Type) Type {
	switch x := t.(type) {
	case *PointerType:
		return x.Base
	case *ReferenceType:
		return x.Target
	case *ArrayType:
		return x.Elem
	case *VectorType:
		return x.Elem
	default:
		return t
	}
}

// ElementType returns the type of the i-th element of t: the i-th struct
// field's type, or the element type of an array or vector
// regardless of i. Returns None if t has no elements or i is out of
// range for a struct.
func ElementType(t Type, i int) Type {
	switch x := t.(type) {
	case *ArrayType:
		return x.Elem
	case *VectorType:
		return x.Elem
	case *StructType:
		if i < 0 || i >= len(x.Fields) {
			return None
		}
		return x.Fields[i].Type
	default:
		return None
	}
}

// ElementCount returns the number of elements of t: an array's declared
// count (0 if incomplete), a vector's width, or a struct's field count.
// Returns 0 for any other kind.
func ElementCount(t Type) int {
	switch x := t.(type) {
	case *ArrayType:
		return x.Count
	case *VectorType:
		return x.Count
	case *StructType:
		return len(x.Fields)
	default:
		return 0
	}
}
