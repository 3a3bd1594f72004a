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

// ArrayType is an element type plus a compile-time element count. Count
// zero means the array is incomplete/unsized.
type ArrayType struct {
	Elem  Type
	Count int
	Var   Variability
	Const bool
}

var _ Type = (*ArrayType)(nil)

// NewArrayType builds an array of count elements of type elem. count == 0
// means incomplete.
func NewArrayType(elem Type, count int, v Variability, c bool) *ArrayType {
	return &ArrayType{Elem: elem, Count: count, Var: v, Const: c}
}

// Kind returns ArrayKind.
func (t *ArrayType) Kind() Kind { return ArrayKind }

// IsIncomplete reports whether the array has no declared element count.
func (t *ArrayType) IsIncomplete() bool { return t.Count == 0 }
