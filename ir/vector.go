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

// VectorType is a short vector: an element type (always atomic) plus an
// element count of at least one.
type VectorType struct {
	Elem  Type
	Count int
	Var   Variability
	Const bool
}

var _ Type = (*VectorType)(nil)

// NewVectorType builds a vector of count elements of type elem. count
// must be >= 1.
func NewVectorType(elem Type, count int, v Variability, c bool) *VectorType {
	if count < 1 {
		panic("ir: vector type with count < 1")
	}
	return &VectorType{Elem: elem, Count: count, Var: v, Const: c}
}

// Kind returns VectorKind.
func (t *VectorType) Kind() Kind { return VectorKind }
