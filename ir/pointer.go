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

// PointerType is a base type plus its own variability and const-ness.
// Pointer variability is the variability of the pointer itself, not
// the pointee — Base keeps whatever variability it
// was declared with, independent of Var.
type PointerType struct {
	Base  Type
	Var   Variability
	Const bool
}

var _ Type = (*PointerType)(nil)

// NewPointerType builds a pointer to base.
func NewPointerType(base Type, v Variability, c bool) *PointerType {
	return &PointerType{Base: base, Var: v, Const: c}
}

// Kind returns PointerKind.
func (t *PointerType) Kind() Kind { return PointerKind }

// NullPointerType returns the type of the null-pointer literal: a
// void-pointer, distinct from any other pointer literal.
func NullPointerType() *PointerType {
	return &PointerType{Base: VoidType(), Var: Uniform, Const: false}
}

// IsNullPointerType reports whether t is exactly the null-pointer type
// (pointer to void).
func IsNullPointerType(t Type) bool {
	p, ok := t.(*PointerType)
	return ok && IsVoid(p.Base)
}
