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

// Type is implemented by every member of the closed type lattice:
// *AtomicType, *EnumType, *PointerType, *ReferenceType, *ArrayType,
// *VectorType, *StructType, *FuncType.
type Type interface {
	// Kind returns the category this type belongs to.
	Kind() Kind
	// String renders the type the way a diagnostic should name it, e.g.
	// "varying int" or, for a uniform pointer to uniform float,
	// "uniform uniform float *".
	String() string
	// Mangle returns the canonical string encoding used as a map key for
	// signature identity ("Name mangling").
	Mangle() string
}

// DefaultValue is the minimal contract a parameter default expression
// must satisfy so package ir can reference it without importing package
// ast (which itself must import ir for Type()). Concrete default
// expressions live in package ast and satisfy this interface implicitly.
type DefaultValue interface {
	Type() Type
}

// None represents the absence of a type, returned after a node has
// already had an error reported for it. A nil ir.Type is
// always treated as None; there is no distinct sentinel value.
var None Type

// IsNone reports whether t is the None sentinel.
func IsNone(t Type) bool { return t == nil }

// VariabilityOf returns the variability carried by t. References are
// always uniform (invariant 1); function types do not carry variability
// of their own and report Uniform as a neutral default.
func VariabilityOf(t Type) Variability {
	switch v := t.(type) {
	case *AtomicType:
		return v.Var
	case *EnumType:
		return v.Var
	case *PointerType:
		return v.Var
	case *ReferenceType:
		return Uniform
	case *ArrayType:
		return v.Var
	case *VectorType:
		return v.Var
	case *StructType:
		return v.Var
	default:
		return Uniform
	}
}

// IsConst reports whether t is marked const. References do not carry a
// const flag of their own (legality of reference rebinding is handled at
// the conversion-engine level, not here).
func IsConst(t Type) bool {
	switch v := t.(type) {
	case *AtomicType:
		return v.Const
	case *EnumType:
		return v.Const
	case *PointerType:
		return v.Const
	case *ArrayType:
		return v.Const
	case *VectorType:
		return v.Const
	case *StructType:
		return v.Const
	default:
		return false
	}
}

// IsReference reports whether t is a reference type.
func IsReference(t Type) bool {
	_, ok := t.(*ReferenceType)
	return ok
}

// IsVoid reports whether t is the atomic void type.
func IsVoid(t Type) bool {
	a, ok := t.(*AtomicType)
	return ok && a.AKind == VoidKind
}
