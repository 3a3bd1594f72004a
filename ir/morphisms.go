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

// AsUniform returns t with its own variability set to Uniform, recursing
// into composite element/member shapes. Pointer variability is the
// variability of the pointer itself, not its pointee, so the pointee is
// left untouched.
func AsUniform(t Type) Type { return asVariability(t, Uniform) }

// AsVarying returns t with its own variability set to Varying, recursing
// the same way AsUniform does.
func AsVarying(t Type) Type { return asVariability(t, Varying) }

// AsConst returns t marked const, recursing into composite element/member
// shapes the same way the variability morphisms do; a pointer's own
// const-ness is set without touching what it points to.
func AsConst(t Type) Type { return asConstness(t, true) }

// AsMutable returns t marked mutable (not const), recursing the same way
// AsConst does.
func AsMutable(t Type) Type { return asConstness(t, false) }

func asVariability(t Type, v Variability) Type {
	switch x := t.(type) {
	case *AtomicType:
		return atomic(x.AKind, v, x.Const)
	case *EnumType:
		return &EnumType{Name: x.Name, Constants: x.Constants, Var: v, Const: x.Const}
	case *PointerType:
		return &PointerType{Base: x.Base, Var: v, Const: x.Const}
	case *ReferenceType:
		return x // References are always uniform; nothing to change.
	case *ArrayType:
		return &ArrayType{Elem: asVariability(x.Elem, v), Count: x.Count, Var: v, Const: x.Const}
	case *VectorType:
		return &VectorType{Elem: asVariability(x.Elem, v), Count: x.Count, Var: v, Const: x.Const}
	case *StructType:
		return &StructType{Name: x.Name, Fields: mapFields(x.Fields, func(f StructField) StructField {
			f.Type = asVariability(f.Type, v)
			return f
		}), Var: v, Const: x.Const}
	default:
		return t // Function types carry no variability of their own.
	}
}

func asConstness(t Type, c bool) Type {
	switch x := t.(type) {
	case *AtomicType:
		return atomic(x.AKind, x.Var, c)
	case *EnumType:
		return &EnumType{Name: x.Name, Constants: x.Constants, Var: x.Var, Const: c}
	case *PointerType:
		return &PointerType{Base: x.Base, Var: x.Var, Const: c}
	case *ReferenceType:
		return x
	case *ArrayType:
		return &ArrayType{Elem: asConstness(x.Elem, c), Count: x.Count, Var: x.Var, Const: c}
	case *VectorType:
		return &VectorType{Elem: asConstness(x.Elem, c), Count: x.Count, Var: x.Var, Const: c}
	case *StructType:
		return &StructType{Name: x.Name, Fields: mapFields(x.Fields, func(f StructField) StructField {
			f.Type = asConstness(f.Type, c)
			f.Const = c
			return f
		}), Var: x.Var, Const: c}
	default:
		return t
	}
}

func mapFields(fields []StructField, f func(StructField) StructField) []StructField {
	out := make([]StructField, len(fields))
	for i, field := range fields {
		out[i] = f(field)
	}
	return out
}
