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

// Package ir defines the SPMD type lattice: the closed set of type
// categories (atomic, enum, pointer, reference, array, vector, struct,
// function), their two orthogonal attributes (variability, const-ness),
// and the structural operations (Equal, MoreGeneralType, the variability
// and const morphisms, name mangling) that the rest of the compiler core
// is built on.
package ir

// Kind tags the category a Type belongs to. It is a closed set: every
// switch over Kind in this module is expected to be exhaustive.
type Kind int

// Atomic kinds, ordered by the promotion rank ladder
// ("bool < int8 < uint8 < ... < float < double"). The numeric values of
// the atomic kinds ARE the rank; do not reorder them.
const (
	BoolKind Kind = iota
	Int8Kind
	Uint8Kind
	Int16Kind
	Uint16Kind
	Int32Kind
	Uint32Kind
	Int64Kind
	Uint64Kind
	Float32Kind
	Float64Kind
	VoidKind

	EnumKind
	PointerKind
	ReferenceKind
	ArrayKind
	VectorKind
	StructKind
	FuncKind
)

var kindNames = map[Kind]string{
	BoolKind:      "bool",
	Int8Kind:      "int8",
	Uint8Kind:     "uint8",
	Int16Kind:     "int16",
	Uint16Kind:    "uint16",
	Int32Kind:     "int",
	Uint32Kind:    "uint",
	Int64Kind:     "int64",
	Uint64Kind:    "uint64",
	Float32Kind:   "float",
	Float64Kind:   "double",
	VoidKind:      "void",
	EnumKind:      "enum",
	PointerKind:   "pointer",
	ReferenceKind: "reference",
	ArrayKind:     "array",
	VectorKind:    "vector",
	StructKind:    "struct",
	FuncKind:      "function",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<invalid kind>"
}

// IsAtomic reports whether k is one of the twelve scalar/void kinds that
// carry a rank on the promotion ladder.
func (k Kind) IsAtomic() bool {
	return k >= BoolKind && k <= VoidKind
}

// rank returns the promotion-ladder position of an atomic kind. Only
// meaningful when k.IsAtomic() and k != VoidKind.
func (k Kind) rank() int {
	return int(k)
}
