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

// AtomicType is a scalar (or void) type: bool, one of the eight signed or
// unsigned integer widths, float, double, or void.
type AtomicType struct {
	AKind Kind
	Var   Variability
	Const bool
}

var _ Type = (*AtomicType)(nil)

// atomicSingletons caches one interned AtomicType per (kind, variability,
// const) triple so Equal can fast-path on pointer identity.
var atomicSingletons = map[[3]int]*AtomicType{}

func atomic(kind Kind, v Variability, c bool) *AtomicType {
	key := [3]int{int(kind), int(v), boolIdx(c)}
	if t, ok := atomicSingletons[key]; ok {
		return t
	}
	t := &AtomicType{AKind: kind, Var: v, Const: c}
	atomicSingletons[key] = t
	return t
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Kind returns the atomic kind.
func (t *AtomicType) Kind() Kind { return t.AKind }

// Singleton constructors for the canonical uniform, mutable form of each
// atomic kind. Callers needing a varying or const form call as_varying /
// as_const on the result.
func BoolType() *AtomicType    { return atomic(BoolKind, Uniform, false) }
func Int8Type() *AtomicType    { return atomic(Int8Kind, Uniform, false) }
func Uint8Type() *AtomicType   { return atomic(Uint8Kind, Uniform, false) }
func Int16Type() *AtomicType   { return atomic(Int16Kind, Uniform, false) }
func Uint16Type() *AtomicType  { return atomic(Uint16Kind, Uniform, false) }
func Int32Type() *AtomicType   { return atomic(Int32Kind, Uniform, false) }
func Uint32Type() *AtomicType  { return atomic(Uint32Kind, Uniform, false) }
func Int64Type() *AtomicType   { return atomic(Int64Kind, Uniform, false) }
func Uint64Type() *AtomicType  { return atomic(Uint64Kind, Uniform, false) }
func Float32Type() *AtomicType { return atomic(Float32Kind, Uniform, false) }
func Float64Type() *AtomicType { return atomic(Float64Kind, Uniform, false) }
func VoidType() *AtomicType    { return atomic(VoidKind, Uniform, false) }

// IsNumeric reports whether t is an integer or floating-point atomic type.
func IsNumeric(t Type) bool {
	return IsInteger(t) || IsFloat(t)
}

// IsInteger reports whether t is bool or one of the eight integer widths.
// bool is included because the original compiler treats it as the
// narrowest unsigned integer for promotion purposes.
func IsInteger(t Type) bool {
	a, ok := t.(*AtomicType)
	if !ok {
		return false
	}
	switch a.AKind {
	case BoolKind, Int8Kind, Uint8Kind, Int16Kind, Uint16Kind,
		Int32Kind, Uint32Kind, Int64Kind, Uint64Kind:
		return true
	}
	return false
}

// IsFloat reports whether t is float or double.
func IsFloat(t Type) bool {
	a, ok := t.(*AtomicType)
	return ok && (a.AKind == Float32Kind || a.AKind == Float64Kind)
}

// IsBool reports whether t is the bool atomic type.
func IsBool(t Type) bool {
	a, ok := t.(*AtomicType)
	return ok && a.AKind == BoolKind
}

// IsUnsigned reports whether t is bool or an unsigned integer width.
func IsUnsigned(t Type) bool {
	a, ok := t.(*AtomicType)
	if !ok {
		return false
	}
	switch a.AKind {
	case BoolKind, Uint8Kind, Uint16Kind, Uint32Kind, Uint64Kind:
		return true
	}
	return false
}

// IsSigned reports whether t is a signed integer width.
func IsSigned(t Type) bool {
	a, ok := t.(*AtomicType)
	if !ok {
		return false
	}
	switch a.AKind {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind:
		return true
	}
	return false
}
