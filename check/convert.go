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

// Package check implements the algorithms shared by every ast node's
// type-checking and optimization passes: the implicit conversion table,
// overload resolution, and constant-folding helpers. It depends only on
// ir and sym, never on ast, so that ast can depend on check without
// creating an import cycle — every function here describes a decision
// in terms of ir.Type; ast is the one that turns a decision into a
// substituted node.
package check

import "github.com/kavalang/spmdc/ir"

// Conversion is the verdict of Convert: whether fromType can become
// toType, whether the result needs a runtime TypeCast node wrapping the
// original expression, and an optional non-fatal warning to surface
// alongside the success.
type Conversion struct {
	OK       bool
	NeedCast bool
	Warning  string
	// Dereference / ReferenceOf request the caller insert that specific
	// node before (recursively) retrying the conversion; Decay requests
	// an array-to-pointer decay node, which completes the conversion
	// without a retry. At most one of these three is ever set.
	InsertDereference bool
	InsertReferenceOf bool
	InsertDecay       bool
}

func ok(warn string) Conversion     { return Conversion{OK: true, Warning: warn} }
func okCast(warn string) Conversion { return Conversion{OK: true, NeedCast: true, Warning: warn} }
func fail() Conversion              { return Conversion{} }

// Convert runs the ordered implicit-conversion decision table.
// isNullLiteral marks a source that is a compile-time all-zero integer,
// which may convert to any pointer type.
func Convert(fromType, toType ir.Type, isNullLiteral bool) Conversion {
	if ir.Equal(fromType, toType) {
		return ok("")
	}
	if ir.IsVoid(fromType) || ir.IsVoid(toType) {
		return fail()
	}

	if from, isArr := fromType.(*ir.ArrayType); isArr {
		if to, isPtr := toType.(*ir.PointerType); isPtr {
			if ir.EqualIgnoringConst(from.Elem, to.Base) {
				return Conversion{OK: true, InsertDecay: true}
			}
		}
	}

	if ir.VariabilityOf(fromType) == ir.Varying && ir.VariabilityOf(toType) == ir.Uniform {
		return fail()
	}

	if fromPtr, isFromPtr := fromType.(*ir.PointerType); isFromPtr {
		if toAtom, isAtom := toType.(*ir.AtomicType); isAtom && ir.IsBool(toAtom) {
			_ = fromPtr
			return ok("")
		}
	}

	if fromPtr, isFromPtr := fromType.(*ir.PointerType); isFromPtr {
		if toPtr, isToPtr := toType.(*ir.PointerType); isToPtr {
			if ir.EqualIgnoringConst(fromPtr.Base, toPtr.Base) || ir.IsVoid(toPtr.Base) {
				return ok("")
			}
			if isNullLiteral {
				return okCast("")
			}
			return fail()
		}
	}
	if isNullLiteral {
		if _, isToPtr := toType.(*ir.PointerType); isToPtr {
			return okCast("")
		}
	}

	if fromRef, isFromRef := fromType.(*ir.ReferenceType); isFromRef {
		if toRef, isToRef := toType.(*ir.ReferenceType); isToRef {
			if ir.Equal(toRef.Target, ir.AsConst(fromRef.Target)) {
				return ok("")
			}
			fa, fok := fromRef.Target.(*ir.ArrayType)
			ta, tok := toRef.Target.(*ir.ArrayType)
			if fok && tok && ir.Equal(ta.Elem, ir.AsConst(fa.Elem)) {
				return ok("")
			}
			return fail()
		}
	}

	if _, isFromRef := fromType.(*ir.ReferenceType); isFromRef {
		return Conversion{OK: true, InsertDereference: true}
	}

	if toRef, isToRef := toType.(*ir.ReferenceType); isToRef {
		if ir.EqualIgnoringConst(fromType, toRef.Target) {
			return Conversion{OK: true, InsertReferenceOf: true}
		}
	}

	if fromArr, isFromArr := fromType.(*ir.ArrayType); isFromArr {
		if toArr, isToArr := toType.(*ir.ArrayType); isToArr {
			if ir.EqualIgnoringConst(fromArr.Elem, toArr.Elem) {
				warn := ""
				if fromArr.Count != toArr.Count && !fromArr.IsIncomplete() && !toArr.IsIncomplete() {
					warn = "array size mismatch in conversion"
				}
				return ok(warn)
			}
		}
	}

	if fromVec, isFromVec := fromType.(*ir.VectorType); isFromVec {
		if toVec, isToVec := toType.(*ir.VectorType); isToVec {
			if fromVec.Count != toVec.Count {
				return fail()
			}
			inner := Convert(fromVec.Elem, toVec.Elem, false)
			if !inner.OK {
				return fail()
			}
			return inner
		}
	}

	if fromSt, isFromSt := fromType.(*ir.StructType); isFromSt {
		if toSt, isToSt := toType.(*ir.StructType); isToSt {
			if fromSt.Name == toSt.Name {
				return ok("")
			}
			_ = toSt
		}
	}

	if fromEnum, isFromEnum := fromType.(*ir.EnumType); isFromEnum {
		if toAtom, isToAtom := toType.(*ir.AtomicType); isToAtom && ir.IsInteger(toAtom) {
			_ = fromEnum
			return ok("")
		}
		if _, isToEnum := toType.(*ir.EnumType); isToEnum {
			return fail()
		}
	}

	if toVec, isToVec := toType.(*ir.VectorType); isToVec {
		if fromAtom, isFromAtom := fromType.(*ir.AtomicType); isFromAtom {
			inner := Convert(fromAtom, toVec.Elem, isNullLiteral)
			if inner.OK {
				return okCast("")
			}
			return fail()
		}
	}

	if fromAtom, isFromAtom := fromType.(*ir.AtomicType); isFromAtom {
		if toAtom, isToAtom := toType.(*ir.AtomicType); isToAtom {
			return okCast(precisionWarning(fromAtom, toAtom))
		}
	}

	return fail()
}

// precisionWarning never warns when the source is provably
// representable in the target without loss. Since
// this function only sees the types (the constant-value check lives in
// ast, which knows whether the source is a literal), it reports the
// structural warning; ast's implicit conversion path (applyConversion)
// suppresses it for an integer literal whose value LosslesslyRepresentable
// accepts for the target kind. Explicit casts report it unchanged.
func precisionWarning(from, to *ir.AtomicType) string {
	if from.AKind == to.AKind {
		return ""
	}
	if isNarrowing(from.AKind, to.AKind) {
		return "conversion from " + from.String() + " to " + to.String() + " may lose precision"
	}
	if ir.IsSigned(from) && ir.IsUnsigned(to) || ir.IsUnsigned(from) && ir.IsSigned(to) {
		return "conversion between signed and unsigned type " + from.String() + " to " + to.String() + " may change the value's sign"
	}
	if ir.IsSigned(from) && ir.IsFloat(to) || ir.IsFloat(from) && ir.IsSigned(to) {
		return "conversion between integer and floating-point type " + from.String() + " to " + to.String() + " may lose precision"
	}
	return ""
}

func isNarrowing(from, to ir.Kind) bool {
	return widthRank(to) < widthRank(from) && from.IsAtomic() && to.IsAtomic()
}

func widthRank(k ir.Kind) int {
	switch k {
	case ir.BoolKind:
		return 0
	case ir.Int8Kind, ir.Uint8Kind:
		return 1
	case ir.Int16Kind, ir.Uint16Kind:
		return 2
	case ir.Int32Kind, ir.Uint32Kind, ir.Float32Kind:
		return 3
	case ir.Int64Kind, ir.Uint64Kind, ir.Float64Kind:
		return 4
	default:
		return -1
	}
}

// LosslesslyRepresentable reports whether the integer value v is exactly
// representable in toKind without change; 64-bit and floating-point
// kinds always report true — used by
// ast's literal conversion path to suppress a precision warning when
// the actual constant value loses nothing.
func LosslesslyRepresentable(v int64, toKind ir.Kind) bool {
	switch toKind {
	case ir.BoolKind:
		return v == 0 || v == 1
	case ir.Int8Kind:
		return v >= -128 && v <= 127
	case ir.Uint8Kind:
		return v >= 0 && v <= 255
	case ir.Int16Kind:
		return v >= -32768 && v <= 32767
	case ir.Uint16Kind:
		return v >= 0 && v <= 65535
	case ir.Int32Kind:
		return v >= -2147483648 && v <= 2147483647
	case ir.Uint32Kind:
		return v >= 0 && v <= 4294967295
	default:
		return true
	}
}
