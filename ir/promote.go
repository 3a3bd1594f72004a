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

import "github.com/pkg/errors"

// MoreGeneralType returns the common type under promotion rules, or None with an error
// whose text should be reported at the caller's position (package ir has
// no notion of source position; the caller — an ast node — reports the
// error's text through its diagnostic sink at the node's position).
//
// forceVarying forces the result to be varying even if both operands are
// uniform. vectorSize, when non-zero, forces the result to be a vector of
// that size when neither operand already fixes a vector shape; the ast
// callers in this module all pass 0.
func MoreGeneralType(a, b Type, ctxMsg string, forceVarying bool, vectorSize int) (Type, error) {
	a, b = decayArrayToPointer(a), decayArrayToPointer(b)
	a, b = stripReference(a), stripReference(b)
	if IsVoid(a) || IsVoid(b) {
		return None, errors.Errorf("%s: can't form a common type with void", ctxMsg)
	}
	if a.Kind() == FuncKind || b.Kind() == FuncKind {
		return None, errors.Errorf("%s: can't form a common type with a function type", ctxMsg)
	}

	variability := VariabilityOf(a).Or(VariabilityOf(b))
	if forceVarying {
		variability = Varying
	}
	constness := IsConst(a) && IsConst(b)

	result, err := moreGeneralShape(a, b, ctxMsg)
	if err != nil {
		return None, err
	}
	if vectorSize > 0 && result.Kind() != VectorKind {
		result = NewVectorType(result, vectorSize, variability, constness)
	}
	result = asVariability(result, variability)
	result = asConstness(result, constness)
	return result, nil
}

func moreGeneralShape(a, b Type, ctxMsg string) (Type, error) {
	aVec, aIsVec := a.(*VectorType)
	bVec, bIsVec := b.(*VectorType)
	switch {
	case aIsVec && bIsVec:
		if aVec.Count != bVec.Count {
			return None, errors.Errorf("%s: vector sizes %d and %d do not match", ctxMsg, aVec.Count, bVec.Count)
		}
		elem, err := moreGeneralShape(aVec.Elem, bVec.Elem, ctxMsg)
		if err != nil {
			return None, err
		}
		return NewVectorType(elem, aVec.Count, Uniform, false), nil
	case aIsVec && !bIsVec:
		elem, err := moreGeneralShape(aVec.Elem, b, ctxMsg)
		if err != nil {
			return None, err
		}
		return NewVectorType(elem, aVec.Count, Uniform, false), nil
	case bIsVec && !aIsVec:
		elem, err := moreGeneralShape(a, bVec.Elem, ctxMsg)
		if err != nil {
			return None, err
		}
		return NewVectorType(elem, bVec.Count, Uniform, false), nil
	default:
		return moreGeneralAtomic(a, b, ctxMsg)
	}
}

func moreGeneralAtomic(a, b Type, ctxMsg string) (Type, error) {
	aAtom, aOk := a.(*AtomicType)
	bAtom, bOk := b.(*AtomicType)
	if aOk && bOk {
		return promoteAtomicKind(aAtom.AKind, bAtom.AKind), nil
	}
	if Equal(stripAttrs(a), stripAttrs(b)) {
		return stripAttrs(a), nil
	}
	return None, errors.Errorf("%s: can't form a common type between %q and %q", ctxMsg, a.String(), b.String())
}

// promoteAtomicKind implements the rank ladder: the promoted kind is
// whichever of the two ranks higher. The ladder ordering itself already
// encodes the tie-breaks (same-width unsigned ranks above signed;
// any integer ranks below float; float ranks below double).
func promoteAtomicKind(a, b Kind) *AtomicType {
	if a.rank() < b.rank() {
		return atomic(b, Uniform, false)
	}
	return atomic(a, Uniform, false)
}

func decayArrayToPointer(t Type) Type {
	a, ok := t.(*ArrayType)
	if !ok {
		return t
	}
	return NewPointerType(a.Elem, a.Var, a.Const)
}

func stripReference(t Type) Type {
	r, ok := t.(*ReferenceType)
	if !ok {
		return t
	}
	return r.Target
}

// stripAttrs returns t with variability forced uniform and const cleared,
// used only to compare shapes while ignoring attributes MoreGeneralType
// recomputes itself.
func stripAttrs(t Type) Type {
	return asConstness(asVariability(t, Uniform), false)
}
