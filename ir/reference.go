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

// ReferenceType names a single target type. References are always
// uniform (invariant 1) and never nest: NewReferenceType panics if target
// is itself a reference, since that would be a construction bug in the
// checker, not a user-facing error.
type ReferenceType struct {
	Target Type
}

var _ Type = (*ReferenceType)(nil)

// NewReferenceType builds a reference to target.
func NewReferenceType(target Type) *ReferenceType {
	if IsReference(target) {
		panic("ir: reference to reference")
	}
	return &ReferenceType{Target: target}
}

// Kind returns ReferenceKind.
func (t *ReferenceType) Kind() Kind { return ReferenceKind }

// ReferenceTarget returns the type a reference refers to, or None if t is
// not a reference.
func ReferenceTarget(t Type) Type {
	r, ok := t.(*ReferenceType)
	if !ok {
		return None
	}
	return r.Target
}
