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

// StructField is one named element of a struct, with its own type and
// per-member const flag.
type StructField struct {
	Name  string
	Type  Type
	Const bool
}

// StructType is a named, nominal struct type: two struct types are the
// same type iff they were declared under the same name (structs are never
// compared structurally the way arrays or vectors are).
type StructType struct {
	Name   string
	Fields []StructField
	Var    Variability
	Const  bool
}

var _ Type = (*StructType)(nil)

// NewStructType builds a struct type named name with the given fields.
func NewStructType(name string, fields []StructField, v Variability, c bool) *StructType {
	return &StructType{Name: name, Fields: fields, Var: v, Const: c}
}

// Kind returns StructKind.
func (t *StructType) Kind() Kind { return StructKind }

// HasConstMember reports whether t, or any field transitively inside it,
// is const — invariant 4: such a struct cannot be assigned as a whole.
func HasConstMember(t *StructType) bool {
	for _, f := range t.Fields {
		if f.Const {
			return true
		}
		if sub, ok := f.Type.(*StructType); ok && HasConstMember(sub) {
			return true
		}
	}
	return false
}

// FieldByName returns the field named name and true, or the zero value
// and false if t has no such field.
func (t *StructType) FieldByName(name string) (StructField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}
