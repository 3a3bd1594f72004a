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

// EnumType is a named set of unsigned 32-bit constants.
type EnumType struct {
	Name      string
	Constants []string
	Var       Variability
	Const     bool
}

var _ Type = (*EnumType)(nil)

// NewEnumType builds an enum type named name with the given constant
// names, in declaration order.
func NewEnumType(name string, constants []string, v Variability, c bool) *EnumType {
	return &EnumType{Name: name, Constants: constants, Var: v, Const: c}
}

// Kind returns EnumKind.
func (t *EnumType) Kind() Kind { return EnumKind }

// HasConstant reports whether name is one of t's declared constants.
func (t *EnumType) HasConstant(name string) bool {
	for _, c := range t.Constants {
		if c == name {
			return true
		}
	}
	return false
}
