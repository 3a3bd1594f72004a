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

// Param is one formal parameter: its body-visible type (const preserved,
// invariant 3), and an optional default value expression.
type Param struct {
	Name    string
	Type    Type
	Default DefaultValue // nil if the parameter has no default.
}

// HasDefault reports whether the parameter has a default expression.
func (p Param) HasDefault() bool { return p.Default != nil }

// SignatureType returns p.Type with any top-level const erased, unless
// Type is a reference (references are exempt — invariant 3 only strips
// top-level const from non-reference parameters).
func (p Param) SignatureType() Type {
	return signatureParamType(p.Type)
}

func signatureParamType(t Type) Type {
	if IsReference(t) || !IsConst(t) {
		return t
	}
	return asConstness(t, false)
}

// FuncType is a function signature: a return type, a parameter list (each
// possibly defaulted), and whether the function is a `task`.
type FuncType struct {
	Name   string
	Return Type
	Params []Param
	IsTask bool
}

var _ Type = (*FuncType)(nil)

// NewFuncType builds a function type.
func NewFuncType(name string, ret Type, params []Param, isTask bool) *FuncType {
	return &FuncType{Name: name, Return: ret, Params: params, IsTask: isTask}
}

// Kind returns FuncKind.
func (t *FuncType) Kind() Kind { return FuncKind }

// SignatureTypes returns the canonicalized parameter types used for
// overload-set identity (invariant 3).
func (t *FuncType) SignatureTypes() []Type {
	sig := make([]Type, len(t.Params))
	for i, p := range t.Params {
		sig[i] = p.SignatureType()
	}
	return sig
}

// MinArity returns the smallest number of arguments a call can supply:
// every parameter from that point on must have a default.
func (t *FuncType) MinArity() int {
	for i, p := range t.Params {
		if p.HasDefault() {
			return i
		}
	}
	return len(t.Params)
}

// MaxArity returns the number of declared parameters.
func (t *FuncType) MaxArity() int { return len(t.Params) }
