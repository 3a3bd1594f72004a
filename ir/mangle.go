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

import (
	"fmt"

	"github.com/kavalang/spmdc/base/stringseq"
)

var atomicMangleCode = map[Kind]string{
	BoolKind:    "bl",
	Int8Kind:    "i8",
	Uint8Kind:   "u8",
	Int16Kind:   "i16",
	Uint16Kind:  "u16",
	Int32Kind:   "i32",
	Uint32Kind:  "u32",
	Int64Kind:   "i64",
	Uint64Kind:  "u64",
	Float32Kind: "f32",
	Float64Kind: "f64",
	VoidKind:    "vd",
}

func attrMangle(v Variability, c bool) string {
	s := "u"
	if v == Varying {
		s = "v"
	}
	if c {
		s += "c"
	} else {
		s += "m"
	}
	return s
}

// Mangle returns the canonical, signature-identity encoding of t. Distinct
// types (even differing only by variability or const) always produce
// distinct strings — testable property 3.
func (t *AtomicType) Mangle() string {
	return attrMangle(t.Var, t.Const) + atomicMangleCode[t.AKind]
}

func (t *EnumType) Mangle() string {
	return "E" + attrMangle(t.Var, t.Const) + t.Name
}

func (t *PointerType) Mangle() string {
	return "P" + attrMangle(t.Var, t.Const) + "(" + t.Base.Mangle() + ")"
}

func (t *ReferenceType) Mangle() string {
	return "R(" + t.Target.Mangle() + ")"
}

func (t *ArrayType) Mangle() string {
	return fmt.Sprintf("A%d%s(%s)", t.Count, attrMangle(t.Var, t.Const), t.Elem.Mangle())
}

func (t *VectorType) Mangle() string {
	return fmt.Sprintf("V%d%s(%s)", t.Count, attrMangle(t.Var, t.Const), t.Elem.Mangle())
}

func (t *StructType) Mangle() string {
	return "S" + attrMangle(t.Var, t.Const) + t.Name
}

// Mangle for a function type encodes the task flag and the canonicalized
// parameter list (invariant 3): the return type and the declared name
// play no part in overload identity.
func (t *FuncType) Mangle() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.SignatureTypes() {
		parts[i] = p.Mangle()
	}
	task := ""
	if t.IsTask {
		task = "T"
	}
	return "F" + task + "(" + stringseq.Join(sliceSeq(parts), ",") + ")"
}

func sliceSeq(ss []string) func(func(string) bool) {
	return func(yield func(string) bool) {
		for _, s := range ss {
			if !yield(s) {
				return
			}
		}
	}
}
