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
	"strings"
)

func attrPrefix(t Type) string {
	var parts []string
	parts = append(parts, VariabilityOf(t).String())
	if IsConst(t) {
		parts = append(parts, "const")
	}
	return strings.Join(parts, " ")
}

// String renders an atomic type as e.g. "uniform int" or "varying const
// double", matching the wording diagnostics use elsewhere.
func (t *AtomicType) String() string {
	return attrPrefix(t) + " " + t.AKind.String()
}

func (t *EnumType) String() string {
	return attrPrefix(t) + " enum " + t.Name
}

func (t *PointerType) String() string {
	constMark := ""
	if t.Const {
		constMark = " const"
	}
	return fmt.Sprintf("%s %s *%s", VariabilityOf(t).String(), t.Base.String(), constMark)
}

func (t *ReferenceType) String() string {
	return t.Target.String() + " &"
}

func (t *ArrayType) String() string {
	count := "?"
	if t.Count > 0 {
		count = fmt.Sprintf("%d", t.Count)
	}
	return fmt.Sprintf("%s %s[%s]", attrPrefix(t), t.Elem.String(), count)
}

func (t *VectorType) String() string {
	return fmt.Sprintf("%s %s<%d>", attrPrefix(t), t.Elem.String(), t.Count)
}

func (t *StructType) String() string {
	return attrPrefix(t) + " struct " + t.Name
}

func (t *FuncType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Type.String()
	}
	task := ""
	if t.IsTask {
		task = "task "
	}
	retStr := "void"
	if t.Return != nil {
		retStr = t.Return.String()
	}
	return fmt.Sprintf("%s%s (%s)", task, retStr, strings.Join(params, ", "))
}
