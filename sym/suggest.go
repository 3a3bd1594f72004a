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

package sym

import "github.com/kavalang/spmdc/ir"

// maxSuggestDelta bounds how far (in edit distance) an unresolved name
// may be from a suggestion before the suggestion is not worth offering.
const maxSuggestDelta = 2

// ClosestVariableOrFunctionMatch returns the names, among every variable
// and function visible in the table, that are nearest to str by edit
// distance and no farther than maxSuggestDelta. It returns nil if no
// name is close enough to be a plausible typo target.
func (t *Table) ClosestVariableOrFunctionMatch(str string) []string {
	buckets := make([][]string, maxSuggestDelta+1)
	for _, scope := range t.variables {
		for name := range scope {
			bucketAppend(buckets, name, editDistance(str, name, maxSuggestDelta+1))
		}
	}
	for _, scope := range t.functions {
		for name := range scope.Keys() {
			bucketAppend(buckets, name, editDistance(str, name, maxSuggestDelta+1))
		}
	}
	return firstNonEmpty(buckets)
}

// ClosestTypeMatch returns the nearest struct type names to str, the
// same way ClosestVariableOrFunctionMatch does for variables/functions.
func (t *Table) ClosestTypeMatch(str string) []string {
	return t.closestTypeMatch(str, false)
}

// ClosestEnumTypeMatch returns the nearest enum type names to str.
func (t *Table) ClosestEnumTypeMatch(str string) []string {
	return t.closestTypeMatch(str, true)
}

func (t *Table) closestTypeMatch(str string, wantEnum bool) []string {
	buckets := make([][]string, maxSuggestDelta+1)
	for _, scope := range t.types {
		for name, nt := range scope {
			_, isEnum := nt.Type.(*ir.EnumType)
			if isEnum != wantEnum {
				continue
			}
			bucketAppend(buckets, name, editDistance(str, name, maxSuggestDelta+1))
		}
	}
	return firstNonEmpty(buckets)
}

func bucketAppend(buckets [][]string, name string, dist int) {
	if dist < len(buckets) {
		buckets[dist] = append(buckets[dist], name)
	}
}

func firstNonEmpty(buckets [][]string) []string {
	for _, b := range buckets {
		if len(b) > 0 {
			return b
		}
	}
	return nil
}

// editDistance computes the Levenshtein edit distance between a and b,
// capped at max: once every entry of the current row reaches max the
// true distance no longer matters, only that it is too far, so it
// returns max without computing the remaining rows.
func editDistance(a, b string, max int) int {
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
			if m < rowMin {
				rowMin = m
			}
		}
		if rowMin >= max {
			return max
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
