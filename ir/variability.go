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

// Variability distinguishes a value shared across every SIMD lane
// (Uniform) from one independent value per lane (Varying).
type Variability int

const (
	// Uniform values have exactly one instance shared by all lanes.
	Uniform Variability = iota
	// Varying values have one independent instance per lane.
	Varying
)

func (v Variability) String() string {
	if v == Varying {
		return "varying"
	}
	return "uniform"
}

// Or returns Varying if either v or o is Varying.
func (v Variability) Or(o Variability) Variability {
	if v == Varying || o == Varying {
		return Varying
	}
	return Uniform
}

// IsVarying reports whether v is Varying.
func (v Variability) IsVarying() bool { return v == Varying }
