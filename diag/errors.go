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

package diag

import (
	"strings"

	"go.uber.org/multierr"

	gxfmt "github.com/kavalang/spmdc/base/fmt"
)

// Errors is a set of positioned errors accumulated while checking one
// compilation unit. Unlike a single error return, it lets the checker
// report every error it finds in a pass instead of aborting at the first
// one ("outer code proceeds to find further errors").
type Errors struct {
	errs []error
}

// Append adds err to the set. Returns false always, so callers can write
// `return e.Append(err)` from a function returning (T, bool).
func (e *Errors) Append(err error) bool {
	if err != nil {
		e.errs = append(e.errs, err)
	}
	return false
}

// Empty reports whether no error has been appended.
func (e *Errors) Empty() bool {
	return e == nil || len(e.errs) == 0
}

// Count returns the number of accumulated errors.
func (e *Errors) Count() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// All returns every accumulated error, in the order they were appended.
func (e *Errors) All() []error {
	if e == nil {
		return nil
	}
	return append([]error{}, e.errs...)
}

// ToError combines the accumulated errors into a single error using
// multierr, or returns nil if the set is empty.
func (e *Errors) ToError() error {
	if e.Empty() {
		return nil
	}
	return multierr.Combine(e.errs...)
}

func (e *Errors) Error() string {
	if err := e.ToError(); err != nil {
		return err.Error()
	}
	return ""
}

// Report renders every accumulated error as a numbered list, one error
// per line, for a batch-mode driver to print after a pass completes.
func (e *Errors) Report() string {
	if e.Empty() {
		return ""
	}
	lines := make([]string, len(e.errs))
	for i, err := range e.errs {
		lines[i] = err.Error()
	}
	return gxfmt.Number(strings.Join(lines, "\n"))
}
