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
	"errors"
	"strings"
	"testing"
)

func TestErrorsReportNumbersEachLine(t *testing.T) {
	var errs Errors
	errs.Append(errors.New("first problem"))
	errs.Append(errors.New("second problem"))

	report := errs.Report()
	if !strings.Contains(report, "1 first problem") {
		t.Errorf("report %q does not number the first error", report)
	}
	if !strings.Contains(report, "2 second problem") {
		t.Errorf("report %q does not number the second error", report)
	}
}

func TestErrorsReportEmptyIsEmpty(t *testing.T) {
	var errs Errors
	if got := errs.Report(); got != "" {
		t.Errorf("got %q, want empty string for no accumulated errors", got)
	}
}

func TestErrorsAppendNilIsNoOp(t *testing.T) {
	var errs Errors
	errs.Append(nil)
	if !errs.Empty() {
		t.Error("appending nil must not count as an error")
	}
}
