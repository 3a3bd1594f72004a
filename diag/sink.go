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

import "go/ast"

// Sink is the external collaborator that renders diagnostics .
// The core never formats a message for a human; it only classifies the
// diagnostic kind and hands over a position and a message.
type Sink interface {
	// Error reports a diagnostic that makes the enclosing expression
	// untypeable. The checker must treat the node as None afterwards.
	Error(pos ast.Node, msg string)
	// Warning reports a non-fatal diagnostic; checking continues normally.
	Warning(pos ast.Node, msg string)
	// PerformanceWarning flags a legal construct that is slow to execute.
	PerformanceWarning(pos ast.Node, msg string)
	// Fatal reports an internal invariant violation. Not expected on
	// well-formed input; implementations may abort the process.
	Fatal(msg string)
}

// Collector is a Sink that accumulates every diagnostic it receives,
// classified by severity, instead of rendering it immediately. It is
// adequate for tests and for batch-mode drivers that want every
// diagnostic from a pass at once.
type Collector struct {
	FSet *FileSet

	Errs     Errors
	Warns    []string
	PerfWarn []string
	Fatals   []string
}

// NewCollector returns a Collector formatting positions against fset.
func NewCollector(fset FileSet) *Collector {
	return &Collector{FSet: &fset}
}

// Error implements Sink.
func (c *Collector) Error(pos ast.Node, msg string) {
	c.Errs.Append(c.FSet.Position(pos, errString(msg)))
}

// Warning implements Sink.
func (c *Collector) Warning(pos ast.Node, msg string) {
	c.Warns = append(c.Warns, c.FSet.Position(pos, errString(msg)).Error())
}

// PerformanceWarning implements Sink.
func (c *Collector) PerformanceWarning(pos ast.Node, msg string) {
	c.PerfWarn = append(c.PerfWarn, c.FSet.Position(pos, errString(msg)).Error())
}

// Fatal implements Sink.
func (c *Collector) Fatal(msg string) {
	c.Fatals = append(c.Fatals, msg)
}

// HasErrors reports whether any Error or Fatal diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return !c.Errs.Empty() || len(c.Fatals) > 0
}

type errString string

func (e errString) Error() string { return string(e) }
