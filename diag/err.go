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
	"fmt"
	"go/ast"
	"go/token"

	"github.com/pkg/errors"
)

type (
	// ErrorWithPos is an error attached to a position in source.
	ErrorWithPos interface {
		error
		FSet() *token.FileSet
		Src() ast.Node
		Err() error
	}

	errorWithPos struct {
		fset *token.FileSet
		src  ast.Node
		pos  token.Pos
		err  error
	}
)

// Position adds source position information to err.
func Position(fset *token.FileSet, src ast.Node, err error) ErrorWithPos {
	return errorWithPos{
		fset: fset,
		src:  src,
		pos:  src.Pos(), // Cache the position so src need not stay valid.
		err:  err,
	}
}

// Errorf returns a formatted, positioned error.
func Errorf(fset *token.FileSet, src ast.Node, format string, a ...any) error {
	return Position(fset, src, errors.Errorf(format, a...))
}

// Internal marks err as an internal invariant violation: a FATAL,
// never expected on well-formed input.
func Internal(err error) error {
	return fmt.Errorf("internal compiler error (this is a bug): %+v", err)
}

// Internalf builds a formatted internal error at a position.
func Internalf(fset *token.FileSet, src ast.Node, format string, a ...any) error {
	return Internal(Errorf(fset, src, format, a...))
}

func (e errorWithPos) Error() string {
	if e.fset == nil {
		return e.err.Error()
	}
	return PosString(e.fset, e.pos) + " " + e.err.Error()
}

func (e errorWithPos) Unwrap() error { return e.err }

func (e errorWithPos) FSet() *token.FileSet { return e.fset }
func (e errorWithPos) Src() ast.Node        { return e.src }
func (e errorWithPos) Err() error           { return e.err }
