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

package ast

import (
	"fmt"

	"github.com/kavalang/spmdc/check"
	"github.com/kavalang/spmdc/ir"
)

// applyConversion interprets a check.Convert decision: it
// recursively inserts the node check.Convert asks for (dereference,
// reference-of, array decay, type-cast) until the decision has no
// further insertion request, or reports the (ordered-case-specific)
// diagnostic and returns nil.
func applyConversion(ctx *Context, e Expr, toType ir.Type, isNull bool) Expr {
	fromType := e.Type()
	if ir.IsNone(fromType) {
		return nil
	}
	decision := check.Convert(fromType, toType, isNull)
	if !decision.OK {
		ctx.Sink.Error(e.Source(), convertErrorMessage(fromType, toType))
		return nil
	}
	switch {
	case decision.InsertDereference:
		target := ir.ReferenceTarget(fromType)
		return applyConversion(ctx, &DerefExpr{Src: e.Source(), X: e, Typ: target}, toType, isNull)
	case decision.InsertReferenceOf:
		return applyConversion(ctx, &ReferenceOfExpr{Src: e.Source(), X: e, Typ: ir.NewReferenceType(fromType)}, toType, isNull)
	case decision.InsertDecay:
		arr := fromType.(*ir.ArrayType)
		decayed := ir.NewPointerType(arr.Elem, arr.Var, arr.Const)
		return &ArrayDecayExpr{Src: e.Source(), X: e, Typ: decayed}
	}
	if decision.Warning != "" {
		c, isConst := e.(*ConstExpr)
		to, isAtomic := toType.(*ir.AtomicType)
		lossless := isConst && isAtomic && ir.IsInteger(c.Typ) && ir.IsInteger(to) &&
			(c.Val.IntVal >= 0 || ir.IsSigned(to)) &&
			check.LosslesslyRepresentable(c.Val.IntVal, to.AKind)
		if !lossless {
			ctx.Sink.Warning(e.Source(), decision.Warning)
		}
	}
	if decision.NeedCast {
		return &TypeCastExpr{Src: e.Source(), X: e, Typ: toType}
	}
	return e
}

// convertErrorMessage reproduces the exact diagnostic text a few
// conversion failures require literally; every other failure gets the
// generic two-type phrasing.
func convertErrorMessage(from, to ir.Type) string {
	if ir.VariabilityOf(from) == ir.Varying && ir.VariabilityOf(to) == ir.Uniform {
		return fmt.Sprintf("Can't convert from varying type %q to uniform type %q", from.String(), to.String())
	}
	return fmt.Sprintf("Can't convert from type %q to type %q", from.String(), to.String())
}

// assignTargetString renders an atomic type the way the assignment
// diagnostic names it: omitting the "uniform" qualifier, since it is the
// implicit default at the point of declaration in the surface language.
func assignTargetString(t ir.Type) string {
	a, ok := t.(*ir.AtomicType)
	if !ok {
		return t.String()
	}
	prefix := ""
	if a.Var == ir.Varying {
		prefix = "varying "
	}
	constPart := ""
	if a.Const {
		constPart = "const "
	}
	return prefix + constPart + a.AKind.String()
}
