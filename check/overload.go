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

package check

import (
	"strings"

	"github.com/kavalang/spmdc/ir"
	"github.com/kavalang/spmdc/sym"
)

// AmbiguousError is returned by ResolveOverload when more than one
// candidate ties for the minimum cost within a tier.
type AmbiguousError struct {
	Name       string
	Candidates []*sym.Function
}

func (e *AmbiguousError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.Type.String()
	}
	return "call to \"" + e.Name + "\" is ambiguous between " + strings.Join(names, ", ")
}

// NoMatchError is returned when no candidate, at any tier, accepts the
// argument list.
type NoMatchError struct {
	Name       string
	Candidates []*sym.Function
}

func (e *NoMatchError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.Type.String()
	}
	return "no matching overload for call to \"" + e.Name + "\"; candidates are: " + strings.Join(names, ", ")
}

// argCost reports the cost of passing an argument of type argType,
// possibly a null-capable literal, to a formal of type formalType, or
// ok=false if this tier's predicate rejects the pair outright.
type argCost func(argType, formalType ir.Type, isNull bool) (cost int, ok bool)

var tiers = []argCost{
	exactMatchCost,
	ignoreReferencesCost,
	widenWithoutLossCost,
	uniformToVaryingCost,
	anyConversionEqualVariabilityCost,
	anyConversionCost,
}

func exactMatchCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	if isNull {
		if _, isPtr := formalType.(*ir.PointerType); isPtr {
			return 0, true
		}
	}
	if ir.Equal(argType, formalType) {
		return 0, true
	}
	if ref, isRef := formalType.(*ir.ReferenceType); isRef && ir.Equal(argType, ref.Target) {
		return 0, true
	}
	return 0, false
}

func ignoreReferencesCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	if isNull {
		if _, isPtr := stripRefType(formalType).(*ir.PointerType); isPtr {
			return 1, true
		}
	}
	if ir.EqualIgnoringConst(stripRefType(argType), stripRefType(formalType)) {
		return 1, true
	}
	return 0, false
}

func stripRefType(t ir.Type) ir.Type {
	if r, ok := t.(*ir.ReferenceType); ok {
		return r.Target
	}
	return t
}

// widenTable lists the (caller, callee) atomic kind pairs that widen
// without loss: tier 3, forbidding signed<->unsigned
// widening that changes sign and forbidding double->float.
var widenTable = map[[2]ir.Kind]bool{}

func init() {
	chain := []ir.Kind{ir.Int8Kind, ir.Int16Kind, ir.Int32Kind, ir.Int64Kind}
	for i := 0; i < len(chain); i++ {
		for j := i + 1; j < len(chain); j++ {
			widenTable[[2]ir.Kind{chain[i], chain[j]}] = true
		}
	}
	uchain := []ir.Kind{ir.Uint8Kind, ir.Uint16Kind, ir.Uint32Kind, ir.Uint64Kind}
	for i := 0; i < len(uchain); i++ {
		for j := i + 1; j < len(uchain); j++ {
			widenTable[[2]ir.Kind{uchain[i], uchain[j]}] = true
		}
	}
	widenTable[[2]ir.Kind{ir.Float32Kind, ir.Float64Kind}] = true
	for _, k := range append(append([]ir.Kind{}, chain...), append(uchain, ir.Float32Kind, ir.Float64Kind)...) {
		widenTable[[2]ir.Kind{ir.BoolKind, k}] = true
	}
}

func widenWithoutLossCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	argAtom, aok := stripRefType(argType).(*ir.AtomicType)
	formalAtom, fok := stripRefType(formalType).(*ir.AtomicType)
	if !aok || !fok {
		return 0, false
	}
	if widenTable[[2]ir.Kind{argAtom.AKind, formalAtom.AKind}] {
		return 1, true
	}
	return 0, false
}

func uniformToVaryingCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	if ir.VariabilityOf(argType) != ir.Uniform || ir.VariabilityOf(formalType) != ir.Varying {
		return 0, false
	}
	if ir.Equal(ir.AsVarying(argType), formalType) {
		return 1, true
	}
	return 0, false
}

func anyConversionEqualVariabilityCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	if ir.VariabilityOf(argType) != ir.VariabilityOf(formalType) {
		return 0, false
	}
	if Convert(argType, formalType, isNull).OK {
		return 1, true
	}
	return 0, false
}

func anyConversionCost(argType, formalType ir.Type, isNull bool) (int, bool) {
	if Convert(argType, formalType, isNull).OK {
		return 0, true
	}
	return 0, false
}

// ResolveOverload ranks candidates by running them through the tiers in
// order, returning the first tier with a single cheapest match. Names
// beginning with "__" bypass every tier but the first and consider
// exact match only — the builtins carve-out.
func ResolveOverload(name string, candidates []*sym.Function, argTypes []ir.Type, nullFlags []bool) (*sym.Function, error) {
	usable := tiers
	if strings.HasPrefix(name, "__") {
		usable = tiers[:1]
	}
	for _, tier := range usable {
		best, bestCost, tieCount := []*sym.Function(nil), 0, 0
		for _, cand := range candidates {
			cost, ok := candidateCost(cand, argTypes, nullFlags, tier)
			if !ok {
				continue
			}
			switch {
			case len(best) == 0 || cost < bestCost:
				best = []*sym.Function{cand}
				bestCost = cost
				tieCount = 1
			case cost == bestCost:
				best = append(best, cand)
				tieCount++
			}
		}
		if tieCount == 1 {
			return best[0], nil
		}
		if tieCount > 1 {
			return nil, &AmbiguousError{Name: name, Candidates: best}
		}
	}
	return nil, &NoMatchError{Name: name, Candidates: candidates}
}

func candidateCost(cand *sym.Function, argTypes []ir.Type, nullFlags []bool, tier argCost) (int, bool) {
	params := cand.Type.Params
	if len(argTypes) > len(params) {
		return 0, false
	}
	for i := len(argTypes); i < len(params); i++ {
		if !params[i].HasDefault() {
			return 0, false
		}
	}
	total := 0
	for i, argType := range argTypes {
		isNull := i < len(nullFlags) && nullFlags[i]
		cost, ok := tier(argType, params[i].SignatureType(), isNull)
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}
