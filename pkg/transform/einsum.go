// Copyright Tensorforge Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package transform

import (
	"fmt"

	"github.com/tensorforge/tensorix/pkg/analysis"
	"github.com/tensorforge/tensorix/pkg/config"
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/ivar"
)

// Einsum canonicalizes e under the implicit-summation (Einstein notation)
// convention relative to the given free-index set: every IndexVar occurring
// in e but absent from free is made an explicit Sum reduction, so that the
// result is well-formed per analysis.Verify without relying on an implicit
// convention.
//
// e must be eligible per analysis.IsEinsumEligible (a sum of products, never
// a product of sums) — anything else is rejected with a UserError, since
// the implicit-summation convention is ambiguous outside that shape.
//
//  1. reject if e is undefined or not einsum-eligible
//  2. if e's top level is a single product-or-access term, wrap it
//     inside-out: the first-occurring unbound variable ends up as the
//     innermost Sum (adjacent to the term), the last-occurring as the
//     outermost.
//  3. if e's top level is a sum/difference of terms, recurse into each
//     term independently and rebuild the same Add/Sub structure — each
//     term only binds the variables it itself introduces beyond free.
func Einsum(e expr.IndexExpr, free []ivar.IndexVar) (expr.IndexExpr, error) {
	if !e.IsDefined() {
		return expr.Undefined(), diag.NewUserError("transform.Einsum", "cannot canonicalize an undefined expression")
	}

	if !analysis.IsEinsumEligible(e) {
		return expr.Undefined(), diag.NewUserError("transform.Einsum",
			"expression is not a sum of products; the einsum convention requires Add/Sub never to occur beneath a Mul")
	}

	if limits := config.Current(); !limits.AllowsNodeCount(countNodes(e)) {
		return expr.Undefined(), diag.NewUserError("transform.Einsum",
			fmt.Sprintf("expression exceeds the %q profile's max node count of %d", limits.Name, limits.MaxExprNodes))
	}

	freeSet := analysis.NewIndexVarSet()
	for _, v := range free {
		freeSet.Insert(v)
	}

	return einsumWrap(e, freeSet), nil
}

func einsumWrap(e expr.IndexExpr, free *analysis.IndexVarSet) expr.IndexExpr {
	switch n := e.Node().(type) {
	case *expr.Add:
		return expr.NewAdd(einsumWrap(n.Lhs, free), einsumWrap(n.Rhs, free))
	case *expr.Sub:
		return expr.NewSub(einsumWrap(n.Lhs, free), einsumWrap(n.Rhs, free))
	default:
		return wrapTerm(e, free)
	}
}

// wrapTerm wraps a single product-or-access term in a Sum reduction for each
// of its IndexVars that is not in free: the first-occurring unbound var is
// wrapped first and so ends up innermost (adjacent to term), and the
// last-occurring unbound var is wrapped last and so ends up outermost —
// "sum(v_k)(sum(v_{k-1})(...sum(v_1)(expr)...))" for occurrence-ordered
// unbound vars v_1...v_k.
func wrapTerm(term expr.IndexExpr, free *analysis.IndexVarSet) expr.IndexExpr {
	var toBind []ivar.IndexVar

	for _, v := range analysis.IndexVars(term) {
		if !free.Contains(v) {
			toBind = append(toBind, v)
		}
	}

	result := term
	for i := 0; i < len(toBind); i++ {
		if diag.Verbose() {
			diag.Log.WithField("var", toBind[i].Name()).Trace("einsum: binding implicit summation index")
		}

		result = expr.NewReduction(expr.SumOp, toBind[i], result)
	}

	return result
}

// countNodes walks e in pre-order, counting every node including e itself.
func countNodes(e expr.IndexExpr) int {
	if !e.IsDefined() {
		return 0
	}

	n := 1

	switch t := e.Node().(type) {
	case *expr.Neg:
		n += countNodes(t.Arg)
	case *expr.Sqrt:
		n += countNodes(t.Arg)
	case *expr.Add:
		n += countNodes(t.Lhs) + countNodes(t.Rhs)
	case *expr.Sub:
		n += countNodes(t.Lhs) + countNodes(t.Rhs)
	case *expr.Mul:
		n += countNodes(t.Lhs) + countNodes(t.Rhs)
	case *expr.Div:
		n += countNodes(t.Lhs) + countNodes(t.Rhs)
	case *expr.Reduction:
		n += countNodes(t.Arg)
	}

	return n
}
