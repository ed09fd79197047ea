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

// Package visit implements the traversal framework: a strict (exhaustive)
// visitor, a structure-preserving rewriter, and a non-strict match helper,
// all dispatching over the expr package's tagged ExprNode variants.
//
// Dispatch is single-level: Visit/Rewrite/Match handle exactly one node and
// leave recursion into children to the implementation, the same way the
// teacher's tagged-variant switches (e.g. ComplexityOfTerm,
// SubdivideExpr) recurse by calling themselves again on each child. A
// Visitor that wants a full pre-order walk simply calls Visit again on its
// children from within each VisitXxx method.
package visit

import (
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
)

// Visitor is the strict (exhaustive) dispatch interface: every ExprNode
// variant must be handled. Used for analyses that are inherently total,
// such as structural equality and printing.
type Visitor interface {
	VisitAccess(*expr.Access)
	VisitNeg(*expr.Neg)
	VisitSqrt(*expr.Sqrt)
	VisitAdd(*expr.Add)
	VisitSub(*expr.Sub)
	VisitMul(*expr.Mul)
	VisitDiv(*expr.Div)
	VisitReduction(*expr.Reduction)
	VisitIntImm(*expr.IntImm)
	VisitUIntImm(*expr.UIntImm)
	VisitFloatImm(*expr.FloatImm)
	VisitComplexImm(*expr.ComplexImm)
}

// Visit dispatches e to the appropriate VisitXxx method of v. Calling Visit
// on an undefined IndexExpr, or on a node variant unknown to this package
// (which cannot happen outside a bug in package expr itself, since ExprNode
// is sealed), is an InternalError.
func Visit(v Visitor, e expr.IndexExpr) {
	if !e.IsDefined() {
		diag.NewInternalError("visit.Visit", "called on an undefined IndexExpr").Panic()
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		v.VisitAccess(n)
	case *expr.Neg:
		v.VisitNeg(n)
	case *expr.Sqrt:
		v.VisitSqrt(n)
	case *expr.Add:
		v.VisitAdd(n)
	case *expr.Sub:
		v.VisitSub(n)
	case *expr.Mul:
		v.VisitMul(n)
	case *expr.Div:
		v.VisitDiv(n)
	case *expr.Reduction:
		v.VisitReduction(n)
	case *expr.IntImm:
		v.VisitIntImm(n)
	case *expr.UIntImm:
		v.VisitUIntImm(n)
	case *expr.FloatImm:
		v.VisitFloatImm(n)
	case *expr.ComplexImm:
		v.VisitComplexImm(n)
	default:
		diag.NewInternalError("visit.Visit", "unhandled ExprNode variant").Panic()
	}
}
