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

// Package transform implements the two transformations defined over
// IndexExpr trees: zero-propagation simplification and einsum
// canonicalization.
package transform

import (
	"github.com/tensorforge/tensorix/pkg/analysis"
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/visit"
)

// Simplify rewrites e so that every Access node structurally equal to one
// in zeroed is replaced by the undefined IndexExpr, which then propagates:
// Neg/Sqrt/Reduction of undefined is undefined (the default Identity
// rewriter already implements this "rebuild only if the child survives"
// shape); Add/Sub treat their operands as tolerating a missing (zero) term
// — both undefined yields undefined, exactly one undefined yields the
// other operand unchanged, neither yields a rebuild only when a child
// actually changed; Mul/Div propagate undefined from either operand, since
// multiplying by a structural zero is itself a structural zero. Immediates
// are never zeroed.
//
// Unchanged subtrees are returned by the original pointer (via
// IndexExpr.Same), never rebuilt — this is what lets a caller run Simplify
// with an empty zeroed set and get back an IndexExpr that is both
// structurally Equals to, and identity-preserving over, the input.
func Simplify(e expr.IndexExpr, zeroed []expr.IndexExpr) expr.IndexExpr {
	s := &simplifier{zeroed: zeroed}
	s.Self = s

	return visit.Rewrite(s, e)
}

type simplifier struct {
	visit.Identity

	zeroed []expr.IndexExpr
}

func (s *simplifier) isZeroed(a *expr.Access) bool {
	candidate := expr.Of(a)

	for _, z := range s.zeroed {
		if analysis.Equals(candidate, z) {
			return true
		}
	}

	return false
}

// RewriteAccess overrides Identity: an Access matching the zeroed set
// collapses to undefined; otherwise it is returned unchanged.
func (s *simplifier) RewriteAccess(a *expr.Access) expr.IndexExpr {
	if s.isZeroed(a) {
		if diag.Verbose() {
			diag.Log.WithField("tensor", a.Tensor.Name()).Trace("simplify: zeroed access collapsed to undefined")
		}

		return expr.Undefined()
	}

	return expr.Of(a)
}

// RewriteAdd overrides Identity with the disjunction-like (zero-tolerant)
// propagation rule for additive nodes.
func (s *simplifier) RewriteAdd(n *expr.Add) expr.IndexExpr {
	l, r := visit.Rewrite(s.Self, n.Lhs), visit.Rewrite(s.Self, n.Rhs)

	switch {
	case !l.IsDefined() && !r.IsDefined():
		return expr.Undefined()
	case !l.IsDefined():
		return r
	case !r.IsDefined():
		return l
	case l.Same(n.Lhs) && r.Same(n.Rhs):
		return expr.Of(n)
	default:
		return expr.NewAdd(l, r)
	}
}

// RewriteSub overrides Identity with the same disjunction-like propagation
// rule Add uses.
func (s *simplifier) RewriteSub(n *expr.Sub) expr.IndexExpr {
	l, r := visit.Rewrite(s.Self, n.Lhs), visit.Rewrite(s.Self, n.Rhs)

	switch {
	case !l.IsDefined() && !r.IsDefined():
		return expr.Undefined()
	case !l.IsDefined():
		return r
	case !r.IsDefined():
		return l
	case l.Same(n.Lhs) && r.Same(n.Rhs):
		return expr.Of(n)
	default:
		return expr.NewSub(l, r)
	}
}

// RewriteMul overrides Identity with the conjunction-like (zero-propagating)
// rule for multiplicative nodes: either operand undefined makes the whole
// node undefined.
func (s *simplifier) RewriteMul(n *expr.Mul) expr.IndexExpr {
	l, r := visit.Rewrite(s.Self, n.Lhs), visit.Rewrite(s.Self, n.Rhs)

	if !l.IsDefined() || !r.IsDefined() {
		return expr.Undefined()
	}

	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewMul(l, r)
}

// RewriteDiv overrides Identity with the same conjunction-like rule Mul
// uses.
func (s *simplifier) RewriteDiv(n *expr.Div) expr.IndexExpr {
	l, r := visit.Rewrite(s.Self, n.Lhs), visit.Rewrite(s.Self, n.Rhs)

	if !l.IsDefined() || !r.IsDefined() {
		return expr.Undefined()
	}

	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewDiv(l, r)
}
