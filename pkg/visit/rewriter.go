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
package visit

import (
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
)

// Rewriter is a visitor that produces a replacement IndexExpr per node. It
// may itself be undefined-producing (e.g. Simplify collapses zeroed
// accesses to the undefined sentinel); callers must handle that per the
// propagation rules documented on each transform.
type Rewriter interface {
	RewriteAccess(*expr.Access) expr.IndexExpr
	RewriteNeg(*expr.Neg) expr.IndexExpr
	RewriteSqrt(*expr.Sqrt) expr.IndexExpr
	RewriteAdd(*expr.Add) expr.IndexExpr
	RewriteSub(*expr.Sub) expr.IndexExpr
	RewriteMul(*expr.Mul) expr.IndexExpr
	RewriteDiv(*expr.Div) expr.IndexExpr
	RewriteReduction(*expr.Reduction) expr.IndexExpr
	RewriteIntImm(*expr.IntImm) expr.IndexExpr
	RewriteUIntImm(*expr.UIntImm) expr.IndexExpr
	RewriteFloatImm(*expr.FloatImm) expr.IndexExpr
	RewriteComplexImm(*expr.ComplexImm) expr.IndexExpr
}

// Rewrite dispatches e to the appropriate RewriteXxx method of r. An
// undefined e rewrites to itself (undefined), matching the "undefined
// expressions propagate through the rewriter" rule (spec invariant 6).
func Rewrite(r Rewriter, e expr.IndexExpr) expr.IndexExpr {
	if !e.IsDefined() {
		return e
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		return r.RewriteAccess(n)
	case *expr.Neg:
		return r.RewriteNeg(n)
	case *expr.Sqrt:
		return r.RewriteSqrt(n)
	case *expr.Add:
		return r.RewriteAdd(n)
	case *expr.Sub:
		return r.RewriteSub(n)
	case *expr.Mul:
		return r.RewriteMul(n)
	case *expr.Div:
		return r.RewriteDiv(n)
	case *expr.Reduction:
		return r.RewriteReduction(n)
	case *expr.IntImm:
		return r.RewriteIntImm(n)
	case *expr.UIntImm:
		return r.RewriteUIntImm(n)
	case *expr.FloatImm:
		return r.RewriteFloatImm(n)
	case *expr.ComplexImm:
		return r.RewriteComplexImm(n)
	default:
		diag.NewInternalError("visit.Rewrite", "unhandled ExprNode variant").Panic()
		return expr.Undefined()
	}
}

// Identity is a Rewriter embeddable by callers that only want to override a
// handful of node kinds. Its default behavior is the "rebuild each node,
// reusing the original child when rewriting returns the identical
// sub-expression" policy documented in spec §4.3: every RewriteXxx method
// recurses post-order via Rewrite(Self, child), then reconstructs the node
// only if at least one child actually changed (by pointer identity),
// otherwise returns the original IndexExpr unchanged. Self must be set to
// the outermost Rewriter (usually the embedding type itself) so that
// overridden hooks are honored during recursion.
type Identity struct {
	Self Rewriter
}

func (d *Identity) self() Rewriter {
	if d.Self != nil {
		return d.Self
	}

	return d
}

// RewriteAccess implements Rewriter: Access is a leaf with no IndexExpr
// children, so it is always returned unchanged.
func (d *Identity) RewriteAccess(a *expr.Access) expr.IndexExpr { return expr.Of(a) }

// RewriteNeg implements Rewriter.
func (d *Identity) RewriteNeg(n *expr.Neg) expr.IndexExpr {
	arg := Rewrite(d.self(), n.Arg)
	if !arg.IsDefined() {
		return expr.Undefined()
	}

	if arg.Same(n.Arg) {
		return expr.Of(n)
	}

	return expr.NewNeg(arg)
}

// RewriteSqrt implements Rewriter.
func (d *Identity) RewriteSqrt(n *expr.Sqrt) expr.IndexExpr {
	arg := Rewrite(d.self(), n.Arg)
	if !arg.IsDefined() {
		return expr.Undefined()
	}

	if arg.Same(n.Arg) {
		return expr.Of(n)
	}

	return expr.NewSqrt(arg)
}

// RewriteAdd implements Rewriter.
func (d *Identity) RewriteAdd(n *expr.Add) expr.IndexExpr {
	l, r := Rewrite(d.self(), n.Lhs), Rewrite(d.self(), n.Rhs)
	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewAdd(l, r)
}

// RewriteSub implements Rewriter.
func (d *Identity) RewriteSub(n *expr.Sub) expr.IndexExpr {
	l, r := Rewrite(d.self(), n.Lhs), Rewrite(d.self(), n.Rhs)
	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewSub(l, r)
}

// RewriteMul implements Rewriter.
func (d *Identity) RewriteMul(n *expr.Mul) expr.IndexExpr {
	l, r := Rewrite(d.self(), n.Lhs), Rewrite(d.self(), n.Rhs)
	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewMul(l, r)
}

// RewriteDiv implements Rewriter.
func (d *Identity) RewriteDiv(n *expr.Div) expr.IndexExpr {
	l, r := Rewrite(d.self(), n.Lhs), Rewrite(d.self(), n.Rhs)
	if l.Same(n.Lhs) && r.Same(n.Rhs) {
		return expr.Of(n)
	}

	return expr.NewDiv(l, r)
}

// RewriteReduction implements Rewriter.
func (d *Identity) RewriteReduction(n *expr.Reduction) expr.IndexExpr {
	arg := Rewrite(d.self(), n.Arg)
	if !arg.IsDefined() {
		return expr.Undefined()
	}

	if arg.Same(n.Arg) {
		return expr.Of(n)
	}

	return expr.NewReduction(n.Op, n.Var, arg)
}

// RewriteIntImm implements Rewriter: immediates are never rewritten.
func (d *Identity) RewriteIntImm(n *expr.IntImm) expr.IndexExpr { return expr.Of(n) }

// RewriteUIntImm implements Rewriter.
func (d *Identity) RewriteUIntImm(n *expr.UIntImm) expr.IndexExpr { return expr.Of(n) }

// RewriteFloatImm implements Rewriter.
func (d *Identity) RewriteFloatImm(n *expr.FloatImm) expr.IndexExpr { return expr.Of(n) }

// RewriteComplexImm implements Rewriter.
func (d *Identity) RewriteComplexImm(n *expr.ComplexImm) expr.IndexExpr { return expr.Of(n) }
