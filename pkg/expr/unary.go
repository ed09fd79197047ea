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
package expr

import "github.com/tensorforge/tensorix/pkg/diag"

// Neg negates its operand ("-a").
type Neg struct {
	base

	Arg IndexExpr
}

// Kind implements ExprNode.
func (n *Neg) Kind() Kind { return KindNeg }

// NewNeg constructs a Neg node. Its operand must be defined.
func NewNeg(a IndexExpr) IndexExpr {
	requireDefined("NewNeg", a)

	node := &Neg{Arg: a}
	node.dt = a.DType()

	return Of(node)
}

// Sqrt takes the square root of its operand.
type Sqrt struct {
	base

	Arg IndexExpr
}

// Kind implements ExprNode.
func (n *Sqrt) Kind() Kind { return KindSqrt }

// NewSqrt constructs a Sqrt node. Its operand must be defined.
func NewSqrt(a IndexExpr) IndexExpr {
	requireDefined("NewSqrt", a)

	node := &Sqrt{Arg: a}
	node.dt = a.DType()

	return Of(node)
}

// requireDefined panics with an InternalError if any operand is undefined.
// Constructors are only ever called with defined operands built bottom-up
// from accesses/immediates; an undefined child reaching a constructor is a
// bug in the caller (e.g. the rewriter), not a user mistake, since
// undefined IndexExprs are meant to propagate by replacing the whole parent
// rather than by being embedded inside one (invariant 2).
func requireDefined(op string, args ...IndexExpr) {
	for _, a := range args {
		if !a.IsDefined() {
			diag.NewInternalError(op, "constructor called with an undefined child expression").Panic()
		}
	}
}
