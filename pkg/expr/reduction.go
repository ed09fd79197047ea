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

import "github.com/tensorforge/tensorix/pkg/ivar"

// ReductionOp identifies the binary operator a Reduction folds its operand
// over. Spec §3 describes this as "a binary operator template (also an
// IndexExpr, in practice an Add with empty operands standing for sum)";
// Design Notes flags that representation as idiosyncratic and suggests an
// explicit enum, which this implementation adopts (see DESIGN.md).
type ReductionOp uint8

const (
	// SumOp reduces by addition — the only operator the sum(var)(expr)
	// builder produces, and the one the einsum normalizer wraps implicit
	// summation in.
	SumOp ReductionOp = iota
	// ProdOp reduces by multiplication.
	ProdOp
	// MinOp reduces by minimum.
	MinOp
	// MaxOp reduces by maximum.
	MaxOp
)

// String renders a ReductionOp the way it is printed, e.g. "sum".
func (op ReductionOp) String() string {
	switch op {
	case SumOp:
		return "sum"
	case ProdOp:
		return "prod"
	case MinOp:
		return "min"
	case MaxOp:
		return "max"
	default:
		return "?op"
	}
}

// Reduction reduces its operand along Var using Op, e.g. "sum(j)(A(i,j))".
type Reduction struct {
	base

	Op  ReductionOp
	Var ivar.IndexVar
	Arg IndexExpr
}

// Kind implements ExprNode.
func (n *Reduction) Kind() Kind { return KindReduction }

// NewReduction constructs a Reduction node. The operand must be defined.
func NewReduction(op ReductionOp, v ivar.IndexVar, a IndexExpr) IndexExpr {
	requireDefined("NewReduction", a)

	node := &Reduction{Op: op, Var: v, Arg: a}
	node.dt = a.DType()

	return Of(node)
}

// Sum returns a curried reduction builder: Sum(v)(expr) reduces expr by
// addition along v, matching the spec's "sum(var)(expr) builder".
func Sum(v ivar.IndexVar) func(IndexExpr) IndexExpr {
	return func(body IndexExpr) IndexExpr {
		return NewReduction(SumOp, v, body)
	}
}
