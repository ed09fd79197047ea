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

// Package expr implements the index-expression node model: the tagged
// ExprNode variants (Access, unary/binary arithmetic, Reduction,
// immediates), the IndexExpr shared-ownership/possibly-undefined handle,
// and the operator-split annotation mechanism.
package expr

import (
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/dtype"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
)

// Kind tags each ExprNode variant for exhaustive dispatch by the visitor
// framework.
type Kind uint8

const (
	// KindAccess tags Access nodes.
	KindAccess Kind = iota
	// KindNeg tags Neg nodes.
	KindNeg
	// KindSqrt tags Sqrt nodes.
	KindSqrt
	// KindAdd tags Add nodes.
	KindAdd
	// KindSub tags Sub nodes.
	KindSub
	// KindMul tags Mul nodes.
	KindMul
	// KindDiv tags Div nodes.
	KindDiv
	// KindReduction tags Reduction nodes.
	KindReduction
	// KindIntImm tags IntImm nodes.
	KindIntImm
	// KindUIntImm tags UIntImm nodes.
	KindUIntImm
	// KindFloatImm tags FloatImm nodes.
	KindFloatImm
	// KindComplexImm tags ComplexImm nodes.
	KindComplexImm
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAccess:
		return "Access"
	case KindNeg:
		return "Neg"
	case KindSqrt:
		return "Sqrt"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindReduction:
		return "Reduction"
	case KindIntImm:
		return "IntImm"
	case KindUIntImm:
		return "UIntImm"
	case KindFloatImm:
		return "FloatImm"
	case KindComplexImm:
		return "ComplexImm"
	default:
		return "?kind"
	}
}

// TensorHandle is the narrow view of a TensorVar that the expression node
// model needs: enough to validate Access arity, to compare tensor identity
// structurally, and to look up a declared dimension for a given mode. The
// concrete TensorVar type (package tensor) implements this interface; the
// node model itself never imports package tensor, which is what keeps the
// mutual tensor<->expression dependency from becoming an import cycle.
type TensorHandle interface {
	// ID returns a value that is equal, by ==, iff two TensorHandles denote
	// the same underlying tensor.
	ID() uint64
	// Name returns the tensor's display name.
	Name() string
	// Order returns the tensor's order (number of modes).
	Order() int
	// Dimension returns the declared dimension of the i-th mode.
	Dimension(i int) shape.Dimension
	// DType returns the tensor's element data type.
	DType() dtype.DType
}

// OperatorSplit is a client-supplied annotation on a binary node recording
// that an IndexVar should be split into two for loop-lowering purposes.
type OperatorSplit struct {
	// Old is the index variable being split.
	Old ivar.IndexVar
	// Left is the new variable denoting the outer (coarse) half of the split.
	Left ivar.IndexVar
	// Right is the new variable denoting the inner (fine) half of the split.
	Right ivar.IndexVar
}

// ExprNode is one variant of the expression tree. The interface is sealed
// to this package: only types embedding base may implement it, so an
// exhaustive switch over Kind() in a strict visitor is guaranteed complete
// modulo bugs within this package itself.
type ExprNode interface {
	// Kind identifies which variant this node is.
	Kind() Kind
	// DType returns this node's element data type: intrinsic for
	// immediates, the promoted type of children for composites.
	DType() dtype.DType
	// Splits returns the operator-split annotations attached to this node.
	Splits() []OperatorSplit
	// AddSplit appends an operator-split annotation to this node. This
	// mutates the node in place: every IndexExpr alias of this node
	// observes the new split, per the IR's shared-mutable-node-state
	// design (see spec Design Notes on operator splits).
	AddSplit(s OperatorSplit)

	sealed()
}

// base is embedded by every concrete node type; it supplies the common
// DType/Splits/AddSplit machinery and the unexported sealed() method that
// restricts ExprNode implementers to this package.
type base struct {
	dt     dtype.DType
	splits []OperatorSplit
}

func (b *base) DType() dtype.DType        { return b.dt }
func (b *base) Splits() []OperatorSplit   { return b.splits }
func (b *base) AddSplit(s OperatorSplit)  { b.splits = append(b.splits, s) }
func (b *base) sealed()                   {}

// IndexExpr is a shared-ownership reference to an immutable ExprNode. The
// zero value is the undefined sentinel ("no expression"), which propagates
// through Simplify/Einsum per their documented rules. IndexExpr values are
// cheap to copy: copying an IndexExpr never copies the underlying node.
type IndexExpr struct {
	node ExprNode
}

// Undefined returns the undefined IndexExpr sentinel.
func Undefined() IndexExpr {
	return IndexExpr{}
}

// Of wraps a freshly constructed ExprNode as a defined IndexExpr. Exported
// for use by other packages in this module (visit, transform) that build
// nodes of variants defined here; ordinary clients should use the operator
// surface in build.go instead.
func Of(n ExprNode) IndexExpr {
	if n == nil {
		return Undefined()
	}

	return IndexExpr{node: n}
}

// IsDefined reports whether this handle points to a node (as opposed to
// being the undefined sentinel).
func (e IndexExpr) IsDefined() bool {
	return e.node != nil
}

// Node returns the underlying ExprNode. Consumers are expected to inspect
// it via the visitor framework (package visit) rather than type-switching
// directly, but the handle is exposed for packages within this module that
// implement that framework.
func (e IndexExpr) Node() ExprNode {
	return e.node
}

// Kind returns the underlying node's variant tag. Panics if undefined.
func (e IndexExpr) Kind() Kind {
	e.mustBeDefined("Kind")
	return e.node.Kind()
}

// DType returns the underlying node's element data type. Panics if
// undefined.
func (e IndexExpr) DType() dtype.DType {
	e.mustBeDefined("DType")
	return e.node.DType()
}

// Same reports whether two IndexExprs reference the identical underlying
// node (pointer equality, not structural equality). Two undefined handles
// are considered Same. Used by the default Rewriter to decide whether a
// rebuilt node can reuse an original child.
func (e IndexExpr) Same(o IndexExpr) bool {
	return e.node == o.node
}

// SplitOperator appends an operator-split annotation to the underlying
// node, mutating it in place so that every alias of this IndexExpr
// observes the split. Panics if undefined.
func (e IndexExpr) SplitOperator(old, left, right ivar.IndexVar) {
	e.mustBeDefined("SplitOperator")
	e.node.AddSplit(OperatorSplit{Old: old, Left: left, Right: right})
}

// Splits returns the operator-split annotations on the underlying node, or
// nil if undefined.
func (e IndexExpr) Splits() []OperatorSplit {
	if e.node == nil {
		return nil
	}

	return e.node.Splits()
}

func (e IndexExpr) mustBeDefined(op string) {
	if e.node == nil {
		diag.NewInternalError("IndexExpr."+op, "called on an undefined IndexExpr").Panic()
	}
}
