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
package analysis

import (
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/visit"
)

// Equals implements structural equality. Both undefined compares equal;
// exactly one undefined compares unequal; otherwise the two trees must
// share variant, tensor identity and index-variable sequence (for Access),
// recursive equality of children (for composites), and bitwise-equal
// payloads (for immediates). Equality is by structure and identity, never
// by mathematical value: "a+b" is not Equals to "b+a", and two distinct
// IndexVars with the same display name are not Equals.
//
// This resolves the spec's noted "copy-paste" open question: Access
// equality compares the two sides' index-variable sequences against each
// other, not one side's sequence against itself.
func Equals(a, b expr.IndexExpr) bool {
	aDef, bDef := a.IsDefined(), b.IsDefined()

	if !aDef && !bDef {
		return true
	}

	if aDef != bDef {
		return false
	}

	v := &equalVisitor{other: b.Node()}
	visit.Visit(v, a)

	return v.result
}

// equalVisitor compares the node it is Visit-ed against the node it was
// constructed with (other), leaving the result in `result`.
type equalVisitor struct {
	other  expr.ExprNode
	result bool
}

func (v *equalVisitor) VisitAccess(n *expr.Access) {
	o, ok := v.other.(*expr.Access)
	if !ok || n.Tensor.ID() != o.Tensor.ID() || len(n.Indices) != len(o.Indices) {
		v.result = false
		return
	}

	for i := range n.Indices {
		if !n.Indices[i].Equal(o.Indices[i]) {
			v.result = false
			return
		}
	}

	v.result = true
}

func (v *equalVisitor) VisitNeg(n *expr.Neg) {
	o, ok := v.other.(*expr.Neg)
	v.result = ok && Equals(n.Arg, o.Arg)
}

func (v *equalVisitor) VisitSqrt(n *expr.Sqrt) {
	o, ok := v.other.(*expr.Sqrt)
	v.result = ok && Equals(n.Arg, o.Arg)
}

func (v *equalVisitor) VisitAdd(n *expr.Add) {
	o, ok := v.other.(*expr.Add)
	v.result = ok && Equals(n.Lhs, o.Lhs) && Equals(n.Rhs, o.Rhs)
}

func (v *equalVisitor) VisitSub(n *expr.Sub) {
	o, ok := v.other.(*expr.Sub)
	v.result = ok && Equals(n.Lhs, o.Lhs) && Equals(n.Rhs, o.Rhs)
}

func (v *equalVisitor) VisitMul(n *expr.Mul) {
	o, ok := v.other.(*expr.Mul)
	v.result = ok && Equals(n.Lhs, o.Lhs) && Equals(n.Rhs, o.Rhs)
}

func (v *equalVisitor) VisitDiv(n *expr.Div) {
	o, ok := v.other.(*expr.Div)
	v.result = ok && Equals(n.Lhs, o.Lhs) && Equals(n.Rhs, o.Rhs)
}

func (v *equalVisitor) VisitReduction(n *expr.Reduction) {
	o, ok := v.other.(*expr.Reduction)
	v.result = ok && n.Op == o.Op && n.Var.Equal(o.Var) && Equals(n.Arg, o.Arg)
}

func (v *equalVisitor) VisitIntImm(n *expr.IntImm) {
	o, ok := v.other.(*expr.IntImm)
	v.result = ok && n.Value == o.Value
}

func (v *equalVisitor) VisitUIntImm(n *expr.UIntImm) {
	o, ok := v.other.(*expr.UIntImm)
	v.result = ok && n.Value == o.Value
}

func (v *equalVisitor) VisitFloatImm(n *expr.FloatImm) {
	o, ok := v.other.(*expr.FloatImm)
	v.result = ok && n.Value == o.Value
}

func (v *equalVisitor) VisitComplexImm(n *expr.ComplexImm) {
	o, ok := v.other.(*expr.ComplexImm)
	v.result = ok && n.Value == o.Value
}
