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

import "github.com/tensorforge/tensorix/pkg/dtype"

// Add represents the addition of two expressions ("a+b").
type Add struct {
	base

	Lhs, Rhs IndexExpr
}

// Kind implements ExprNode.
func (n *Add) Kind() Kind { return KindAdd }

// NewAdd constructs an Add node. Both operands must be defined.
func NewAdd(a, b IndexExpr) IndexExpr {
	requireDefined("NewAdd", a, b)

	node := &Add{Lhs: a, Rhs: b}
	node.dt = dtype.Promote(a.DType(), b.DType())

	return Of(node)
}

// Sub represents the subtraction of two expressions ("a-b").
type Sub struct {
	base

	Lhs, Rhs IndexExpr
}

// Kind implements ExprNode.
func (n *Sub) Kind() Kind { return KindSub }

// NewSub constructs a Sub node. Both operands must be defined.
func NewSub(a, b IndexExpr) IndexExpr {
	requireDefined("NewSub", a, b)

	node := &Sub{Lhs: a, Rhs: b}
	node.dt = dtype.Promote(a.DType(), b.DType())

	return Of(node)
}

// Mul represents the multiplication of two expressions ("a*b").
type Mul struct {
	base

	Lhs, Rhs IndexExpr
}

// Kind implements ExprNode.
func (n *Mul) Kind() Kind { return KindMul }

// NewMul constructs a Mul node. Both operands must be defined.
func NewMul(a, b IndexExpr) IndexExpr {
	requireDefined("NewMul", a, b)

	node := &Mul{Lhs: a, Rhs: b}
	node.dt = dtype.Promote(a.DType(), b.DType())

	return Of(node)
}

// Div represents the division of two expressions ("a/b").
type Div struct {
	base

	Lhs, Rhs IndexExpr
}

// Kind implements ExprNode.
func (n *Div) Kind() Kind { return KindDiv }

// NewDiv constructs a Div node. Both operands must be defined.
func NewDiv(a, b IndexExpr) IndexExpr {
	requireDefined("NewDiv", a, b)

	node := &Div{Lhs: a, Rhs: b}
	node.dt = dtype.Promote(a.DType(), b.DType())

	return Of(node)
}
