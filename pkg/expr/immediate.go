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

// IntImm is a signed 64-bit integer immediate.
type IntImm struct {
	base

	Value int64
}

// Kind implements ExprNode.
func (n *IntImm) Kind() Kind { return KindIntImm }

// NewIntImm constructs an IntImm node.
func NewIntImm(v int64) IndexExpr {
	node := &IntImm{Value: v}
	node.dt = dtype.Int64

	return Of(node)
}

// UIntImm is an unsigned 64-bit integer immediate.
type UIntImm struct {
	base

	Value uint64
}

// Kind implements ExprNode.
func (n *UIntImm) Kind() Kind { return KindUIntImm }

// NewUIntImm constructs a UIntImm node.
func NewUIntImm(v uint64) IndexExpr {
	node := &UIntImm{Value: v}
	node.dt = dtype.UInt64

	return Of(node)
}

// FloatImm is a 64-bit floating point immediate.
type FloatImm struct {
	base

	Value float64
}

// Kind implements ExprNode.
func (n *FloatImm) Kind() Kind { return KindFloatImm }

// NewFloatImm constructs a FloatImm node.
func NewFloatImm(v float64) IndexExpr {
	node := &FloatImm{Value: v}
	node.dt = dtype.Float64

	return Of(node)
}

// ComplexImm is a 64-bit-component complex immediate.
type ComplexImm struct {
	base

	Value complex64
}

// Kind implements ExprNode.
func (n *ComplexImm) Kind() Kind { return KindComplexImm }

// NewComplexImm constructs a ComplexImm node.
func NewComplexImm(v complex64) IndexExpr {
	node := &ComplexImm{Value: v}
	node.dt = dtype.Complex64

	return Of(node)
}
