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

// Package dtype defines the element data types carried by every expression
// node, and the arithmetic-promotion lattice used to type binary nodes.
package dtype

// DType identifies the element type of a tensor or an expression node.
type DType uint8

const (
	// Int64 is a signed 64-bit integer type (backs IntImm).
	Int64 DType = iota
	// UInt64 is an unsigned 64-bit integer type (backs UIntImm).
	UInt64
	// Float64 is a 64-bit floating point type (backs FloatImm).
	Float64
	// Complex64 is a 64-bit-component complex type (backs ComplexImm).
	Complex64
)

// String renders a DType for diagnostics.
func (d DType) String() string {
	switch d {
	case Int64:
		return "i64"
	case UInt64:
		return "u64"
	case Float64:
		return "f64"
	case Complex64:
		return "c64"
	default:
		return "?dtype"
	}
}

// rank gives each DType its position in the promotion lattice
// Int64 < UInt64 < Float64 < Complex64. Mixing a signed and an unsigned
// integer promotes to Float64 rather than picking either side, so that
// sign information is never silently discarded.
func rank(d DType) int {
	switch d {
	case Int64:
		return 0
	case UInt64:
		return 1
	case Float64:
		return 2
	case Complex64:
		return 3
	default:
		return -1
	}
}

// Promote returns the result type of combining two operands under the
// arithmetic-promotion lattice: the wider of the two types wins, except
// that Int64 combined with UInt64 promotes to Float64 rather than
// arbitrarily picking a signedness.
func Promote(a, b DType) DType {
	if a == b {
		return a
	}

	if (a == Int64 && b == UInt64) || (a == UInt64 && b == Int64) {
		return Float64
	}

	if rank(a) >= rank(b) {
		return a
	}

	return b
}
