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

import "github.com/tensorforge/tensorix/pkg/expr"

// IsEinsumEligible reports whether e is composed only of Add, Sub, and Mul
// over Access nodes (and immediates), with no Add or Sub occurring beneath
// a Mul — i.e. e is a sum of products, never a product of sums. Any
// Reduction, Neg, Sqrt, Div, or an undefined sub-expression disqualifies.
func IsEinsumEligible(e expr.IndexExpr) bool {
	return einsumEligible(e, false)
}

func einsumEligible(e expr.IndexExpr, beneathMul bool) bool {
	if !e.IsDefined() {
		return false
	}

	switch n := e.Node().(type) {
	case *expr.Access, *expr.IntImm, *expr.UIntImm, *expr.FloatImm, *expr.ComplexImm:
		return true
	case *expr.Add:
		return !beneathMul && einsumEligible(n.Lhs, beneathMul) && einsumEligible(n.Rhs, beneathMul)
	case *expr.Sub:
		return !beneathMul && einsumEligible(n.Lhs, beneathMul) && einsumEligible(n.Rhs, beneathMul)
	case *expr.Mul:
		return einsumEligible(n.Lhs, true) && einsumEligible(n.Rhs, true)
	default:
		return false
	}
}
