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
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
)

// IndexVarRanges returns a mapping from each IndexVar in the result's free
// set or in e to the dimension it indexes: a free var at position i maps to
// result's i-th shape dimension, and each Access inside e maps its j-th
// index to that access's own tensor's j-th shape dimension. Conflicts
// across occurrences are not detected here (see DimensionsTypecheck); if
// two occurrences of the same IndexVar disagree, the later one in
// traversal order wins.
func IndexVarRanges(free []ivar.IndexVar, result expr.TensorHandle, e expr.IndexExpr) map[ivar.IndexVar]shape.Dimension {
	ranges := make(map[ivar.IndexVar]shape.Dimension)

	for i, v := range free {
		if i < result.Order() {
			ranges[v] = result.Dimension(i)
		}
	}

	collectAccessDims(e, ranges)

	return ranges
}

func collectAccessDims(e expr.IndexExpr, ranges map[ivar.IndexVar]shape.Dimension) {
	if !e.IsDefined() {
		return
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		for i, v := range n.Indices {
			ranges[v] = n.Tensor.Dimension(i)
		}
	case *expr.Neg:
		collectAccessDims(n.Arg, ranges)
	case *expr.Sqrt:
		collectAccessDims(n.Arg, ranges)
	case *expr.Add:
		collectAccessDims(n.Lhs, ranges)
		collectAccessDims(n.Rhs, ranges)
	case *expr.Sub:
		collectAccessDims(n.Lhs, ranges)
		collectAccessDims(n.Rhs, ranges)
	case *expr.Mul:
		collectAccessDims(n.Lhs, ranges)
		collectAccessDims(n.Rhs, ranges)
	case *expr.Div:
		collectAccessDims(n.Lhs, ranges)
		collectAccessDims(n.Rhs, ranges)
	case *expr.Reduction:
		collectAccessDims(n.Arg, ranges)
	}
}

// DimensionConflict names one IndexVar that was assigned two disagreeing
// dimensions across the occurrences DimensionsTypecheck examined.
type DimensionConflict struct {
	Var      ivar.IndexVar
	First    shape.Dimension
	Conflict shape.Dimension
}

// DimensionsTypecheck returns true iff the dimensions assigned to each
// IndexVar are consistent across every occurrence in the result and the
// expression (an Access tensor's declared dimension at the index's
// position). This is the external collaborator interface named in spec
// §4.4; it is implemented here rather than merely declared because this
// expansion treats "dimensional type-check" as squarely within the IR's
// own analysis surface.
func DimensionsTypecheck(free []ivar.IndexVar, result expr.TensorHandle, e expr.IndexExpr) (bool, []DimensionConflict) {
	occurrences := make(map[ivar.IndexVar][]shape.Dimension)

	for i, v := range free {
		if i < result.Order() {
			occurrences[v] = append(occurrences[v], result.Dimension(i))
		}
	}

	collectOccurrences(e, occurrences)

	var conflicts []DimensionConflict

	for v, dims := range occurrences {
		for i := 1; i < len(dims); i++ {
			if !dims[0].Equal(dims[i]) {
				conflicts = append(conflicts, DimensionConflict{Var: v, First: dims[0], Conflict: dims[i]})
				break
			}
		}
	}

	return len(conflicts) == 0, conflicts
}

func collectOccurrences(e expr.IndexExpr, occurrences map[ivar.IndexVar][]shape.Dimension) {
	if !e.IsDefined() {
		return
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		for i, v := range n.Indices {
			occurrences[v] = append(occurrences[v], n.Tensor.Dimension(i))
		}
	case *expr.Neg:
		collectOccurrences(n.Arg, occurrences)
	case *expr.Sqrt:
		collectOccurrences(n.Arg, occurrences)
	case *expr.Add:
		collectOccurrences(n.Lhs, occurrences)
		collectOccurrences(n.Rhs, occurrences)
	case *expr.Sub:
		collectOccurrences(n.Lhs, occurrences)
		collectOccurrences(n.Rhs, occurrences)
	case *expr.Mul:
		collectOccurrences(n.Lhs, occurrences)
		collectOccurrences(n.Rhs, occurrences)
	case *expr.Div:
		collectOccurrences(n.Lhs, occurrences)
		collectOccurrences(n.Rhs, occurrences)
	case *expr.Reduction:
		collectOccurrences(n.Arg, occurrences)
	}
}
