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
package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tensorforge/tensorix/pkg/analysis"
	"github.com/tensorforge/tensorix/pkg/assign"
	"github.com/tensorforge/tensorix/pkg/dtype"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/format"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
	"github.com/tensorforge/tensorix/pkg/tensor"
	"github.com/tensorforge/tensorix/pkg/transform"
)

func mustTensor(t *testing.T, name string, dt dtype.DType, sh shape.Shape, formatSpec string) tensor.TensorVar {
	t.Helper()

	tv, err := tensor.New(name, dt, sh, formatSpec)
	require.NoError(t, err)

	return tv
}

// S1: matmul via the einsum convention — C(i,j) = sum(k) A(i,k)*B(k,j).
func TestScenarioMatmulEinsum(t *testing.T) {
	i, j, k := ivar.New(), ivar.New(), ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")
	b := mustTensor(t, "B", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")

	term := expr.MustAccess(a, i, k).Mul(expr.MustAccess(b, k, j))

	canon, err := transform.Einsum(term, []ivar.IndexVar{i, j})
	require.NoError(t, err)

	require.NoError(t, assign.Assign(c, []ivar.IndexVar{i, j}, canon))
	assert.True(t, c.Assigned())

	as, ok := c.Assignment()
	require.True(t, ok)
	assert.True(t, analysis.Verify(as.Expr, as.Free))
}

// S2: plain elementwise vector addition — C(i) = A(i) + B(i).
func TestScenarioVectorAdd(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	b := mustTensor(t, "B", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")

	e := expr.MustAccess(a, i).Add(expr.MustAccess(b, i))

	require.NoError(t, assign.Assign(c, []ivar.IndexVar{i}, e))
}

// S3: B(j,i) = A(i,j) with A, B both row-major dense — a plain (not even
// accumulating) assignment whose free-index order reindexes relative to
// the order indices occur in the expression is rejected as an unsupported
// transposition pattern.
func TestScenarioTransposeRejection(t *testing.T) {
	i, j := ivar.New(), ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")
	b := mustTensor(t, "B", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")

	err := assign.Assign(b, []ivar.IndexVar{j, i}, expr.MustAccess(a, i, j))

	assert.Error(t, err)
	assert.False(t, b.Assigned())
}

// Accumulating ("+=") into a result whose storage format is physically
// transposed relative to declaration order is rejected even when the
// assignment's own free-index order matches the expression exactly — a
// distinct, format-level concern from the index-reindexing S3 checks above.
func TestAssignAccumulateRejectsPhysicallyTransposedFormat(t *testing.T) {
	i, j := ivar.New(), ivar.New()

	transposed, err := format.NewWithOrder("dd", []int{1, 0})
	require.NoError(t, err)

	c, err := tensor.NewWithFormat("C", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, transposed)
	require.NoError(t, err)

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")
	e := expr.MustAccess(a, i, j)

	err = assign.AssignAccumulate(c, []ivar.IndexVar{i, j}, e)

	assert.Error(t, err)
	assert.False(t, c.Assigned())
}

// A free var the result declares but that appears in no access is an
// unsupported distribution pattern, rejected for a plain Assign.
func TestAssignRejectsDistributionPattern(t *testing.T) {
	i, j := ivar.New(), ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(4), shape.Fixed(4)}, "dd")

	err := assign.Assign(c, []ivar.IndexVar{i, j}, expr.MustAccess(a, i))

	assert.Error(t, err)
	assert.False(t, c.Assigned())
}

// S4: zero propagation ahead of assignment — simplifying away a zeroed term
// before binding still satisfies well-formedness.
func TestScenarioZeroPropagationBeforeAssign(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	b := mustTensor(t, "B", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")

	zeroedAccess := expr.MustAccess(a, i)
	e := zeroedAccess.Add(expr.MustAccess(b, i))

	simplified := transform.Simplify(e, []expr.IndexExpr{expr.MustAccess(a, i)})

	require.NoError(t, assign.Assign(c, []ivar.IndexVar{i}, simplified))

	as, ok := c.Assignment()
	require.True(t, ok)
	assert.True(t, analysis.Equals(as.Expr, expr.MustAccess(b, i)))
}

// S5: a tensor may only be assigned once.
func TestScenarioReassignmentRejected(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")

	e := expr.MustAccess(a, i)

	require.NoError(t, assign.Assign(c, []ivar.IndexVar{i}, e))

	err := assign.Assign(c, []ivar.IndexVar{i}, e)
	assert.Error(t, err)
}

// S6: an ill-formed scalar assignment — a non-empty free list against an
// order-0 result is rejected, as is an expression with an index variable
// that is free but not a declared index of the (empty) free list.
func TestScenarioIllFormedScalarAssignment(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	s := mustTensor(t, "S", dtype.Float64, shape.Shape{}, "")

	err := assign.Assign(s, []ivar.IndexVar{i}, expr.MustAccess(a, i))
	assert.Error(t, err)

	err = assign.Assign(s, nil, expr.MustAccess(a, i))
	assert.Error(t, err, "i appears free in the expression but is absent from the (empty) free-index list")
}

func TestAssignRejectsDimensionConflict(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4)}, "d")
	b := mustTensor(t, "B", dtype.Float64, shape.Shape{shape.Fixed(8)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(4)}, "d")

	e := expr.MustAccess(a, i).Add(expr.MustAccess(b, i))

	err := assign.Assign(c, []ivar.IndexVar{i}, e)
	assert.Error(t, err)
}

func TestAssignAccumulateRoundTrip(t *testing.T) {
	i := ivar.New()

	a := mustTensor(t, "A", dtype.Float64, shape.Shape{shape.Fixed(4)}, "d")
	c := mustTensor(t, "C", dtype.Float64, shape.Shape{shape.Fixed(4)}, "d")

	e := expr.MustAccess(a, i)

	require.NoError(t, assign.AssignAccumulate(c, []ivar.IndexVar{i}, e))

	as, ok := c.Assignment()
	require.True(t, ok)
	assert.True(t, as.Accumulate)
}
