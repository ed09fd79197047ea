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
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tensorforge/tensorix/pkg/analysis"
	"github.com/tensorforge/tensorix/pkg/config"
	"github.com/tensorforge/tensorix/pkg/dtype"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
	"github.com/tensorforge/tensorix/pkg/transform"
)

type fakeTensor struct {
	id   uint64
	name string
	dims []shape.Dimension
}

func (f *fakeTensor) ID() uint64                     { return f.id }
func (f *fakeTensor) Name() string                   { return f.name }
func (f *fakeTensor) Order() int                     { return len(f.dims) }
func (f *fakeTensor) Dimension(i int) shape.Dimension { return f.dims[i] }
func (f *fakeTensor) DType() dtype.DType             { return dtype.Float64 }

func tensor1D(id uint64, name string, n int64) *fakeTensor {
	return &fakeTensor{id: id, name: name, dims: []shape.Dimension{shape.Fixed(n)}}
}

func tensor2D(id uint64, name string, m, n int64) *fakeTensor {
	return &fakeTensor{id: id, name: name, dims: []shape.Dimension{shape.Fixed(m), shape.Fixed(n)}}
}

func TestSimplifyWithEmptyZeroedIsIdentityPreserving(t *testing.T) {
	i := ivar.New()
	e := expr.MustAccess(tensor1D(1, "A", 4), i).Add(expr.I64(2)).Neg()

	out := transform.Simplify(e, nil)

	assert.True(t, out.Same(e), "Simplify with no zeroed accesses must return the identical tree")
	assert.True(t, analysis.Equals(out, e))
}

func TestSimplifyZeroesMatchingAccess(t *testing.T) {
	i := ivar.New()
	tn := tensor1D(1, "A", 4)
	access := expr.MustAccess(tn, i)
	other := expr.MustAccess(tensor1D(2, "B", 4), i)

	e := access.Add(other)

	out := transform.Simplify(e, []expr.IndexExpr{expr.MustAccess(tn, i)})

	assert.True(t, analysis.Equals(out, other), "A(i)+B(i) with A(i) zeroed collapses to B(i)")
}

func TestSimplifyAllZeroedBecomesUndefined(t *testing.T) {
	i := ivar.New()
	tn := tensor1D(1, "A", 4)
	access := expr.MustAccess(tn, i)

	e := access.Mul(expr.F64(2))

	out := transform.Simplify(e, []expr.IndexExpr{expr.MustAccess(tn, i)})

	assert.False(t, out.IsDefined())
}

func TestSimplifyMulPropagatesFromEitherSide(t *testing.T) {
	i := ivar.New()
	tn := tensor1D(1, "A", 4)
	a := expr.MustAccess(tn, i)
	b := expr.MustAccess(tensor1D(2, "B", 4), i)

	out := transform.Simplify(a.Mul(b), []expr.IndexExpr{expr.MustAccess(tn, i)})

	assert.False(t, out.IsDefined(), "multiplying by a zeroed access is a structural zero")
}

func TestEinsumWrapsUnboundVarsAsReductions(t *testing.T) {
	i, j, k := ivar.New(), ivar.New(), ivar.New()
	a := expr.MustAccess(tensor2D(1, "A", 4, 4), i, k)
	b := expr.MustAccess(tensor2D(2, "B", 4, 4), k, j)

	out, err := transform.Einsum(a.Mul(b), []ivar.IndexVar{i, j})
	require.NoError(t, err)

	assert.True(t, analysis.Verify(out, []ivar.IndexVar{i, j}), "einsum output must be well-formed for the given free set")

	red, ok := out.Node().(*expr.Reduction)
	require.True(t, ok, "k must be wrapped in an explicit Sum reduction")
	assert.True(t, red.Var.Equal(k))
	assert.Equal(t, expr.SumOp, red.Op)
}

func TestEinsumRejectsNonEligibleExpression(t *testing.T) {
	i := ivar.New()
	a := expr.MustAccess(tensor1D(1, "A", 4), i)
	b := expr.MustAccess(tensor1D(2, "B", 4), i)

	_, err := transform.Einsum(a.Add(b).Mul(a), []ivar.IndexVar{i})

	assert.Error(t, err)
}

func TestEinsumNestsMultipleUnboundVarsLastOccurringOutermost(t *testing.T) {
	j, k := ivar.New(), ivar.New()
	a := expr.MustAccess(tensor2D(1, "A", 4, 4), j, k)
	b := expr.MustAccess(tensor2D(2, "B", 4, 4), j, k)

	out, err := transform.Einsum(a.Mul(b), nil)
	require.NoError(t, err)

	outer, ok := out.Node().(*expr.Reduction)
	require.True(t, ok, "the last-occurring var (k) must be the outermost Sum")
	assert.True(t, outer.Var.Equal(k))

	inner, ok := outer.Arg.Node().(*expr.Reduction)
	require.True(t, ok, "the first-occurring var (j) must be the innermost Sum")
	assert.True(t, inner.Var.Equal(j))

	_, ok = inner.Arg.Node().(*expr.Mul)
	require.True(t, ok, "the innermost Sum must wrap the term directly")
}

func TestEinsumRejectsExpressionOverConfiguredNodeLimit(t *testing.T) {
	t.Cleanup(func() { config.SetCurrent(config.Unbounded) })
	config.SetCurrent(config.Limits{Name: "tight", MaxExprNodes: 1})

	i, k := ivar.New(), ivar.New()
	a := expr.MustAccess(tensor1D(1, "A", 4), i)
	b := expr.MustAccess(tensor1D(2, "B", 4), k)

	_, err := transform.Einsum(a.Mul(b), []ivar.IndexVar{i})

	assert.Error(t, err)
}

func TestEinsumDistributesOverTopLevelSum(t *testing.T) {
	i, j := ivar.New(), ivar.New()
	a := expr.MustAccess(tensor1D(1, "A", 4), i)
	b := expr.MustAccess(tensor2D(2, "B", 4, 4), i, j)

	out, err := transform.Einsum(a.Add(b), []ivar.IndexVar{i})
	require.NoError(t, err)

	add, ok := out.Node().(*expr.Add)
	require.True(t, ok)

	assert.True(t, analysis.Equals(add.Lhs, a), "a term with no unbound vars passes through unwrapped")

	red, ok := add.Rhs.Node().(*expr.Reduction)
	require.True(t, ok, "j must be bound independently within its own term")
	assert.True(t, red.Var.Equal(j))
}
