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
package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tensorforge/tensorix/pkg/dtype"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
	"github.com/tensorforge/tensorix/pkg/visit"
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

func vec(id uint64, name string) *fakeTensor {
	return &fakeTensor{id: id, name: name, dims: []shape.Dimension{shape.Fixed(8)}}
}

func TestIdentityRewriterPreservesUnchangedTree(t *testing.T) {
	i := ivar.New()
	a := expr.MustAccess(vec(1, "A"), i)
	e := a.Add(expr.I64(2)).Neg()

	id := &visit.Identity{}
	id.Self = id

	out := visit.Rewrite(id, e)

	assert.True(t, out.Same(e), "Identity must return the original node when nothing changed")
}

func TestRewriteOnUndefinedIsUndefined(t *testing.T) {
	id := &visit.Identity{}
	id.Self = id

	out := visit.Rewrite(id, expr.Undefined())

	assert.False(t, out.IsDefined())
}

func TestVisitPanicsOnUndefined(t *testing.T) {
	assert.Panics(t, func() {
		visit.Visit(&countingVisitor{}, expr.Undefined())
	})
}

// countingVisitor implements visit.Visitor by counting total dispatches,
// used only to exercise Visit's undefined-input panic above.
type countingVisitor struct{ n int }

func (c *countingVisitor) VisitAccess(*expr.Access)         { c.n++ }
func (c *countingVisitor) VisitNeg(*expr.Neg)               { c.n++ }
func (c *countingVisitor) VisitSqrt(*expr.Sqrt)             { c.n++ }
func (c *countingVisitor) VisitAdd(*expr.Add)               { c.n++ }
func (c *countingVisitor) VisitSub(*expr.Sub)               { c.n++ }
func (c *countingVisitor) VisitMul(*expr.Mul)               { c.n++ }
func (c *countingVisitor) VisitDiv(*expr.Div)               { c.n++ }
func (c *countingVisitor) VisitReduction(*expr.Reduction)   { c.n++ }
func (c *countingVisitor) VisitIntImm(*expr.IntImm)         { c.n++ }
func (c *countingVisitor) VisitUIntImm(*expr.UIntImm)       { c.n++ }
func (c *countingVisitor) VisitFloatImm(*expr.FloatImm)     { c.n++ }
func (c *countingVisitor) VisitComplexImm(*expr.ComplexImm) { c.n++ }

func TestMatchInvokesSpecificHandlerOverDefault(t *testing.T) {
	e := expr.I64(5)

	var sawIntImm, sawDefault bool

	visit.Match(visit.Handlers{
		IntImm:  func(*expr.IntImm) { sawIntImm = true },
		Default: func(expr.ExprNode) { sawDefault = true },
	}, e)

	assert.True(t, sawIntImm)
	assert.False(t, sawDefault)
}

func TestMatchFallsBackToDefault(t *testing.T) {
	e := expr.I64(5)

	var gotKind expr.Kind

	visit.Match(visit.Handlers{
		Default: func(n expr.ExprNode) { gotKind = n.Kind() },
	}, e)

	assert.Equal(t, expr.KindIntImm, gotKind)
}

func TestMatchOnUndefinedIsNoOp(t *testing.T) {
	called := false

	visit.Match(visit.Handlers{Default: func(expr.ExprNode) { called = true }}, expr.Undefined())

	assert.False(t, called)
}
