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

// Package tensor implements TensorVar, the identity-based handle denoting a
// named tensor: its element type, shape, storage format, and (once bound)
// the single assignment defining its value.
package tensor

import (
	"fmt"

	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/dtype"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/format"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/shape"
)

// Type bundles a tensor's element type and shape — the two properties that
// exist independently of how (or whether) the tensor is laid out in storage
// or assigned a value.
type Type struct {
	DType dtype.DType
	Shape shape.Shape
}

// Assignment records the single (free-index-list, expression, accumulate)
// triple a TensorVar is bound to, per spec §5's "each TensorVar may be
// assigned at most once" invariant.
type Assignment struct {
	Free       []ivar.IndexVar
	Expr       expr.IndexExpr
	Accumulate bool
}

// content is the single allocation backing a TensorVar; value copies of a
// TensorVar share the same content, giving TensorVar the same
// identity-based equality IndexVar has.
type content struct {
	id         uint64
	name       string
	typ        Type
	format     format.Format
	assignment *Assignment
}

// TensorVar is a handle denoting a named tensor. It implements
// expr.TensorHandle, which is how Access nodes refer to tensors without
// package expr ever importing this package.
type TensorVar struct {
	c *content
}

// New constructs a fresh TensorVar with the given name, element type, and
// shape, laid out according to formatSpec (a per-mode kind string consumed
// by format.New, e.g. "dd" for a dense matrix). Returns a UserError if
// formatSpec is malformed or its mode count does not match the shape's
// order.
func New(name string, dt dtype.DType, sh shape.Shape, formatSpec string) (TensorVar, error) {
	f, err := format.New(formatSpec)
	if err != nil {
		return TensorVar{}, err
	}

	return NewWithFormat(name, dt, sh, f)
}

// NewWithFormat is like New but takes an already-constructed format.Format,
// which lets a caller describe a non-identity mode order (e.g. a
// transposed layout) — something a bare format-kind string cannot express.
func NewWithFormat(name string, dt dtype.DType, sh shape.Shape, f format.Format) (TensorVar, error) {
	if f.Order() != sh.Order() {
		return TensorVar{}, diag.NewUserError("tensor.New",
			fmt.Sprintf("tensor %q: format describes %d modes but shape has order %d", name, f.Order(), sh.Order()))
	}

	diag.Log.WithField("name", name).Debug("tensor: declared new TensorVar")

	return TensorVar{c: &content{id: nextID(), name: name, typ: Type{DType: dt, Shape: sh}, format: f}}, nil
}

// IsValid reports whether this handle was minted by New, as opposed to
// being a zero-valued TensorVar{}.
func (t TensorVar) IsValid() bool {
	return t.c != nil
}

// ID implements expr.TensorHandle.
func (t TensorVar) ID() uint64 {
	t.mustBeValid("ID")
	return t.c.id
}

// Name implements expr.TensorHandle.
func (t TensorVar) Name() string {
	t.mustBeValid("Name")
	return t.c.name
}

// Order implements expr.TensorHandle.
func (t TensorVar) Order() int {
	t.mustBeValid("Order")
	return t.c.typ.Shape.Order()
}

// Dimension implements expr.TensorHandle.
func (t TensorVar) Dimension(i int) shape.Dimension {
	t.mustBeValid("Dimension")

	if i < 0 || i >= len(t.c.typ.Shape) {
		diag.NewInternalError("TensorVar.Dimension", "mode index out of range").Panic()
	}

	return t.c.typ.Shape[i]
}

// DType implements expr.TensorHandle.
func (t TensorVar) DType() dtype.DType {
	t.mustBeValid("DType")
	return t.c.typ.DType
}

// Type returns this tensor's element type and shape.
func (t TensorVar) Type() Type {
	t.mustBeValid("Type")
	return t.c.typ
}

// Format returns this tensor's storage-format descriptor.
func (t TensorVar) Format() format.Format {
	t.mustBeValid("Format")
	return t.c.format
}

// Assigned reports whether this tensor has already been bound by Bind.
func (t TensorVar) Assigned() bool {
	t.mustBeValid("Assigned")
	return t.c.assignment != nil
}

// Assignment returns this tensor's bound assignment, and whether one
// exists.
func (t TensorVar) Assignment() (Assignment, bool) {
	t.mustBeValid("Assignment")

	if t.c.assignment == nil {
		return Assignment{}, false
	}

	return *t.c.assignment, true
}

// Bind stores (free, e, accumulate) as this tensor's assignment. Returns a
// UserError if the tensor is already assigned — package assign is expected
// to have already run its own validation (dimension typecheck,
// well-formedness, transposition/distribution checks) before calling Bind;
// this is the final, authoritative single-assignment guard.
func (t TensorVar) Bind(free []ivar.IndexVar, e expr.IndexExpr, accumulate bool) error {
	t.mustBeValid("Bind")

	if t.c.assignment != nil {
		return diag.NewUserError("tensor.Bind", fmt.Sprintf("tensor %q is already assigned", t.c.name))
	}

	ix := make([]ivar.IndexVar, len(free))
	copy(ix, free)

	t.c.assignment = &Assignment{Free: ix, Expr: e, Accumulate: accumulate}

	diag.Log.WithField("name", t.c.name).Debug("tensor: bound assignment")

	return nil
}

// GetSchedule rebuilds, on every call, the sequence of operator-split
// annotations attached to the binary (Add/Sub/Mul/Div) nodes of this
// tensor's bound expression, in pre-order traversal order. Splits attached
// to other node kinds are not included. Returns nil if the tensor is
// unassigned or its binary nodes carry no splits.
func (t TensorVar) GetSchedule() []expr.OperatorSplit {
	t.mustBeValid("GetSchedule")

	if t.c.assignment == nil {
		return nil
	}

	var out []expr.OperatorSplit

	collectSplits(t.c.assignment.Expr, &out)

	return out
}

func collectSplits(e expr.IndexExpr, out *[]expr.OperatorSplit) {
	if !e.IsDefined() {
		return
	}

	switch e.Node().(type) {
	case *expr.Add, *expr.Sub, *expr.Mul, *expr.Div:
		*out = append(*out, e.Splits()...)
	}

	switch n := e.Node().(type) {
	case *expr.Neg:
		collectSplits(n.Arg, out)
	case *expr.Sqrt:
		collectSplits(n.Arg, out)
	case *expr.Add:
		collectSplits(n.Lhs, out)
		collectSplits(n.Rhs, out)
	case *expr.Sub:
		collectSplits(n.Lhs, out)
		collectSplits(n.Rhs, out)
	case *expr.Mul:
		collectSplits(n.Lhs, out)
		collectSplits(n.Rhs, out)
	case *expr.Div:
		collectSplits(n.Lhs, out)
		collectSplits(n.Rhs, out)
	case *expr.Reduction:
		collectSplits(n.Arg, out)
	}
}

func (t TensorVar) mustBeValid(op string) {
	if t.c == nil {
		diag.NewInternalError("TensorVar."+op, "called on an invalid TensorVar").Panic()
	}
}
