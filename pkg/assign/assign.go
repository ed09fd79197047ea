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

// Package assign implements the tensor-assignment protocol: validating a
// candidate (free-index list, expression) pair against a result tensor and,
// if it passes, binding it via tensor.TensorVar.Bind.
package assign

import (
	"fmt"
	"strings"

	"github.com/tensorforge/tensorix/pkg/analysis"
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/ivar"
	"github.com/tensorforge/tensorix/pkg/print"
	"github.com/tensorforge/tensorix/pkg/tensor"
)

// Assign binds result to e over the free indices in free, replacing
// result's entire value. Returns a UserError without mutating result if any
// of the five checks fails; see bind for the checks in order.
func Assign(result tensor.TensorVar, free []ivar.IndexVar, e expr.IndexExpr) error {
	return bind(result, free, e, false)
}

// AssignAccumulate is like Assign but binds result to accumulate into its
// existing value ("+=") rather than replace it. This additionally requires
// the result's storage format to admit in-place accumulation.
func AssignAccumulate(result tensor.TensorVar, free []ivar.IndexVar, e expr.IndexExpr) error {
	return bind(result, free, e, true)
}

func bind(result tensor.TensorVar, free []ivar.IndexVar, e expr.IndexExpr, accumulate bool) error {
	const op = "assign.Assign"

	// Step 1: no prior assignment. Checked first, and cheaply, before any of
	// the more expensive analyses run.
	if result.Assigned() {
		return diag.NewUserError(op, fmt.Sprintf("tensor %q is already assigned", result.Name()))
	}

	if !e.IsDefined() {
		return diag.NewUserError(op, fmt.Sprintf("%s: right-hand side is undefined", result.Name()))
	}

	// The scalar (order-0) special case: an empty free list is only valid
	// for an order-0 result; every other order requires an exact length
	// match.
	if result.Order() == 0 {
		if len(free) != 0 {
			return diag.NewUserError(op, fmt.Sprintf(
				"scalar tensor %q must be assigned with an empty free-index list, got %d", result.Name(), len(free)))
		}
	} else if len(free) != result.Order() {
		return diag.NewUserError(op, fmt.Sprintf(
			"tensor %q has order %d but %d free indices were given", result.Name(), result.Order(), len(free)))
	}

	// Step 2: dimensional type-check — every occurrence of an IndexVar,
	// across the result's free positions and every Access in e, must agree
	// on the dimension it indexes.
	if ok, conflicts := analysis.DimensionsTypecheck(free, result, e); !ok {
		return diag.NewUserError(op, fmt.Sprintf(
			"%s: dimension conflict on index %q: %s vs %s",
			print.PrintAssignment(result.Name(), free, e, accumulate),
			conflicts[0].Var.Name(), conflicts[0].First, conflicts[0].Conflict))
	}

	// Step 3: well-formedness — every IndexVar free in e (not bound by an
	// enclosing Reduction) must appear in free.
	if !analysis.Verify(e, free) {
		missing := analysis.MissingFreeVars(e, free)
		names := make([]string, len(missing))

		for i, v := range missing {
			names[i] = v.Name()
		}

		return diag.NewUserError(op, fmt.Sprintf(
			"%s: index(es) %s appear unbound in the expression but are not in the free-index list",
			print.PrintAssignment(result.Name(), free, e, accumulate), strings.Join(names, ", ")))
	}

	// Step 4: transposition/distribution rejection. Unlike the format-based
	// checks below, these two apply to every assignment, accumulating or
	// not: both describe patterns in the (free, e) pair itself that the
	// current lowering cannot express, regardless of how the result happens
	// to be stored.
	//
	// A distribution pattern is a free var the result declares but that
	// appears in no Access within e.
	if distributed := analysis.DistributedVars(free, e); len(distributed) > 0 {
		names := make([]string, len(distributed))
		for i, v := range distributed {
			names[i] = v.Name()
		}

		return diag.NewUserError(op, fmt.Sprintf(
			"%s: index(es) %s appear in the result's free-index list but in no access; unsupported distribution pattern",
			print.PrintAssignment(result.Name(), free, e, accumulate), strings.Join(names, ", ")))
	}

	// A transposition pattern is a free-index list whose order disagrees
	// with the order its vars first occur among e's Accesses — e.g.
	// "B(j,i) = A(i,j)" reindexes rather than merely selects.
	if analysis.IsTransposed(free, e) {
		return diag.NewUserError(op, fmt.Sprintf(
			"%s: free-index order disagrees with the order indices occur in the expression; unsupported transposition pattern",
			print.PrintAssignment(result.Name(), free, e, accumulate)))
	}

	// Accumulation additionally requires the result's storage format to
	// admit in-place writes: every mode dense (so accumulation cannot alter
	// which coordinates are non-zero) and the format's own mode order
	// matching declaration order (so an in-place `+=` isn't secretly a
	// scatter through a physically transposed layout). A fresh
	// (non-accumulating) assignment may populate storage in whatever
	// physical order the result's format describes.
	if accumulate {
		f := result.Format()

		if !f.AdmitsInPlaceAccumulation() {
			return diag.NewUserError(op, fmt.Sprintf(
				"%s: result layout has a non-dense mode; accumulation would require building a fresh structure, not +=",
				print.PrintAssignment(result.Name(), free, e, accumulate)))
		}

		if !f.IsIdentityOrder() {
			return diag.NewUserError(op, fmt.Sprintf(
				"%s: result layout is transposed relative to declaration order; accumulation into a transposed layout is unsupported",
				print.PrintAssignment(result.Name(), free, e, accumulate)))
		}
	}

	if err := result.Bind(free, e, accumulate); err != nil {
		return err
	}

	diag.Log.WithField("assignment", print.PrintAssignment(result.Name(), free, e, accumulate)).Debug("assign: bound")

	return nil
}
