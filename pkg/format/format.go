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

// Package format provides the storage-format descriptor bound to a
// TensorVar. Per spec, this is treated opaquely by the IR except for two
// facts it exposes: whether the result layout admits in-place accumulation,
// and the mode order used by the transposition check at assignment time.
// The internal encoding of per-mode storage kinds (dense, compressed,
// singleton, ...) belongs to the storage-format compiler, which is out of
// scope for this IR.
package format

import "github.com/tensorforge/tensorix/pkg/diag"

// ModeKind is a per-mode storage kind. The IR does not interpret these
// beyond recording them; the storage-format compiler (out of scope here)
// gives them operational meaning.
type ModeKind byte

const (
	// Dense indicates a mode stored densely (every coordinate present).
	Dense ModeKind = 'd'
	// Sparse indicates a mode stored in a compressed, coordinate-skipping
	// representation.
	Sparse ModeKind = 's'
	// Singleton indicates a mode with exactly one non-zero coordinate per
	// parent coordinate.
	Singleton ModeKind = 'q'
)

// ParseModeKind converts a single format character into a ModeKind. A bad
// format character at tensor construction is a UserError per the spec's
// error taxonomy.
func ParseModeKind(c byte) (ModeKind, error) {
	switch ModeKind(c) {
	case Dense, Sparse, Singleton:
		return ModeKind(c), nil
	default:
		return 0, diag.NewUserError("format.ParseModeKind",
			"bad format character '"+string(c)+"' (expected one of 'd', 's', 'q')")
	}
}

// Format describes the storage layout of a TensorVar: a per-mode storage
// kind plus the order in which modes are laid out, which may differ from
// declaration order (the mode-order permutation drives the transposition
// check at assignment time).
type Format struct {
	// modes holds one ModeKind per tensor mode, in declaration order.
	modes []ModeKind
	// order gives, for each position in storage order, which declared mode
	// index is stored there. order[k] == i means the k-th stored mode is
	// declared mode i. Identity ([0,1,2,...]) means no transposition.
	order []int
}

// New constructs a Format from a per-mode kind string (e.g. "dd" for a
// dense matrix) in declaration order, with the identity mode order (no
// transposition).
func New(spec string) (Format, error) {
	modes := make([]ModeKind, len(spec))

	for i := 0; i < len(spec); i++ {
		k, err := ParseModeKind(spec[i])
		if err != nil {
			return Format{}, err
		}

		modes[i] = k
	}

	order := make([]int, len(modes))
	for i := range order {
		order[i] = i
	}

	return Format{modes: modes, order: order}, nil
}

// NewWithOrder constructs a Format with an explicit, possibly non-identity,
// mode order (used to describe e.g. a column-major matrix as a transposed
// row-major one).
func NewWithOrder(spec string, order []int) (Format, error) {
	f, err := New(spec)
	if err != nil {
		return Format{}, err
	}

	if len(order) != len(f.modes) {
		return Format{}, diag.NewUserError("format.NewWithOrder", "mode order length does not match mode count")
	}

	f.order = append([]int(nil), order...)

	return f, nil
}

// Order returns the number of modes this format describes.
func (f Format) Order() int {
	return len(f.modes)
}

// ModeOrder returns the storage-position -> declared-mode-index mapping.
func (f Format) ModeOrder() []int {
	return f.order
}

// AdmitsInPlaceAccumulation reports whether this layout supports `+=`
// assignment without first zeroing the result: true iff every mode is
// Dense (a sparse or singleton result mode requires building a fresh
// structure, since accumulating in place could change which coordinates
// are non-zero).
func (f Format) AdmitsInPlaceAccumulation() bool {
	for _, m := range f.modes {
		if m != Dense {
			return false
		}
	}

	return true
}

// IsIdentityOrder reports whether this format's mode order matches
// declaration order (no transposition).
func (f Format) IsIdentityOrder() bool {
	for i, m := range f.order {
		if m != i {
			return false
		}
	}

	return true
}
