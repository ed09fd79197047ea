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

import (
	"fmt"

	"github.com/tensorforge/tensorix/pkg/config"
	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/ivar"
)

// Access indexes a tensor with a sequence of index variables, e.g.
// "A(i,j)". The number of indices must equal the tensor's order
// (invariant 1).
type Access struct {
	base

	Tensor  TensorHandle
	Indices []ivar.IndexVar
}

// NewAccess constructs an Access node. Returns a UserError if the number of
// indices does not match the tensor's declared order.
func NewAccess(tensor TensorHandle, indices []ivar.IndexVar) (IndexExpr, error) {
	if tensor == nil {
		return Undefined(), diag.NewUserError("NewAccess", "tensor must not be nil")
	}

	if len(indices) != tensor.Order() {
		return Undefined(), diag.NewUserError("NewAccess",
			fmt.Sprintf("tensor %q has order %d but %d indices were given", tensor.Name(), tensor.Order(), len(indices)))
	}

	if limits := config.Current(); !limits.AllowsArity(len(indices)) {
		return Undefined(), diag.NewUserError("NewAccess",
			fmt.Sprintf("tensor %q has order %d, exceeding the %q profile's max access arity of %d",
				tensor.Name(), len(indices), limits.Name, limits.MaxAccessArity))
	}

	ix := make([]ivar.IndexVar, len(indices))
	copy(ix, indices)

	node := &Access{Tensor: tensor, Indices: ix}
	node.dt = tensor.DType()

	return Of(node), nil
}

// MustAccess is like NewAccess but panics on error. Intended for use by the
// operator surface and by tests that construct known-good accesses.
func MustAccess(tensor TensorHandle, indices ...ivar.IndexVar) IndexExpr {
	e, err := NewAccess(tensor, indices)
	if err != nil {
		panic(err)
	}

	return e
}

// Kind implements ExprNode.
func (a *Access) Kind() Kind { return KindAccess }
