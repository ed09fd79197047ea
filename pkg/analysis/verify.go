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
)

// Verify holds iff every IndexVar that appears in an Access within e and is
// not bound by an enclosing Reduction belongs to free — i.e. e is
// well-formed for the free-index set free.
func Verify(e expr.IndexExpr, free []ivar.IndexVar) bool {
	freeSet := NewIndexVarSet()
	for _, v := range free {
		freeSet.Insert(v)
	}

	return VarsWithoutReduction(e).SubsetOf(freeSet)
}

// MissingFreeVars returns the IndexVars that cause Verify to fail: those
// appearing unbound in e but absent from free. Used to build the
// well-formedness error-message contract ("show the assignment as rendered
// and the missing free vars"). Returns nil if Verify would succeed.
func MissingFreeVars(e expr.IndexExpr, free []ivar.IndexVar) []ivar.IndexVar {
	freeSet := NewIndexVarSet()
	for _, v := range free {
		freeSet.Insert(v)
	}

	unbound := VarsWithoutReduction(e)

	var missing []ivar.IndexVar

	for _, v := range unbound.Elements() {
		if !freeSet.Contains(v) {
			missing = append(missing, v)
		}
	}

	return missing
}
