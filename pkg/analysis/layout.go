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

// DistributedVars returns the free vars that appear in no Access within e —
// the spec's "distribution pattern": a result mode whose index is never
// read from any operand, which the current lowering does not support.
// Returns nil if every free var is used somewhere in e.
func DistributedVars(free []ivar.IndexVar, e expr.IndexExpr) []ivar.IndexVar {
	used := NewIndexVarSet()
	for _, v := range IndexVars(e) {
		used.Insert(v)
	}

	var missing []ivar.IndexVar

	for _, v := range free {
		if !used.Contains(v) {
			missing = append(missing, v)
		}
	}

	return missing
}

// IsTransposed reports whether free's declared order disagrees with the
// order its vars first occur among e's Accesses — the spec's
// "transposition pattern": result(j,i) = ...A(i,j)... reindexes rather than
// merely selecting, which the current lowering does not support.
//
// Free vars that never occur in e are a distribution pattern (reported
// separately by DistributedVars) and are ignored here rather than forced
// into a spurious mismatch.
func IsTransposed(free []ivar.IndexVar, e expr.IndexExpr) bool {
	freeSet := NewIndexVarSet()
	for _, v := range free {
		freeSet.Insert(v)
	}

	var occurring []ivar.IndexVar

	for _, v := range IndexVars(e) {
		if freeSet.Contains(v) {
			occurring = append(occurring, v)
		}
	}

	occurringSet := NewIndexVarSet()
	for _, v := range occurring {
		occurringSet.Insert(v)
	}

	var declared []ivar.IndexVar

	for _, v := range free {
		if occurringSet.Contains(v) {
			declared = append(declared, v)
		}
	}

	if len(declared) != len(occurring) {
		return false
	}

	for i, v := range declared {
		if !v.Equal(occurring[i]) {
			return true
		}
	}

	return false
}
