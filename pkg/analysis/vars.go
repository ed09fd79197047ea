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

// IndexVars returns the in-order, de-duplicated sequence of IndexVars
// occurring in any Access within e.
func IndexVars(e expr.IndexExpr) []ivar.IndexVar {
	var (
		out  []ivar.IndexVar
		seen = NewIndexVarSet()
	)

	collectIndexVars(e, &out, seen)

	return out
}

func collectIndexVars(e expr.IndexExpr, out *[]ivar.IndexVar, seen *IndexVarSet) {
	if !e.IsDefined() {
		return
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		for _, v := range n.Indices {
			if !seen.Contains(v) {
				seen.Insert(v)
				*out = append(*out, v)
			}
		}
	case *expr.Neg:
		collectIndexVars(n.Arg, out, seen)
	case *expr.Sqrt:
		collectIndexVars(n.Arg, out, seen)
	case *expr.Add:
		collectIndexVars(n.Lhs, out, seen)
		collectIndexVars(n.Rhs, out, seen)
	case *expr.Sub:
		collectIndexVars(n.Lhs, out, seen)
		collectIndexVars(n.Rhs, out, seen)
	case *expr.Mul:
		collectIndexVars(n.Lhs, out, seen)
		collectIndexVars(n.Rhs, out, seen)
	case *expr.Div:
		collectIndexVars(n.Lhs, out, seen)
		collectIndexVars(n.Rhs, out, seen)
	case *expr.Reduction:
		collectIndexVars(n.Arg, out, seen)
	}
}

// VarsWithoutReduction returns the set of IndexVars that appear in an
// Access within e but are not bound by an enclosing Reduction on the path
// from the root to that Access.
//
// This is computed per-subtree (each node returns its own free-variable
// set; Reduction subtracts its bound variable from its child's set; the
// binary variants union their children's sets) rather than by a single
// insert-then-remove pass over one accumulated set. The difference matters
// for expressions like "A(i) + sum(i)(B(i))": the left summand's "i" is
// free, and must stay free in the union even though the same variable is
// bound inside the right summand. See DESIGN.md for the worked rationale.
func VarsWithoutReduction(e expr.IndexExpr) *IndexVarSet {
	if !e.IsDefined() {
		return NewIndexVarSet()
	}

	switch n := e.Node().(type) {
	case *expr.Access:
		s := NewIndexVarSet()
		for _, v := range n.Indices {
			s.Insert(v)
		}

		return s
	case *expr.Neg:
		return VarsWithoutReduction(n.Arg)
	case *expr.Sqrt:
		return VarsWithoutReduction(n.Arg)
	case *expr.Add:
		return unionFree(n.Lhs, n.Rhs)
	case *expr.Sub:
		return unionFree(n.Lhs, n.Rhs)
	case *expr.Mul:
		return unionFree(n.Lhs, n.Rhs)
	case *expr.Div:
		return unionFree(n.Lhs, n.Rhs)
	case *expr.Reduction:
		s := VarsWithoutReduction(n.Arg)
		s.Remove(n.Var)

		return s
	default:
		// Immediates have no index variables.
		return NewIndexVarSet()
	}
}

func unionFree(a, b expr.IndexExpr) *IndexVarSet {
	s := VarsWithoutReduction(a)
	s.UnionWith(VarsWithoutReduction(b))

	return s
}
