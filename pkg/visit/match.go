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
package visit

import "github.com/tensorforge/tensorix/pkg/expr"

// Handlers is a set of optional per-variant callbacks for Match. Any nil
// field is simply skipped (falling through to Default, if set), which is
// what makes Match non-strict: unlike Visitor, a caller need not handle
// every variant.
type Handlers struct {
	Access     func(*expr.Access)
	Neg        func(*expr.Neg)
	Sqrt       func(*expr.Sqrt)
	Add        func(*expr.Add)
	Sub        func(*expr.Sub)
	Mul        func(*expr.Mul)
	Div        func(*expr.Div)
	Reduction  func(*expr.Reduction)
	IntImm     func(*expr.IntImm)
	UIntImm    func(*expr.UIntImm)
	FloatImm   func(*expr.FloatImm)
	ComplexImm func(*expr.ComplexImm)
	// Default, if set, is invoked for any variant whose specific handler
	// above is nil.
	Default func(expr.ExprNode)
}

// Match dispatches e against h, invoking whichever handler applies (or
// Default, or nothing at all). Calling Match on an undefined e is a no-op.
func Match(h Handlers, e expr.IndexExpr) {
	if !e.IsDefined() {
		return
	}

	n := e.Node()

	switch t := n.(type) {
	case *expr.Access:
		if h.Access != nil {
			h.Access(t)
			return
		}
	case *expr.Neg:
		if h.Neg != nil {
			h.Neg(t)
			return
		}
	case *expr.Sqrt:
		if h.Sqrt != nil {
			h.Sqrt(t)
			return
		}
	case *expr.Add:
		if h.Add != nil {
			h.Add(t)
			return
		}
	case *expr.Sub:
		if h.Sub != nil {
			h.Sub(t)
			return
		}
	case *expr.Mul:
		if h.Mul != nil {
			h.Mul(t)
			return
		}
	case *expr.Div:
		if h.Div != nil {
			h.Div(t)
			return
		}
	case *expr.Reduction:
		if h.Reduction != nil {
			h.Reduction(t)
			return
		}
	case *expr.IntImm:
		if h.IntImm != nil {
			h.IntImm(t)
			return
		}
	case *expr.UIntImm:
		if h.UIntImm != nil {
			h.UIntImm(t)
			return
		}
	case *expr.FloatImm:
		if h.FloatImm != nil {
			h.FloatImm(t)
			return
		}
	case *expr.ComplexImm:
		if h.ComplexImm != nil {
			h.ComplexImm(t)
			return
		}
	}

	if h.Default != nil {
		h.Default(n)
	}
}
