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

// Package print implements the deterministic infix renderer used both for
// diagnostics and tests, and to build the human-readable context embedded
// in UserError messages raised elsewhere in this module.
package print

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tensorforge/tensorix/pkg/diag"
	"github.com/tensorforge/tensorix/pkg/expr"
	"github.com/tensorforge/tensorix/pkg/ivar"
)

// loosePrec is the precedence of the loosest operators (Add/Sub); passing it
// as the surrounding context never forces a paren, which is exactly what a
// top-level expression or a bracket-delimited argument (sqrt(...),
// sum(v)(...)) needs.
const loosePrec = 3

// precedence ranks each node kind from tightest (0: access, immediates,
// sqrt, reduction — all self-delimiting via their own brackets) to loosest
// (3: add/sub). A child is parenthesized whenever its own precedence is
// numerically greater than the precedence of the position it sits in.
func precedence(e expr.IndexExpr) int {
	switch e.Node().(type) {
	case *expr.Neg:
		return 1
	case *expr.Mul, *expr.Div:
		return 2
	case *expr.Add, *expr.Sub:
		return 3
	default:
		return 0
	}
}

// Print renders e in infix form, e.g. "A(i,j)*B(j,k)" or
// "sum(k)(A(i,k)*B(k,j))". Renders "<undefined>" for the undefined
// sentinel, which never occurs in a well-formed tree but is useful for
// diagnostics built from partially-constructed state.
func Print(e expr.IndexExpr) string {
	if !e.IsDefined() {
		return "<undefined>"
	}

	return render(e, loosePrec)
}

func render(e expr.IndexExpr, parentPrec int) string {
	s := renderNode(e)

	if precedence(e) > parentPrec {
		return "(" + s + ")"
	}

	return s
}

func renderNode(e expr.IndexExpr) string {
	switch n := e.Node().(type) {
	case *expr.Access:
		names := make([]string, len(n.Indices))
		for i, v := range n.Indices {
			names[i] = v.Name()
		}

		return n.Tensor.Name() + "(" + strings.Join(names, ",") + ")"
	case *expr.Neg:
		return "-" + render(n.Arg, precedence(e))
	case *expr.Sqrt:
		return "sqrt(" + render(n.Arg, loosePrec) + ")"
	case *expr.Add:
		return render(n.Lhs, precedence(e)) + " + " + render(n.Rhs, precedence(e))
	case *expr.Sub:
		return render(n.Lhs, precedence(e)) + " - " + render(n.Rhs, precedence(e))
	case *expr.Mul:
		return render(n.Lhs, precedence(e)) + "*" + render(n.Rhs, precedence(e))
	case *expr.Div:
		return render(n.Lhs, precedence(e)) + "/" + render(n.Rhs, precedence(e))
	case *expr.Reduction:
		return n.Op.String() + "(" + n.Var.Name() + ")(" + render(n.Arg, loosePrec) + ")"
	case *expr.IntImm:
		return strconv.FormatInt(n.Value, 10)
	case *expr.UIntImm:
		return strconv.FormatUint(n.Value, 10)
	case *expr.FloatImm:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *expr.ComplexImm:
		return fmt.Sprintf("%v", n.Value)
	default:
		diag.NewInternalError("print.Print", "unhandled ExprNode variant").Panic()
		return ""
	}
}

// PrintAssignment renders a tensor assignment as "name(free...) = expr" (or
// "+=" when accumulate is set), for embedding in diagnostics. Takes the
// result tensor's name rather than a tensor.TensorVar so that this package
// never needs to import package tensor.
func PrintAssignment(name string, free []ivar.IndexVar, e expr.IndexExpr, accumulate bool) string {
	names := make([]string, len(free))
	for i, v := range free {
		names[i] = v.Name()
	}

	op := "="
	if accumulate {
		op = "+="
	}

	body := "<undefined>"
	if e.IsDefined() {
		body = Print(e)
	}

	return fmt.Sprintf("%s(%s) %s %s", name, strings.Join(names, ","), op, body)
}
