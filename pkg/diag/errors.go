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

// Package diag provides the error taxonomy and structured logging used
// throughout the index-expression IR: UserError for faults introduced by a
// client of the IR (the parser, or any other producer), and InternalError
// for invariant violations within the IR itself.
package diag

import "fmt"

// UserError is a structured error reported when a client of the IR
// introduces an inconsistency: a dimensional mismatch, an ill-formed
// assignment, reassignment of an already-bound TensorVar, an arity mismatch
// in an Access, an unsupported transposition or distribution pattern, or a
// bad format character at tensor construction. A UserError aborts the
// operation that raised it without mutating any IR state.
type UserError struct {
	// Op names the operation that detected the fault (e.g. "Assign",
	// "NewAccess").
	Op string
	// Msg is a fully rendered, human-readable description of the fault.
	Msg string
}

// NewUserError constructs a UserError with a pre-rendered message.
func NewUserError(op, msg string) *UserError {
	return &UserError{Op: op, Msg: msg}
}

// Error implements the error interface.
func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// InternalError signals an invariant violation inside the IR itself — for
// example, a strict visitor asked to dispatch on a node variant it does not
// cover. This indicates a bug in this package, not a mistake by a client,
// and is not meant to be recovered from by callers.
type InternalError struct {
	Op  string
	Msg string
}

// NewInternalError constructs an InternalError.
func NewInternalError(op, msg string) *InternalError {
	return &InternalError{Op: op, Msg: msg}
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Op, e.Msg)
}

// Panic raises this InternalError as a panic. Strict visitors call this
// when handed a variant outside their exhaustive switch; per the teacher's
// own "unknown computation encountered" guard, this is always a programming
// bug rather than a recoverable condition.
func (e *InternalError) Panic() {
	panic(e)
}
