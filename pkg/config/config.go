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

// Package config holds the small set of build-time limits the IR enforces
// while constructing expressions, the same way the teacher's FieldConfig
// bundles a named set of field-width limits rather than scattering
// magic numbers through the construction path.
package config

import "sync"

// Limits bounds the shape of expressions this build will construct. A zero
// value for any field means "unlimited" — the default Limits imposes no
// bound at all, matching the teacher's permissive default before a caller
// opts into a tighter build profile.
type Limits struct {
	// Name identifies this limits profile, used only to improve diagnostic
	// messages.
	Name string
	// MaxAccessArity bounds the number of indices an Access node may carry
	// (i.e. a tensor's maximum declared order). Zero means unlimited.
	MaxAccessArity int
	// MaxExprNodes bounds the number of nodes an expression handed to
	// transform.Einsum may contain; Einsum counts them before canonicalizing
	// and rejects a larger expression, guarding against pathologically deep
	// expressions built by a misbehaving producer. Simplify does not check
	// it. Zero means unlimited.
	MaxExprNodes int
}

// Unbounded is the zero-limits profile: every check against it passes.
var Unbounded = Limits{Name: "unbounded"}

var (
	mu      sync.Mutex
	current = Unbounded
)

// Current returns the active build-time limits profile.
func Current() Limits {
	mu.Lock()
	defer mu.Unlock()

	return current
}

// SetCurrent installs l as the active build-time limits profile. Intended to
// be called once at process start by a build-time configuration step, not
// from within expression-construction code.
func SetCurrent(l Limits) {
	mu.Lock()
	defer mu.Unlock()

	current = l
}

// AllowsArity reports whether n indices are permitted under l.
func (l Limits) AllowsArity(n int) bool {
	return l.MaxAccessArity == 0 || n <= l.MaxAccessArity
}

// AllowsNodeCount reports whether n traversed nodes are permitted under l.
func (l Limits) AllowsNodeCount(n int) bool {
	return l.MaxExprNodes == 0 || n <= l.MaxExprNodes
}
