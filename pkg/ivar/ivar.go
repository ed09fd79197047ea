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

// Package ivar implements the identifier registry for index variables: an
// identity-based handle ("IndexVar") minted explicitly, shared freely, and
// compared by allocation identity rather than by display name.
package ivar

import "github.com/tensorforge/tensorix/pkg/diag"

// content is the single allocation backing an IndexVar; all copies of an
// IndexVar value point at the same content, which is what gives IndexVar
// its identity-based equality.
type content struct {
	id   uint64
	name string
}

// IndexVar is a handle with identity denoting a loop/summation dimension.
// Two IndexVars compare equal (via Equal, or via ==) iff they were minted
// from the same New call, irrespective of display name.
type IndexVar struct {
	c *content
}

// New mints a fresh IndexVar with an auto-generated name drawn from the
// process-wide "i" prefix name source.
func New() IndexVar {
	return NewNamed(nextName('i'))
}

// NewNamed mints a fresh IndexVar with the given client-supplied display
// name. Collisions with other explicit or auto-generated names are not
// prevented; name uniqueness is the client's concern, not the registry's —
// identity, not name, is what equality and ordering rely on.
func NewNamed(name string) IndexVar {
	return IndexVar{c: &content{id: nextID(), name: name}}
}

// IsValid reports whether this handle was minted by New/NewNamed, as
// opposed to being a zero-valued IndexVar{}.
func (v IndexVar) IsValid() bool {
	return v.c != nil
}

// Name returns this variable's display name.
func (v IndexVar) Name() string {
	if v.c == nil {
		return "?"
	}

	return v.c.name
}

// SetName overwrites this variable's display name. This requires exclusive
// access to the handle per the concurrency model: no other goroutine may be
// reading Name() concurrently.
func (v IndexVar) SetName(name string) {
	if v.c == nil {
		diag.NewInternalError("IndexVar.SetName", "SetName called on an invalid IndexVar").Panic()
	}

	v.c.name = name
}

// ID returns a stable, process-unique integer identifying this variable's
// underlying allocation. Two IndexVars share an ID iff they are Equal.
func (v IndexVar) ID() uint64 {
	if v.c == nil {
		return 0
	}

	return v.c.id
}

// Equal reports whether two IndexVars denote the same underlying binding.
func (v IndexVar) Equal(o IndexVar) bool {
	return v.c == o.c
}

// Less provides a stable, arbitrary total order over IndexVars, usable to
// store IndexVars as map keys via a comparable projection, or to sort a
// slice of them deterministically. The order is by minting order (ID), not
// by display name.
func (v IndexVar) Less(o IndexVar) bool {
	return v.ID() < o.ID()
}

// String renders this variable's display name, for diagnostics.
func (v IndexVar) String() string {
	return v.Name()
}
