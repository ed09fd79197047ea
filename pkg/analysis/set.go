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
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/tensorforge/tensorix/pkg/ivar"
)

// IndexVarSet is a set of IndexVars, represented as a dense bitset over
// IndexVar IDs (which are small, process-monotonic integers minted by
// package ivar — a direct fit for a bitset rather than a hash set) plus a
// side table to recover the IndexVar value for a given ID, since a bitset
// alone only records presence.
type IndexVarSet struct {
	bits  *bitset.BitSet
	byID  map[uint64]ivar.IndexVar
}

// NewIndexVarSet returns an empty set.
func NewIndexVarSet() *IndexVarSet {
	return &IndexVarSet{bits: bitset.New(0), byID: make(map[uint64]ivar.IndexVar)}
}

// Insert adds v to the set. Idempotent.
func (s *IndexVarSet) Insert(v ivar.IndexVar) {
	s.bits.Set(uint(v.ID()))
	s.byID[v.ID()] = v
}

// Remove drops v from the set, if present.
func (s *IndexVarSet) Remove(v ivar.IndexVar) {
	s.bits.Clear(uint(v.ID()))
	delete(s.byID, v.ID())
}

// Contains reports whether v is in the set.
func (s *IndexVarSet) Contains(v ivar.IndexVar) bool {
	return s.bits.Test(uint(v.ID()))
}

// UnionWith merges o into s in place.
func (s *IndexVarSet) UnionWith(o *IndexVarSet) {
	s.bits.InPlaceUnion(o.bits)

	for id, v := range o.byID {
		s.byID[id] = v
	}
}

// Clone returns an independent copy of this set.
func (s *IndexVarSet) Clone() *IndexVarSet {
	c := &IndexVarSet{bits: s.bits.Clone(), byID: make(map[uint64]ivar.IndexVar, len(s.byID))}

	for id, v := range s.byID {
		c.byID[id] = v
	}

	return c
}

// Len returns the number of elements in the set.
func (s *IndexVarSet) Len() int {
	return len(s.byID)
}

// Elements returns the set's members in a stable order (by ID, i.e.
// minting order), for deterministic diagnostics and tests.
func (s *IndexVarSet) Elements() []ivar.IndexVar {
	ids := make([]uint64, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]ivar.IndexVar, len(ids))
	for i, id := range ids {
		out[i] = s.byID[id]
	}

	return out
}

// SubsetOf reports whether every element of s also belongs to other.
func (s *IndexVarSet) SubsetOf(other *IndexVarSet) bool {
	for _, v := range s.byID {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}
