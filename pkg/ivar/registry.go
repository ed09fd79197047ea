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
package ivar

import (
	"fmt"
	"sync"

	"github.com/tensorforge/tensorix/pkg/diag"
)

// nameSource is process-wide state tracking, for each prefix character, how
// many auto-generated names have been minted so far. Guarded by mu so that
// concurrent identifier creation from multiple goroutines is safe, per the
// concurrency model's requirement that the name generator be protected
// internally — mirroring the teacher's register.Allocator, which guards its
// own monotonic counters the same way.
type nameSource struct {
	mu      sync.Mutex
	counts  map[byte]uint64
	nextIDs uint64
}

var source = &nameSource{counts: make(map[byte]uint64)}

// nextName returns the next auto-generated name for a given prefix, e.g.
// "i0", "i1", "i2", ... The counter is monotonic per prefix and shared by
// the whole process.
func nextName(prefix byte) string {
	source.mu.Lock()
	defer source.mu.Unlock()

	n := source.counts[prefix]
	source.counts[prefix] = n + 1

	return fmt.Sprintf("%c%d", prefix, n)
}

// nextID returns the next process-unique allocation id, used as the basis
// of IndexVar identity and ordering.
func nextID() uint64 {
	source.mu.Lock()
	defer source.mu.Unlock()

	source.nextIDs++

	diag.Log.WithField("id", source.nextIDs).Debug("ivar: minted new IndexVar")

	return source.nextIDs
}
