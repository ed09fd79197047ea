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
package tensor

import (
	"sync"

	"github.com/tensorforge/tensorix/pkg/diag"
)

// idSource mints process-unique TensorVar allocation ids, guarded the same
// way package ivar guards its own counter: a single mutex-protected
// monotonic counter shared process-wide, mirroring the teacher's
// register.Allocator.
type idSource struct {
	mu   sync.Mutex
	next uint64
}

var source = &idSource{}

func nextID() uint64 {
	source.mu.Lock()
	defer source.mu.Unlock()

	source.next++

	diag.Log.WithField("id", source.next).Debug("tensor: minted new TensorVar")

	return source.next
}
