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
package ivar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tensorforge/tensorix/pkg/ivar"
)

func TestNewDistinctIdentity(t *testing.T) {
	i := ivar.New()
	j := ivar.New()

	assert.True(t, i.IsValid())
	assert.False(t, i.Equal(j), "two New() calls must mint distinct variables")
	assert.NotEqual(t, i.ID(), j.ID())
}

func TestNewNamedSameDisplayNameDistinctIdentity(t *testing.T) {
	i := ivar.NewNamed("k")
	j := ivar.NewNamed("k")

	assert.Equal(t, "k", i.Name())
	assert.Equal(t, "k", j.Name())
	assert.False(t, i.Equal(j), "identity is by allocation, not display name")
}

func TestCopySharesIdentity(t *testing.T) {
	i := ivar.New()
	j := i

	assert.True(t, i.Equal(j))
	assert.Equal(t, i.ID(), j.ID())
}

func TestSetNameDoesNotChangeIdentity(t *testing.T) {
	i := ivar.NewNamed("x")
	id := i.ID()

	i.SetName("y")

	assert.Equal(t, "y", i.Name())
	assert.Equal(t, id, i.ID())
}

func TestLessIsByMintOrder(t *testing.T) {
	i := ivar.New()
	j := ivar.New()

	assert.True(t, i.Less(j))
	assert.False(t, j.Less(i))
}

func TestZeroValueIsInvalid(t *testing.T) {
	var z ivar.IndexVar

	assert.False(t, z.IsValid())
	assert.Equal(t, uint64(0), z.ID())
}
