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
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tensorforge/tensorix/pkg/config"
)

func TestUnboundedAllowsAnything(t *testing.T) {
	assert.True(t, config.Unbounded.AllowsArity(1000))
	assert.True(t, config.Unbounded.AllowsNodeCount(1000))
}

func TestLimitsEnforceBounds(t *testing.T) {
	l := config.Limits{Name: "tight", MaxAccessArity: 2, MaxExprNodes: 3}

	assert.True(t, l.AllowsArity(2))
	assert.False(t, l.AllowsArity(3))
	assert.True(t, l.AllowsNodeCount(3))
	assert.False(t, l.AllowsNodeCount(4))
}

func TestSetCurrentIsObservedByCurrent(t *testing.T) {
	t.Cleanup(func() { config.SetCurrent(config.Unbounded) })

	config.SetCurrent(config.Limits{Name: "custom", MaxAccessArity: 5})

	assert.Equal(t, "custom", config.Current().Name)
	assert.Equal(t, 5, config.Current().MaxAccessArity)
}
