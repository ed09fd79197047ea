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
package dtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tensorforge/tensorix/pkg/dtype"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		name string
		a, b dtype.DType
		want dtype.DType
	}{
		{"same type", dtype.Int64, dtype.Int64, dtype.Int64},
		{"int widens to float", dtype.Int64, dtype.Float64, dtype.Float64},
		{"uint widens to complex", dtype.UInt64, dtype.Complex64, dtype.Complex64},
		{"float widens to complex", dtype.Float64, dtype.Complex64, dtype.Complex64},
		{"int/uint mix promotes to float, neither side wins", dtype.Int64, dtype.UInt64, dtype.Float64},
		{"int/uint mix is symmetric", dtype.UInt64, dtype.Int64, dtype.Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dtype.Promote(tt.a, tt.b))
		})
	}
}

func TestPromoteIsCommutative(t *testing.T) {
	types := []dtype.DType{dtype.Int64, dtype.UInt64, dtype.Float64, dtype.Complex64}

	for _, a := range types {
		for _, b := range types {
			assert.Equal(t, dtype.Promote(a, b), dtype.Promote(b, a))
		}
	}
}
