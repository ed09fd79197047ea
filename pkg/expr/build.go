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
package expr

// I64 lifts a native int64 literal into an IntImm, per the factory operator
// surface's "i64 -> IntImm" rule.
func I64(v int64) IndexExpr { return NewIntImm(v) }

// U64 lifts a native uint64 literal into a UIntImm.
func U64(v uint64) IndexExpr { return NewUIntImm(v) }

// F64 lifts a native float64 literal into a FloatImm.
func F64(v float64) IndexExpr { return NewFloatImm(v) }

// C64 lifts a native complex64 literal into a ComplexImm.
func C64(v complex64) IndexExpr { return NewComplexImm(v) }

// Neg returns "-e".
func (e IndexExpr) Neg() IndexExpr { return NewNeg(e) }

// Sqrt returns "sqrt(e)".
func (e IndexExpr) Sqrt() IndexExpr { return NewSqrt(e) }

// Add returns "e+o".
func (e IndexExpr) Add(o IndexExpr) IndexExpr { return NewAdd(e, o) }

// Sub returns "e-o".
func (e IndexExpr) Sub(o IndexExpr) IndexExpr { return NewSub(e, o) }

// Mul returns "e*o".
func (e IndexExpr) Mul(o IndexExpr) IndexExpr { return NewMul(e, o) }

// Div returns "e/o".
func (e IndexExpr) Div(o IndexExpr) IndexExpr { return NewDiv(e, o) }
