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
package diag

import (
	log "github.com/sirupsen/logrus"
)

// Log is the package-wide structured logger shared by the registry,
// transform, and assignment packages for diagnostic-only output (minted
// identifiers, rewrite decisions, bind outcomes). Nothing in this IR's
// control flow depends on logging; a caller may freely raise or lower the
// level, including disabling output entirely.
var Log = log.New()

func init() {
	// Quiet by default: the IR is an embedded library, not a CLI, so it
	// should not be chatty unless a host application asks for it.
	Log.SetLevel(log.WarnLevel)
}

// Verbose reports whether trace-level rewrite logging is enabled. Checked
// by Simplify/Einsum before formatting any log fields, so logging imposes
// no cost when disabled.
func Verbose() bool {
	return Log.IsLevelEnabled(log.TraceLevel)
}
