// Copyright 2022 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// This file only contains version related variables and consts, all
// type definitions and functions shall not be implemented here.

package version

var (
	// VerMajor is the major version of pwgen
	VerMajor = 0
	// VerMinor is the minor version of pwgen
	VerMinor = 3
	// VerPatch is the patch version of pwgen
	VerPatch = 0
	// GitHash is the current git commit hash, set by -ldflags
	GitHash = "Unknown"
	// GitRef is the current git reference name (branch or tag), set by -ldflags
	GitRef = "Unknown"
)
