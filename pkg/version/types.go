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

package version

import (
	"fmt"
	"runtime"
)

// SemVer returns the version in semver format
func SemVer() string {
	return fmt.Sprintf("%d.%d.%d", VerMajor, VerMinor, VerPatch)
}

// String returns the version with the build environment
func String() string {
	return fmt.Sprintf("%s\nGo Version: %s\nGit Ref: %s\nGitHash: %s", SemVer(), runtime.Version(), GitRef, GitHash)
}
