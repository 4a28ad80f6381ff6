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

package localdata

// ProfileDirName is the name of the profile directory under the user home
var ProfileDirName = ".pwgen"

const (
	// ConfigFileName is the name of the config file in the profile directory
	ConfigFileName = "pwgen.toml"

	// LogParentDir represent the parent directory of debug logs
	LogParentDir = "logs"

	// EnvPrefix is prepended to every option read from the environment
	EnvPrefix = "PWGEN_"

	// EnvNameHome represents the environment name of the profile directory
	EnvNameHome = "PWGEN_HOME"

	// EnvNameLogPath represents the environment name of the debug log directory
	EnvNameLogPath = "PWGEN_LOG_PATH"

	// EnvNameVerbose enables verbose console messages when set to 1 or enable
	EnvNameVerbose = "PWGEN_VERBOSE"
)
