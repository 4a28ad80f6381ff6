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

package logprinter

import (
	"fmt"
	"os"

	"github.com/pingcap/pwgen/pkg/config"
	"github.com/pingcap/pwgen/pkg/localdata"
	"go.uber.org/atomic"
)

var verbose atomic.Bool

func init() {
	verbose.Store(config.ParseBool(os.Getenv(localdata.EnvNameVerbose)))
}

// SetVerbose turns verbose messages on or off
func SetVerbose(on bool) {
	verbose.Store(on)
}

// Verbose logs verbose messages
func (l *Logger) Verbose(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	fmt.Fprintln(l.stderr, "Verbose:", fmt.Sprintf(format, args...))
}
