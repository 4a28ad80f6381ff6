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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDisplayMode(t *testing.T) {
	require.Equal(t, DisplayModeJSON, ParseDisplayMode("JSON"))
	require.Equal(t, DisplayModePlain, ParseDisplayMode("plain"))
	require.Equal(t, DisplayModePlain, ParseDisplayMode("text"))
	require.Equal(t, DisplayModeDefault, ParseDisplayMode(""))
	require.Equal(t, DisplayModeDefault, ParseDisplayMode("fancy"))
	require.Equal(t, "json", DisplayModeJSON.String())
}

func TestLoggerOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := NewLogger("plain")
	l.SetStdout(&stdout)
	l.SetStderr(&stderr)

	l.Infof("generated in %d attempts", 3)
	l.Warnf("clipboard unsupported")
	require.Equal(t, "generated in 3 attempts\n", stdout.String())
	require.Equal(t, "clipboard unsupported\n", stderr.String())

	stdout.Reset()
	l.SetDisplayModeFromString("json")
	l.Infof("hello %s", "world")
	require.JSONEq(t, `{"level":"info","message":"hello world"}`, stdout.String())

	stdout.Reset()
	require.NoError(t, l.PrintJSON(map[string]any{"valid": true}))
	require.JSONEq(t, `{"valid":true}`, stdout.String())
}

func TestVerbose(t *testing.T) {
	var stderr bytes.Buffer
	l := NewLogger("")
	l.SetStderr(&stderr)

	SetVerbose(false)
	l.Verbose("hidden")
	require.Empty(t, stderr.String())

	SetVerbose(true)
	defer SetVerbose(false)
	l.Verbose("shown %d", 1)
	require.Equal(t, "Verbose: shown 1\n", stderr.String())
}
