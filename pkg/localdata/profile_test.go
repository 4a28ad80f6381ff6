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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitProfileFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvNameHome, dir)

	p := InitProfile()
	require.Equal(t, dir, p.Root())
	require.Equal(t, filepath.Join(dir, ConfigFileName), p.ConfigPath())
	require.Equal(t, filepath.Join(dir, LogParentDir, "a.log"), p.Path(LogParentDir, "a.log"))
}

func TestInitProfileDefault(t *testing.T) {
	t.Setenv(EnvNameHome, "")
	p := InitProfile()
	require.Equal(t, ProfileDirName, filepath.Base(p.Root()))
}

func TestSaveTo(t *testing.T) {
	p := NewProfile(t.TempDir())
	require.NoError(t, p.SaveTo(filepath.Join(LogParentDir, "x.log"), []byte("hello"), 0644))

	data, err := os.ReadFile(p.Path(LogParentDir, "x.log"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}
