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

	"github.com/pingcap/errors"
)

// Profile represents the `pwgen` profile directory
type Profile struct {
	root string
}

// NewProfile returns a new profile instance
func NewProfile(root string) *Profile {
	return &Profile{root: root}
}

// InitProfile creates a profile from PWGEN_HOME, falling back to the user
// home directory, and to the working directory if there is no home.
func InitProfile() *Profile {
	if root := os.Getenv(EnvNameHome); root != "" {
		return NewProfile(root)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return NewProfile(filepath.Join(home, ProfileDirName))
}

// Path returns a full path which is related to profile root directory
func (p *Profile) Path(relpath ...string) string {
	return filepath.Join(append([]string{p.root}, relpath...)...)
}

// Root returns the root path of the profile
func (p *Profile) Root() string {
	return p.root
}

// ConfigPath is the default location of the config file
func (p *Profile) ConfigPath() string {
	return p.Path(ConfigFileName)
}

// SaveTo saves file to the profile directory, path is relative to the
// profile directory of current user
func (p *Profile) SaveTo(path string, data []byte, perm os.FileMode) error {
	fullPath := filepath.Join(p.root, path)
	// create sub directory if needed
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(os.WriteFile(fullPath, data, perm))
}
