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

package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	perrs "github.com/pingcap/errors"
	"github.com/pingcap/pwgen/pkg/alphabet"
	"github.com/pingcap/pwgen/pkg/constraint"
	"github.com/pingcap/pwgen/pkg/generator"
	"go.uber.org/zap"
)

// Config is everything needed to build and run a generator
type Config struct {
	// Format is the console display mode: default, plain or json
	Format      string            `toml:"format" default:"default"`
	Alphabet    alphabet.Options  `toml:"alphabet"`
	Constraints constraint.Fields `toml:"constraints"`
	Generator   generator.Options `toml:"generator"`
}

// Default returns a config filled with the built-in defaults
func Default() *Config {
	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		// the tags are static, failing here is a programming error
		panic(err)
	}
	return cfg
}

// Load reads the TOML file at path on top of the built-in defaults. A
// missing file is only an error when mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !mustExist {
			return cfg, nil
		}
		return nil, perrs.Annotatef(err, "read config file %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, perrs.Annotatef(err, "decode config file %s", path)
	}
	for _, key := range md.Undecoded() {
		zap.L().Warn("Unknown config key ignored", zap.String("file", path), zap.String("key", key.String()))
	}
	return cfg, nil
}

// Encode writes cfg as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
