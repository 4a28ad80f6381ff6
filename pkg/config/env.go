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
	"os"
	"strconv"
	"strings"

	"github.com/pingcap/pwgen/pkg/localdata"
	"github.com/pingcap/pwgen/pkg/utils"
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

type binding struct {
	name string
	set  func(c *Config, v string) error
}

func boolVar(name string, field func(c *Config) *bool) binding {
	return binding{
		name: name,
		set: func(c *Config, v string) error {
			*field(c) = ParseBool(v)
			return nil
		},
	}
}

func intVar(name string, field func(c *Config) *int) binding {
	return binding{
		name: name,
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return utils.ErrConfig.Wrap(err, "invalid integer in %s%s", localdata.EnvPrefix, name)
			}
			*field(c) = n
			return nil
		},
	}
}

var bindings = []binding{
	boolVar("CASE_SENSITIVE", func(c *Config) *bool { return &c.Alphabet.CaseSensitive }),
	boolVar("INCLUDE_LOWER_CASE", func(c *Config) *bool { return &c.Alphabet.IncludeLower }),
	boolVar("INCLUDE_UPPER_CASE", func(c *Config) *bool { return &c.Alphabet.IncludeUpper }),
	boolVar("INCLUDE_DIGITS", func(c *Config) *bool { return &c.Alphabet.IncludeDigits }),
	boolVar("INCLUDE_OTHERS", func(c *Config) *bool { return &c.Alphabet.IncludePunctuation }),
	boolVar("INCLUDE_VOWELS", func(c *Config) *bool { return &c.Alphabet.IncludeVowels }),
	boolVar("INCLUDE_CONSONANTS", func(c *Config) *bool { return &c.Alphabet.IncludeConsonants }),
	intVar("PASS_MIN", func(c *Config) *int { return &c.Constraints.PassMin }),
	intVar("PASS_MAX", func(c *Config) *int { return &c.Constraints.PassMax }),
	intVar("LETTERS_MIN", func(c *Config) *int { return &c.Constraints.LettersMin }),
	intVar("LETTERS_MAX", func(c *Config) *int { return &c.Constraints.LettersMax }),
	intVar("DIGITS_MIN", func(c *Config) *int { return &c.Constraints.DigitsMin }),
	intVar("DIGITS_MAX", func(c *Config) *int { return &c.Constraints.DigitsMax }),
	intVar("OTHERS_MIN", func(c *Config) *int { return &c.Constraints.OthersMin }),
	intVar("OTHERS_MAX", func(c *Config) *int { return &c.Constraints.OthersMax }),
	boolVar("NO_NEXT_MATCH", func(c *Config) *bool { return &c.Constraints.NoAdjacentRepeat }),
	intVar("MAX_RETRY", func(c *Config) *int { return &c.Generator.MaxRetry }),
	intVar("SECONDS_IN_CLIPBOARD", func(c *Config) *int { return &c.Generator.SecondsInClipboard }),
}

// ParseBool is true for "true", "1" and "enable", case-insensitive
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "enable":
		return true
	default:
		return false
	}
}

// ApplyEnv overrides cfg with every PWGEN_* variable found by lookup. A nil
// lookup reads the process environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, b := range bindings {
		v, ok := lookup(localdata.EnvPrefix + b.name)
		if !ok {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			return err
		}
	}
	return nil
}

// EnvNames lists every variable ApplyEnv reads
func EnvNames() []string {
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, localdata.EnvPrefix+b.name)
	}
	return names
}
