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

package alphabet

import (
	"strings"

	"github.com/pingcap/pwgen/pkg/utils"
)

// Options selects which symbol categories make up an alphabet.
//
// IncludeVowels and IncludeConsonants refine the letter groups: with neither
// set no letter is contributed, even if IncludeLower or IncludeUpper is set.
// When CaseSensitive is false the letter group is always taken from the lower
// case table, and IncludeLower/IncludeUpper are ignored.
type Options struct {
	CaseSensitive      bool `toml:"case_sensitive" default:"true"`
	IncludeLower       bool `toml:"include_lower" default:"true"`
	IncludeUpper       bool `toml:"include_upper" default:"true"`
	IncludeDigits      bool `toml:"include_digits" default:"true"`
	IncludePunctuation bool `toml:"include_punctuation"`
	IncludeVowels      bool `toml:"include_vowels" default:"true"`
	IncludeConsonants  bool `toml:"include_consonants" default:"true"`
}

// symbol tables
const (
	LowerVowels     = "aeiou"
	LowerConsonants = "bcdfghjklmnpqrstvwxyz"
	UpperVowels     = "AEIOU"
	UpperConsonants = "BCDFGHJKLMNPQRSTVWXYZ"
	Digits          = "0123456789"
	Punctuation     = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

type letterCase int

const (
	lowerCase letterCase = iota
	upperCase
)

type letterSubset int

const (
	subsetNone letterSubset = iota
	subsetVowels
	subsetConsonants
	subsetBoth
)

var letterTables = map[letterCase]map[letterSubset]string{
	lowerCase: {
		subsetNone:       "",
		subsetVowels:     LowerVowels,
		subsetConsonants: LowerConsonants,
		subsetBoth:       "abcdefghijklmnopqrstuvwxyz",
	},
	upperCase: {
		subsetNone:       "",
		subsetVowels:     UpperVowels,
		subsetConsonants: UpperConsonants,
		subsetBoth:       "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	},
}

func (o Options) subset() letterSubset {
	switch {
	case o.IncludeVowels && o.IncludeConsonants:
		return subsetBoth
	case o.IncludeVowels:
		return subsetVowels
	case o.IncludeConsonants:
		return subsetConsonants
	default:
		return subsetNone
	}
}

// contribution is one ordered rule of the alphabet composition
type contribution struct {
	enabled func(o Options) bool
	symbols func(o Options) string
}

var contributions = []contribution{
	{
		enabled: func(o Options) bool { return !o.CaseSensitive || o.IncludeLower },
		symbols: func(o Options) string { return letterTables[lowerCase][o.subset()] },
	},
	{
		enabled: func(o Options) bool { return o.CaseSensitive && o.IncludeUpper },
		symbols: func(o Options) string { return letterTables[upperCase][o.subset()] },
	},
	{
		enabled: func(o Options) bool { return o.IncludeDigits },
		symbols: func(Options) string { return Digits },
	},
	{
		enabled: func(o Options) bool { return o.IncludePunctuation },
		symbols: func(Options) string { return Punctuation },
	},
}

// Alphabet is an immutable, ordered and deduplicated set of symbols.
type Alphabet struct {
	symbols string
}

// Build composes the alphabet selected by opts.
func Build(opts Options) (*Alphabet, error) {
	var sb strings.Builder
	for _, c := range contributions {
		if c.enabled(opts) {
			sb.WriteString(c.symbols(opts))
		}
	}
	a, err := New(sb.String())
	if err != nil {
		return nil, utils.ErrConfig.New("no symbol selected by alphabet options %+v", opts)
	}
	return a, nil
}

// New builds an alphabet from an explicit symbol list. Duplicates are dropped
// keeping the first occurrence. Only printable ASCII symbols are accepted.
func New(symbols string) (*Alphabet, error) {
	var seen [128]bool
	out := make([]byte, 0, len(symbols))
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c <= ' ' || c >= 0x7f {
			return nil, utils.ErrConfig.New("symbol %q is not a printable ASCII character", c)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, utils.ErrConfig.New("alphabet is empty")
	}
	return &Alphabet{symbols: string(out)}, nil
}

// Len returns the number of distinct symbols
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the i-th symbol
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Contains reports whether c is part of the alphabet
func (a *Alphabet) Contains(c byte) bool {
	return strings.IndexByte(a.symbols, c) >= 0
}

// String returns the symbols in insertion order
func (a *Alphabet) String() string {
	return a.symbols
}
