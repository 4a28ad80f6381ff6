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

package constraint

import (
	"github.com/pingcap/pwgen/pkg/crypto/rand"
	"github.com/pingcap/pwgen/pkg/utils"
)

// Fields are the raw quantitative rules a password must satisfy.
type Fields struct {
	PassMin          int  `toml:"pass_min" default:"16"`
	PassMax          int  `toml:"pass_max" default:"16"`
	LettersMin       int  `toml:"letters_min" default:"4"`
	LettersMax       int  `toml:"letters_max" default:"16"`
	DigitsMin        int  `toml:"digits_min" default:"2"`
	DigitsMax        int  `toml:"digits_max" default:"16"`
	OthersMin        int  `toml:"others_min"`
	OthersMax        int  `toml:"others_max" default:"16"`
	NoAdjacentRepeat bool `toml:"no_adjacent_repeat" default:"true"`
}

// Category is one of the quota classes a symbol is counted in
type Category string

// categories
const (
	CategoryLetters Category = "letters"
	CategoryDigits  Category = "digits"
	CategoryOthers  Category = "others"
)

// Bounds is the [Min, Max] quota of a category. When Min == Max the quota
// is a lower bound only.
type Bounds struct {
	Min int
	Max int
}

// Admits reports whether n falls in the bounds.
func (b Bounds) Admits(n int) bool {
	if b.Min == b.Max {
		return n >= b.Min
	}
	return n >= b.Min && n <= b.Max
}

// Bounds returns the quota of category c
func (f Fields) Bounds(c Category) Bounds {
	switch c {
	case CategoryLetters:
		return Bounds{Min: f.LettersMin, Max: f.LettersMax}
	case CategoryDigits:
		return Bounds{Min: f.DigitsMin, Max: f.DigitsMax}
	default:
		return Bounds{Min: f.OthersMin, Max: f.OthersMax}
	}
}

// Categories lists every quota category in evaluation order
var Categories = []Category{CategoryDigits, CategoryLetters, CategoryOthers}

// Spec is a validated, immutable set of constraints with its target length
// fixed at construction.
type Spec struct {
	fields       Fields
	targetLength int
}

// New validates f and draws the target length. When PassMin != PassMax the
// length is drawn uniformly from [PassMin, PassMax).
func New(f Fields) (*Spec, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	length := f.PassMin
	if f.PassMin != f.PassMax {
		n, err := rand.Intn(f.PassMax - f.PassMin)
		if err != nil {
			return nil, err
		}
		length += n
	}
	return &Spec{fields: f, targetLength: length}, nil
}

// Validate checks the internal consistency of the bounds
func (f Fields) Validate() error {
	if f.PassMin < 0 || f.PassMin > f.PassMax {
		return utils.ErrConfig.New("values must meet: 0 <= pass_min (%d) <= pass_max (%d)", f.PassMin, f.PassMax)
	}

	sumMin := 0
	for _, c := range Categories {
		b := f.Bounds(c)
		if b.Min < 0 || b.Min > b.Max {
			return utils.ErrConfig.New("values must meet: 0 <= %[1]s_min (%[2]d) <= %[1]s_max (%[3]d)", c, b.Min, b.Max)
		}
		if b.Max > f.PassMax {
			return utils.ErrConfig.New("%s_max (%d) exceeds pass_max (%d)", c, b.Max, f.PassMax)
		}
		sumMin += b.Min
	}
	if sumMin > f.PassMax {
		return utils.ErrConfig.New("sum of category minimums (%d) exceeds pass_max (%d)", sumMin, f.PassMax)
	}
	return nil
}

// TargetLength is the length every candidate drawn for this spec has
func (s *Spec) TargetLength() int {
	return s.targetLength
}

// Fields returns the validated fields
func (s *Spec) Fields() Fields {
	return s.fields
}
