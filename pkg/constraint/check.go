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
	"unicode"
)

// Counts is the per-category tally of a candidate.
type Counts struct {
	Letters int `json:"letters"`
	Lower   int `json:"lower"`
	Upper   int `json:"upper"`
	Digits  int `json:"digits"`
	Others  int `json:"others"`
}

// Of returns the count of category c
func (c Counts) Of(cat Category) int {
	switch cat {
	case CategoryLetters:
		return c.Letters
	case CategoryDigits:
		return c.Digits
	default:
		return c.Others
	}
}

// Count classifies every character of candidate. A letter is never counted
// as a digit or other; whitespace is counted in no category.
func Count(candidate string) Counts {
	var c Counts
	for _, r := range candidate {
		switch {
		case unicode.IsLetter(r):
			c.Letters++
			if unicode.IsLower(r) {
				c.Lower++
			}
			if unicode.IsUpper(r) {
				c.Upper++
			}
		case isDigit(r):
			c.Digits++
		case !unicode.IsNumber(r) && !unicode.IsSpace(r):
			c.Others++
		}
	}
	return c
}

// digitValued holds the digits outside category Nd, such as superscripts
// and circled digits
var digitValued = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isDigit reports whether r has a digit value. Fractions and roman
// numerals are numbers but not digits.
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitValued, r)
}

// Rule names a single check
type Rule string

// rules in evaluation order
const (
	RuleNoAdjacentRepeat Rule = "no_adjacent_repeat"
	RuleDigits           Rule = "digits"
	RuleLetters          Rule = "letters"
	RuleOthers           Rule = "others"
)

// Verdict is the outcome of one rule
type Verdict struct {
	Rule   Rule `json:"rule"`
	Passed bool `json:"passed"`
}

// Report is the result of checking a candidate
type Report struct {
	Counts   Counts    `json:"counts"`
	Verdicts []Verdict `json:"verdicts"`
}

// Valid is true when every verdict passed
func (r Report) Valid() bool {
	for _, v := range r.Verdicts {
		if !v.Passed {
			return false
		}
	}
	return true
}

// Failed returns the names of the rules that did not pass
func (r Report) Failed() []string {
	var failed []string
	for _, v := range r.Verdicts {
		if !v.Passed {
			failed = append(failed, string(v.Rule))
		}
	}
	return failed
}

// Check evaluates candidate against every rule of s. It has no side effects.
func Check(candidate string, s *Spec) Report {
	counts := Count(candidate)
	f := s.fields

	noRepeat := true
	if f.NoAdjacentRepeat {
		noRepeat = !hasAdjacentRepeat(candidate)
	}

	return Report{
		Counts: counts,
		Verdicts: []Verdict{
			{Rule: RuleNoAdjacentRepeat, Passed: noRepeat},
			{Rule: RuleDigits, Passed: f.Bounds(CategoryDigits).Admits(counts.Digits)},
			{Rule: RuleLetters, Passed: f.Bounds(CategoryLetters).Admits(counts.Letters)},
			{Rule: RuleOthers, Passed: f.Bounds(CategoryOthers).Admits(counts.Others)},
		},
	}
}

func hasAdjacentRepeat(s string) bool {
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}
	return false
}
