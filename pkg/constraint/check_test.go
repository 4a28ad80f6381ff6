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
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSpec(t *testing.T, f Fields) *Spec {
	t.Helper()
	s, err := New(f)
	require.NoError(t, err)
	return s
}

func verdict(r Report, rule Rule) bool {
	for _, v := range r.Verdicts {
		if v.Rule == rule {
			return v.Passed
		}
	}
	panic("no verdict for " + rule)
}

func TestCount(t *testing.T) {
	require.Equal(t, Counts{}, Count(""))
	require.Equal(t, Counts{Letters: 4, Lower: 2, Upper: 2, Digits: 3, Others: 2}, Count("aB3!c9D0#"))
	// whitespace is in no category
	require.Equal(t, Counts{Letters: 1, Lower: 1, Digits: 1}, Count("a \t1\n"))
	require.Equal(t, Counts{Others: 32}, Count(`!"#$%&'()*+,-./:;<=>?@[\]^_`+"`{|}~"))
	// superscript and circled digits count as digits, fractions in no category
	require.Equal(t, Counts{Letters: 1, Lower: 1, Digits: 4}, Count("a²¹①٣½Ⅻ"))
}

func TestCheckNoAdjacentRepeat(t *testing.T) {
	on := mustSpec(t, Fields{PassMax: 8, LettersMax: 8, NoAdjacentRepeat: true})
	off := mustSpec(t, Fields{PassMax: 8, LettersMax: 8})

	for _, s := range []string{"aa", "aaaa", "zzzzzzzz", "77", "!!!"} {
		require.False(t, verdict(Check(s, on), RuleNoAdjacentRepeat), s)
		require.True(t, verdict(Check(s, off), RuleNoAdjacentRepeat), s)
	}
	for _, s := range []string{"", "a", "ab", "aba", "a1a1a1"} {
		require.True(t, verdict(Check(s, on), RuleNoAdjacentRepeat), s)
	}
	require.False(t, verdict(Check("abcdd", on), RuleNoAdjacentRepeat))
}

func TestCheckTieBreak(t *testing.T) {
	s := mustSpec(t, Fields{PassMin: 8, PassMax: 8, LettersMax: 8, DigitsMin: 3, DigitsMax: 3})

	require.False(t, verdict(Check("ab12cdef", s), RuleDigits))
	require.True(t, verdict(Check("ab123def", s), RuleDigits))
	require.True(t, verdict(Check("ab1234ef", s), RuleDigits))
	require.True(t, verdict(Check("12345678", s), RuleDigits))
}

func TestCheckRanges(t *testing.T) {
	s := mustSpec(t, Fields{PassMin: 8, PassMax: 8, LettersMin: 2, LettersMax: 4, DigitsMin: 1, DigitsMax: 3, OthersMin: 1, OthersMax: 2})

	cases := []struct {
		candidate string
		digits    bool
		letters   bool
		others    bool
	}{
		{"ab1!cd2#", true, true, true},
		{"abcde1!#", true, false, true},
		{"a1!#$%^&", true, false, false},
		{"ab!!cd##", false, true, false},
		{"ab1234!#", false, true, true},
	}
	for _, tc := range cases {
		r := Check(tc.candidate, s)
		require.Equal(t, tc.digits, verdict(r, RuleDigits), tc.candidate)
		require.Equal(t, tc.letters, verdict(r, RuleLetters), tc.candidate)
		require.Equal(t, tc.others, verdict(r, RuleOthers), tc.candidate)
		require.Equal(t, tc.digits && tc.letters && tc.others, r.Valid(), tc.candidate)
	}
}

func TestCheckEmptyCandidate(t *testing.T) {
	s := mustSpec(t, Fields{NoAdjacentRepeat: true})
	r := Check("", s)
	require.True(t, r.Valid())
	require.Len(t, r.Verdicts, 4)
	require.Empty(t, r.Failed())
}

func TestCheckDeterministic(t *testing.T) {
	s := mustSpec(t, Fields{PassMin: 6, PassMax: 6, LettersMin: 1, LettersMax: 6, DigitsMin: 1, DigitsMax: 6, NoAdjacentRepeat: true})
	for _, c := range []string{"a1b2c3", "aa1122", "!!!!!!", ""} {
		first := Check(c, s)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Check(c, s))
		}
	}
}

func TestReportFailed(t *testing.T) {
	s := mustSpec(t, Fields{PassMin: 4, PassMax: 4, LettersMin: 2, LettersMax: 4, DigitsMin: 1, DigitsMax: 4, NoAdjacentRepeat: true})
	r := Check("aa!!", s)
	require.False(t, r.Valid())
	require.Equal(t, []string{"no_adjacent_repeat", "digits"}, r.Failed())
	require.Equal(t, 2, r.Counts.Of(CategoryLetters))
	require.Equal(t, 0, r.Counts.Of(CategoryDigits))
	require.Equal(t, 2, r.Counts.Of(CategoryOthers))
}
