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

	"github.com/pingcap/pwgen/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestNewInvalid(t *testing.T) {
	cases := []struct {
		name   string
		fields Fields
	}{
		{"negative pass_min", Fields{PassMin: -1, PassMax: 4}},
		{"pass_min above pass_max", Fields{PassMin: 9, PassMax: 8}},
		{"letters min above max", Fields{PassMin: 8, PassMax: 8, LettersMin: 5, LettersMax: 4}},
		{"digits min above max", Fields{PassMin: 8, PassMax: 8, DigitsMin: 3, DigitsMax: 2}},
		{"others min above max", Fields{PassMin: 8, PassMax: 8, OthersMin: 1}},
		{"negative digits_min", Fields{PassMin: 8, PassMax: 8, DigitsMin: -1, DigitsMax: 2}},
		{"letters max above pass_max", Fields{PassMin: 8, PassMax: 8, LettersMax: 9}},
		{"others max above pass_max", Fields{PassMin: 4, PassMax: 8, OthersMax: 12}},
		{"minimums exceed pass_max", Fields{PassMin: 8, PassMax: 8, LettersMin: 4, LettersMax: 8, DigitsMin: 4, DigitsMax: 8, OthersMin: 1, OthersMax: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.fields)
			require.Nil(t, s)
			require.Error(t, err)
			require.True(t, utils.IsConfigError(err))
		})
	}
}

func TestValidateBoundary(t *testing.T) {
	base := Fields{PassMin: 8, PassMax: 8}

	// every max may reach pass_max on its own
	f := base
	f.LettersMax, f.DigitsMax, f.OthersMax = 8, 8, 8
	require.NoError(t, f.Validate())

	f.LettersMax = 9
	require.True(t, utils.IsConfigError(f.Validate()))

	// the minimums must fit in pass_max together
	f = base
	f.LettersMin, f.LettersMax = 4, 8
	f.DigitsMin, f.DigitsMax = 4, 4
	require.NoError(t, f.Validate())

	f.OthersMin, f.OthersMax = 1, 1
	require.True(t, utils.IsConfigError(f.Validate()))
}

func TestNewFixedLength(t *testing.T) {
	s, err := New(Fields{PassMin: 8, PassMax: 8, LettersMin: 4, LettersMax: 8, DigitsMin: 4, DigitsMax: 4, NoAdjacentRepeat: true})
	require.NoError(t, err)
	require.Equal(t, 8, s.TargetLength())
	require.True(t, s.Fields().NoAdjacentRepeat)

	s, err = New(Fields{})
	require.NoError(t, err)
	require.Equal(t, 0, s.TargetLength())
}

func TestNewTargetLengthHalfOpen(t *testing.T) {
	f := Fields{PassMin: 4, PassMax: 7, LettersMax: 7, DigitsMax: 7, OthersMax: 7}
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		s, err := New(f)
		require.NoError(t, err)
		l := s.TargetLength()
		require.GreaterOrEqual(t, l, f.PassMin)
		require.Less(t, l, f.PassMax)
		seen[l] = true
	}
	require.Equal(t, map[int]bool{4: true, 5: true, 6: true}, seen)
}

func TestTargetLengthFixedForSpecLifetime(t *testing.T) {
	s, err := New(Fields{PassMin: 1, PassMax: 64, LettersMax: 64})
	require.NoError(t, err)
	l := s.TargetLength()
	for i := 0; i < 10; i++ {
		require.Equal(t, l, s.TargetLength())
	}
}

func TestBoundsAdmits(t *testing.T) {
	b := Bounds{Min: 2, Max: 4}
	require.False(t, b.Admits(1))
	require.True(t, b.Admits(2))
	require.True(t, b.Admits(4))
	require.False(t, b.Admits(5))

	// equal bounds only enforce the lower bound
	b = Bounds{Min: 3, Max: 3}
	require.False(t, b.Admits(2))
	require.True(t, b.Admits(3))
	require.True(t, b.Admits(10))

	b = Bounds{}
	require.True(t, b.Admits(0))
	require.True(t, b.Admits(5))
}
