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

package utils

import (
	"errors"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func TestConfigErrorTraits(t *testing.T) {
	err := ErrConfig.New("pass_min (%d) > pass_max (%d)", 9, 8)
	require.True(t, IsConfigError(err))
	require.True(t, errorx.HasTrait(err, ErrTraitPreCheck))
	require.Contains(t, err.Error(), "pass_min (9) > pass_max (8)")

	// wrapped config errors keep their type
	wrapped := ErrConfig.Wrap(errors.New("bad int"), "PWGEN_PASS_MIN")
	require.True(t, IsConfigError(wrapped))

	require.False(t, IsConfigError(errors.New("plain")))
	require.False(t, IsConfigError(ErrEntropy.New("short read")))
	require.False(t, errorx.HasTrait(ErrEntropy.New("short read"), ErrTraitPreCheck))
}

func TestSuggestionProperty(t *testing.T) {
	err := ErrRetriesExhausted.New("no valid password").
		WithProperty(ErrPropSuggestion, "raise --max-retry")
	v, ok := err.Property(ErrPropSuggestion)
	require.True(t, ok)
	require.Equal(t, "raise --max-retry", v)
}
