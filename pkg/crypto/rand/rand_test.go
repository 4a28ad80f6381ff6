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

package rand

import (
	"bytes"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/pingcap/pwgen/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestIntnRange(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v, err := Intn(10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
		seen[v] = true
	}
	// every value shows up with overwhelming probability
	require.Len(t, seen, 10)
}

func TestIntnFromExhaustedReader(t *testing.T) {
	_, err := IntnFrom(bytes.NewReader(nil), 10)
	require.Error(t, err)
	require.True(t, errorx.IsOfType(err, utils.ErrEntropy))
}

func TestIntnInvalidBound(t *testing.T) {
	_, err := Intn(0)
	require.Error(t, err)
	_, err = Intn(-3)
	require.Error(t, err)
}
