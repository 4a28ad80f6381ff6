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
	cr "crypto/rand"
	"io"
	"math/big"

	"github.com/pingcap/pwgen/pkg/utils"
)

var (
	// Reader is the global secure random source, safe for concurrent use
	Reader io.Reader = cr.Reader
)

// Intn returns a uniform random int in [0, n) drawn from Reader
func Intn(n int) (int, error) {
	return IntnFrom(Reader, n)
}

// IntnFrom returns a uniform random int in [0, n) drawn from r
func IntnFrom(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, utils.ErrEntropy.New("invalid upper bound %d", n)
	}
	v, err := cr.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, utils.ErrEntropy.Wrap(err, "read random source")
	}
	return int(v.Int64()), nil
}
