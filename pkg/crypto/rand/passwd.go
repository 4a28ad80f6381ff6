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
	"github.com/pingcap/pwgen/pkg/utils"
	"github.com/sethvargo/go-password/password"
)

// charsets with some in similar shapes removed (e.g., O, o, I, l, etc.)
const (
	lowerLetters = "abcdefghijkmnpqrstuvwxyz"
	upperLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits       = "0123456789"
	symbols      = "@^*+-_"
)

// MinPasswordLength is the shortest password Password accepts
const MinPasswordLength = 8

// Composition selects the optional classes of a simple password, lower
// case letters are always used
type Composition struct {
	Upper   bool
	Digits  bool
	Symbols bool
}

// FullComposition enables every class
var FullComposition = Composition{Upper: true, Digits: true, Symbols: true}

// quota returns how many digits and symbols a password of length holds:
// 1/3 digits and 1/4 symbols when the class is enabled
func (c Composition) quota(length int) (numDigits, numSymbols int) {
	if c.Digits {
		numDigits = length / 3
	}
	if c.Symbols {
		numSymbols = length / 4
	}
	return numDigits, numSymbols
}

func (c Composition) letters() int {
	if c.Upper {
		return len(lowerLetters) + len(upperLetters)
	}
	return len(lowerLetters)
}

// Password generates a random password with a fixed composition, it does
// not go through the constraint checker
func Password(length int, c Composition) (string, error) {
	if length < MinPasswordLength {
		return "", utils.ErrConfig.New("password length must be at least %d, got %d", MinPasswordLength, length)
	}

	g, err := password.NewGenerator(&password.GeneratorInput{
		LowerLetters: lowerLetters,
		UpperLetters: upperLetters,
		Digits:       digits,
		Symbols:      symbols,
		Reader:       Reader,
	})
	if err != nil {
		return "", utils.ErrEntropy.Wrap(err, "init password generator")
	}

	numDigits, numSymbols := c.quota(length)
	numLetters := length - numDigits - numSymbols
	// repeats are only allowed once a class is longer than its charset
	allowRepeat := numDigits > len(digits) || numSymbols > len(symbols) || numLetters > c.letters()

	return g.Generate(length, numDigits, numSymbols, !c.Upper, allowRepeat)
}
