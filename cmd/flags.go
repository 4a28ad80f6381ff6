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

package cmd

import (
	"github.com/pingcap/pwgen/pkg/config"
	"github.com/spf13/pflag"
)

func addAlphabetFlags(fs *pflag.FlagSet, cfg *config.Config) {
	a := &cfg.Alphabet
	fs.BoolVar(&a.CaseSensitive, "case-sensitive", a.CaseSensitive, "Distinguish lower and upper case letters, otherwise only lower case letters are used")
	fs.BoolVar(&a.IncludeLower, "lower", a.IncludeLower, "Include lower case letters (with --case-sensitive)")
	fs.BoolVar(&a.IncludeUpper, "upper", a.IncludeUpper, "Include upper case letters (with --case-sensitive)")
	fs.BoolVar(&a.IncludeVowels, "vowels", a.IncludeVowels, "Include vowels in the letter groups")
	fs.BoolVar(&a.IncludeConsonants, "consonants", a.IncludeConsonants, "Include consonants in the letter groups")
	fs.BoolVar(&a.IncludeDigits, "digits", a.IncludeDigits, "Include digits (0-9)")
	fs.BoolVar(&a.IncludePunctuation, "punctuation", a.IncludePunctuation, "Include ASCII punctuation")
}

func addConstraintFlags(fs *pflag.FlagSet, cfg *config.Config) {
	c := &cfg.Constraints
	fs.IntVar(&c.PassMin, "pass-min", c.PassMin, "Minimum password length")
	fs.IntVar(&c.PassMax, "pass-max", c.PassMax, "Maximum password length, exclusive unless equal to --pass-min")
	fs.IntVar(&c.LettersMin, "letters-min", c.LettersMin, "Minimum number of letters")
	fs.IntVar(&c.LettersMax, "letters-max", c.LettersMax, "Maximum number of letters, only a lower bound when equal to --letters-min")
	fs.IntVar(&c.DigitsMin, "digits-min", c.DigitsMin, "Minimum number of digits")
	fs.IntVar(&c.DigitsMax, "digits-max", c.DigitsMax, "Maximum number of digits, only a lower bound when equal to --digits-min")
	fs.IntVar(&c.OthersMin, "others-min", c.OthersMin, "Minimum number of punctuation symbols")
	fs.IntVar(&c.OthersMax, "others-max", c.OthersMax, "Maximum number of punctuation symbols, only a lower bound when equal to --others-min")
	fs.BoolVar(&c.NoAdjacentRepeat, "no-adjacent-repeat", c.NoAdjacentRepeat, "Reject passwords with the same character twice in a row")
}

func addGeneratorFlags(fs *pflag.FlagSet, cfg *config.Config) {
	g := &cfg.Generator
	fs.IntVar(&g.MaxRetry, "max-retry", g.MaxRetry, "Maximum number of candidates drawn before giving up, 0 means 100")
	fs.IntVar(&g.SecondsInClipboard, "seconds-in-clipboard", g.SecondsInClipboard, "Seconds the password stays on the clipboard, 0 keeps it")
}

// changedFlags snapshots the values the user set on the command line
func changedFlags(fs *pflag.FlagSet) map[string]string {
	changed := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	return changed
}

// reapplyFlags sets the snapshot back so that flags win over file and env
func reapplyFlags(fs *pflag.FlagSet, changed map[string]string) error {
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
