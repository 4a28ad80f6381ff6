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
	"fmt"

	"github.com/pingcap/pwgen/pkg/crypto/rand"
	logprinter "github.com/pingcap/pwgen/pkg/logger/printer"
	"github.com/spf13/cobra"
)

func (a *app) newSimpleCmd() *cobra.Command {
	length := 16
	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Generate a password with a fixed composition",
		Long: `Generate a password where 1/3 of the characters are digits and 1/4 are
symbols, with look-alike characters removed. No constraint is checked.

Upper case letters, digits and symbols follow the alphabet switches
(--case-sensitive --upper, --digits, --punctuation).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ab := a.cfg.Alphabet
			password, err := rand.Password(length, rand.Composition{
				Upper:   ab.CaseSensitive && ab.IncludeUpper,
				Digits:  ab.IncludeDigits,
				Symbols: ab.IncludePunctuation,
			})
			if err != nil {
				return err
			}
			if a.log.GetDisplayMode() == logprinter.DisplayModeJSON {
				return a.log.PrintJSON(generateResult{
					Password: password,
					Length:   len(password),
					Attempts: 1,
					Valid:    true,
				})
			}
			_, err = fmt.Fprintln(a.log.Stdout(), password)
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", length, fmt.Sprintf("Password length, at least %d", rand.MinPasswordLength))
	return cmd
}
