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
	"os"
	"strconv"
	"unicode"

	"github.com/pingcap/pwgen/pkg/alphabet"
	"github.com/pingcap/pwgen/pkg/constraint"
	logprinter "github.com/pingcap/pwgen/pkg/logger/printer"
	"github.com/pingcap/pwgen/pkg/tui"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	var symbols string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a password read from stdin against the constraints",
		Long: `Read one password from stdin (without echo on a terminal) and evaluate
every constraint on it. The command fails when any rule is not satisfied.`,
		Example: `  echo 'AB12CD34' | pwgen check --pass-min 8 --pass-max 8 --digits-min 4 --digits-max 4
  echo 'abcabc' | pwgen check --symbols abc --pass-min 6 --pass-max 6 --letters-max 6`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var candidate string
			var err error
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				candidate, err = tui.ReadSecret(f, cmd.ErrOrStderr(), "Password: ")
			} else {
				candidate, err = tui.ReadLine(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			return a.check(candidate, symbols)
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "Report characters outside exactly these symbols instead of the configured alphabet")
	return cmd
}

func (a *app) check(candidate, symbols string) error {
	ab, err := a.buildAlphabet(symbols)
	if err != nil {
		return err
	}
	spec, err := constraint.New(a.cfg.Constraints)
	if err != nil {
		return err
	}
	report := constraint.Check(candidate, spec)
	outside := outsideAlphabet(ab, candidate)

	if a.log.GetDisplayMode() == logprinter.DisplayModeJSON {
		obj := struct {
			constraint.Report
			Length          int  `json:"length"`
			OutsideAlphabet int  `json:"outside_alphabet"`
			Valid           bool `json:"valid"`
		}{
			Report:          report,
			Length:          len(candidate),
			OutsideAlphabet: outside,
			Valid:           report.Valid(),
		}
		if err := a.log.PrintJSON(obj); err != nil {
			return err
		}
	} else {
		tui.PrintTable(a.log.Stdout(), reportRows(report, spec.Fields()), true)
		if outside > 0 {
			a.log.Warnf("%d character(s) are not part of the alphabet %q", outside, ab.String())
		}
	}

	if !report.Valid() {
		return errCheckFailed.New("Password does not satisfy: %v", report.Failed())
	}
	return nil
}

// outsideAlphabet counts the characters of candidate that ab cannot produce
func outsideAlphabet(ab *alphabet.Alphabet, candidate string) int {
	n := 0
	for _, r := range candidate {
		if r > unicode.MaxASCII || !ab.Contains(byte(r)) {
			n++
		}
	}
	return n
}

func reportRows(report constraint.Report, f constraint.Fields) [][]string {
	rows := [][]string{{"Rule", "Count", "Min", "Max", "Result"}}
	for _, v := range report.Verdicts {
		if v.Rule == constraint.RuleNoAdjacentRepeat {
			state := "off"
			if f.NoAdjacentRepeat {
				state = "on"
			}
			rows = append(rows, []string{string(v.Rule), state, "-", "-", tui.Verdict(v.Passed)})
			continue
		}
		cat := constraint.Category(v.Rule)
		b := f.Bounds(cat)
		maxCell := strconv.Itoa(b.Max)
		if b.Min == b.Max {
			maxCell = "-"
		}
		rows = append(rows, []string{
			string(v.Rule),
			strconv.Itoa(report.Counts.Of(cat)),
			strconv.Itoa(b.Min),
			maxCell,
			tui.Verdict(v.Passed),
		})
	}
	return rows
}
