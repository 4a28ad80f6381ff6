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
	"context"
	"fmt"
	"time"

	"github.com/pingcap/pwgen/pkg/alphabet"
	"github.com/pingcap/pwgen/pkg/clipboard"
	"github.com/pingcap/pwgen/pkg/generator"
	logprinter "github.com/pingcap/pwgen/pkg/logger/printer"
	"github.com/pingcap/pwgen/pkg/tui"
	"github.com/pingcap/pwgen/pkg/utils"
)

type generateOptions struct {
	clipboard bool
	symbols   string
}

// generateResult is the JSON form of a generated password
type generateResult struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Attempts int    `json:"attempts"`
	Valid    bool   `json:"valid"`
}

// clipboardSink is replaced in tests
var clipboardSink clipboard.Sink = clipboard.System{}

var clipboardSupported = clipboard.Supported

func (a *app) buildAlphabet(symbols string) (*alphabet.Alphabet, error) {
	if symbols != "" {
		return alphabet.New(symbols)
	}
	return alphabet.Build(a.cfg.Alphabet)
}

func (a *app) generate(ctx context.Context, opt *generateOptions) error {
	ab, err := a.buildAlphabet(opt.symbols)
	if err != nil {
		return err
	}
	g, err := generator.New(a.cfg.Generator, a.cfg.Constraints, ab)
	if err != nil {
		return err
	}

	password, valid, err := g.Generate()
	if err != nil {
		return err
	}
	a.log.Verbose("Drew %d candidate(s) of length %d from %d symbols", g.Attempts(), g.Spec().TargetLength(), ab.Len())
	if !valid {
		return utils.ErrRetriesExhausted.
			New("No password of length %d satisfied the constraints after %d attempts", g.Spec().TargetLength(), g.Attempts()).
			WithProperty(tui.SuggestionFromFormat(
				"Relax the category bounds, widen the alphabet or raise %s.",
				tui.ColorKeyword.Sprint("--max-retry")))
	}

	if a.log.GetDisplayMode() == logprinter.DisplayModeJSON {
		return a.log.PrintJSON(generateResult{
			Password: password,
			Length:   len(password),
			Attempts: g.Attempts(),
			Valid:    valid,
		})
	}
	if opt.clipboard {
		return a.deliverToClipboard(ctx, password, g.Options().SecondsInClipboard)
	}
	_, err = fmt.Fprintln(a.log.Stdout(), password)
	return err
}

func (a *app) deliverToClipboard(ctx context.Context, password string, seconds int) error {
	if !clipboardSupported() {
		a.log.Warnf("No clipboard utility found, printing the password instead")
		_, err := fmt.Fprintln(a.log.Stdout(), password)
		return err
	}

	if seconds == 0 {
		if err := clipboardSink.WriteAll(password); err != nil {
			return err
		}
		a.log.Infof("Password generated and copied to clipboard")
		return nil
	}

	a.log.Infof("Password generated and copied to clipboard, it will be cleared in %d seconds", seconds)
	outcome, err := clipboard.Hold(ctx, clipboardSink, password, time.Duration(seconds)*time.Second)
	if err != nil {
		return err
	}
	switch outcome {
	case clipboard.Replaced:
		a.log.Infof("Clipboard content changed, left untouched")
	default:
		a.log.Infof("Clipboard cleared")
	}
	return nil
}
