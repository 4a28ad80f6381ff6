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

package tui

// A set of predefined color palettes. You should only reference a color in this palette so that a color
// change can take effect globally.

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// ColorErrorMsg is the ansi color formatter for error messages
	ColorErrorMsg = color.New(color.FgHiRed)
	// ColorSuccessMsg is the ansi color formatter for success messages
	ColorSuccessMsg = color.New(color.FgHiGreen)
	// ColorWarningMsg is the ansi color formatter for warning messages
	ColorWarningMsg = color.New(color.FgHiYellow)
	// ColorCommand is the ansi color formatter for commands
	ColorCommand = color.New(color.FgHiBlue, color.Bold)
	// ColorKeyword is the ansi color formatter for option names and paths
	ColorKeyword = color.New(color.FgHiBlue, color.Bold)
)

// Verdict renders a pass/fail cell
func Verdict(passed bool) string {
	if passed {
		return ColorSuccessMsg.Sprint("pass")
	}
	return ColorErrorMsg.Sprint("fail")
}

// colorSeq extracts the escape sequence c starts its output with, or "" when
// colors are disabled
func colorSeq(c *color.Color, reset bool) string {
	const sep = "----"
	seq := c.Sprint(sep)
	if len(seq) == len(sep) {
		return ""
	}
	parts := strings.Split(seq, sep)
	if reset {
		return parts[1]
	}
	return parts[0]
}

// AddColorFunctionsForCobra adds colorize functions to cobra, so that they can be used in usage or help.
func AddColorFunctionsForCobra() {
	cobra.AddTemplateFunc("ColorCommand", func() string { return colorSeq(ColorCommand, false) })
	cobra.AddTemplateFunc("ColorKeyword", func() string { return colorSeq(ColorKeyword, false) })
	cobra.AddTemplateFunc("ColorReset", func() string { return colorSeq(color.New(color.FgWhite), true) })
}
