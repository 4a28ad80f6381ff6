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

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pingcap/pwgen/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, [][]string{
		{"Rule", "Count", "Result"},
		{"digits", "4", "pass"},
		{"letters", "12", "fail"},
	}, true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Contains(t, lines[0], "Rule")
	require.Contains(t, buf.String(), "letters")
	require.Contains(t, buf.String(), "12")

	// columns are aligned across rows
	var digits, letters string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "digits"):
			digits = l
		case strings.HasPrefix(l, "letters"):
			letters = l
		}
	}
	require.Equal(t, strings.Index(letters, "12"), strings.Index(digits, "4"))
	require.Equal(t, strings.Index(letters, "fail"), strings.Index(digits, "pass"))

	buf.Reset()
	PrintTable(&buf, nil, true)
	require.Empty(t, buf.String())
}

func TestReadLine(t *testing.T) {
	s, err := ReadLine(strings.NewReader("abc123\r\nnext line\n"))
	require.NoError(t, err)
	require.Equal(t, "abc123", s)

	s, err = ReadLine(strings.NewReader("no newline"))
	require.NoError(t, err)
	require.Equal(t, "no newline", s)

	s, err = ReadLine(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, s)
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "boom\n", FormatError(errors.New("boom")))

	err := utils.ErrConfig.Wrap(errors.New("strconv.Atoi: parsing \"x\": invalid syntax"), "invalid integer in PWGEN_PASS_MIN")
	msg := FormatError(err)
	require.Contains(t, msg, "invalid integer in PWGEN_PASS_MIN (pwgen.config)")
	require.Contains(t, msg, "  caused by: strconv.Atoi")
}

func TestExtractSuggestion(t *testing.T) {
	err := utils.ErrRetriesExhausted.New("no valid password").
		WithProperty(SuggestionFromFormat("raise %s", "--max-retry"))
	require.Equal(t, "raise --max-retry", ExtractSuggestion(err))

	wrapped := utils.ErrConfig.Wrap(err, "outer")
	require.Equal(t, "raise --max-retry", ExtractSuggestion(wrapped))

	require.Empty(t, ExtractSuggestion(errors.New("plain")))
}

func TestVerdict(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	require.Equal(t, "pass", Verdict(true))
	require.Equal(t, "fail", Verdict(false))
}
