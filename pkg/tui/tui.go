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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AstroProfundis/tabby"
	"github.com/juju/ansiterm"
	"golang.org/x/term"
)

// PrintTable accepts a matrix of strings and print them as ASCII table to w
func PrintTable(w io.Writer, rows [][]string, header bool) {
	if len(rows) == 0 {
		return
	}
	t := tabby.NewCustom(ansiterm.NewTabWriter(w, 0, 0, 2, ' ', 0))
	if header {
		addRow(t, rows[0], header)
		rows = rows[1:]
	}
	for _, row := range rows {
		addRow(t, row, false)
	}
	t.Print()
}

func addRow(t *tabby.Tabby, rawLine []string, header bool) {
	// Convert []string to []interface{}
	row := make([]any, len(rawLine))
	for i, v := range rawLine {
		row[i] = v
	}

	// Add line to the table
	if header {
		t.AddHeader(row...)
	} else {
		t.AddLine(row...)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadSecret reads one line from in without echo when in is a terminal,
// otherwise the first line of in is returned as is.
func ReadSecret(in *os.File, prompt io.Writer, format string, a ...any) (string, error) {
	if !IsTerminal(in) {
		return ReadLine(in)
	}

	defer fmt.Fprintln(prompt, "")
	fmt.Fprintf(prompt, format, a...)
	input, err := term.ReadPassword(int(in.Fd()))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(input), "\r\n"), nil
}

// ReadLine reads a single line from r without its line terminator
func ReadLine(r io.Reader) (string, error) {
	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
