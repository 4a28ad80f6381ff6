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

package logprinter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Logger is a set of fuctions writing output to custom writters, but still
// using the global zap logger as our default config does not writes everything
// to a memory buffer.
type Logger struct {
	outputFmt DisplayMode //  output format of logger

	stdout io.Writer
	stderr io.Writer
}

// NewLogger creates a Logger with default settings
func NewLogger(m string) *Logger {
	return &Logger{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		outputFmt: ParseDisplayMode(m),
	}
}

// SetStdout redirect stdout to a custom writer
func (l *Logger) SetStdout(w io.Writer) {
	l.stdout = w
}

// SetStderr redirect stderr to a custom writer
func (l *Logger) SetStderr(w io.Writer) {
	l.stderr = w
}

// Stdout is the writer results are printed to
func (l *Logger) Stdout() io.Writer {
	return l.stdout
}

// Stderr is the writer diagnostics are printed to
func (l *Logger) Stderr() io.Writer {
	return l.stderr
}

// SetDisplayMode changes the output format of logger
func (l *Logger) SetDisplayMode(m DisplayMode) {
	l.outputFmt = m
}

// SetDisplayModeFromString changes the output format of logger
func (l *Logger) SetDisplayModeFromString(m string) {
	l.outputFmt = ParseDisplayMode(m)
}

// GetDisplayMode returns the current output format
func (l *Logger) GetDisplayMode() DisplayMode {
	return l.outputFmt
}

// Debugf output the debug message to console
func (l *Logger) Debugf(format string, args ...any) {
	zap.L().Debug(fmt.Sprintf(format, args...))
}

// Infof output the log message to console
func (l *Logger) Infof(format string, args ...any) {
	zap.L().Info(fmt.Sprintf(format, args...))
	printLog(l.stdout, l.outputFmt, "info", format, args...)
}

// Warnf output the warning message to console
func (l *Logger) Warnf(format string, args ...any) {
	zap.L().Warn(fmt.Sprintf(format, args...))
	printLog(l.stderr, l.outputFmt, "warn", format, args...)
}

// Errorf output the error message to console
func (l *Logger) Errorf(format string, args ...any) {
	zap.L().Error(fmt.Sprintf(format, args...))
	printLog(l.stderr, l.outputFmt, "error", format, args...)
}

// PrintJSON writes v as a single JSON line to stdout. It bypasses zap, so
// it is the way to print secrets.
func (l *Logger) PrintJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.stdout, string(data))
	return err
}
