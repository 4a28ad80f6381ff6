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
	"strings"
)

// DisplayMode control the output format
type DisplayMode int

// display modes
const (
	DisplayModeDefault DisplayMode = iota // default is the interactive output
	DisplayModePlain                      // plain text
	DisplayModeJSON                       // JSON
)

// ParseDisplayMode converts a --format value to a DisplayMode
func ParseDisplayMode(m string) DisplayMode {
	var dp DisplayMode
	switch strings.ToLower(m) {
	case "json":
		dp = DisplayModeJSON
	case "plain", "text":
		dp = DisplayModePlain
	default:
		dp = DisplayModeDefault
	}
	return dp
}

// String implements fmt.Stringer
func (m DisplayMode) String() string {
	switch m {
	case DisplayModeJSON:
		return "json"
	case DisplayModePlain:
		return "plain"
	default:
		return "default"
	}
}

func printLog(w io.Writer, mode DisplayMode, level, format string, args ...any) {
	switch mode {
	case DisplayModeJSON:
		obj := struct {
			Level string `json:"level"`
			Msg   string `json:"message"`
		}{
			Level: level,
			Msg:   fmt.Sprintf(format, args...),
		}
		data, err := json.Marshal(obj)
		if err != nil {
			_, _ = fmt.Fprintf(w, "{\"error\":\"%s\"}", err)
			return
		}
		_, _ = fmt.Fprint(w, string(data)+"\n")
	default:
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}
}
