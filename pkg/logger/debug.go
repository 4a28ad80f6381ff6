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

package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pingcap/pwgen/pkg/localdata"
	"github.com/pingcap/pwgen/pkg/tui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debugMu     sync.Mutex
	debugBuffer = new(bytes.Buffer)
)

type lockedBuffer struct{}

func (lockedBuffer) Write(p []byte) (int, error) {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugBuffer.Write(p)
}

func newDebugLogCore() zapcore.Core {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zapcore.NewCore(encoder, zapcore.AddSync(lockedBuffer{}), zapcore.DebugLevel)
}

// DebugLog returns a copy of the buffered debug log
func DebugLog() []byte {
	debugMu.Lock()
	defer debugMu.Unlock()
	return append([]byte(nil), debugBuffer.Bytes()...)
}

// OutputDebugLog writes the buffered debug log to PWGEN_LOG_PATH, or to the
// logs directory of the profile, and returns the file written.
func OutputDebugLog(prefix string) string {
	logDir := os.Getenv(localdata.EnvNameLogPath)
	if logDir == "" {
		logDir = localdata.InitProfile().Path(localdata.LogParentDir)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "\nCreate debug logs(%s) directory failed %v.\n", logDir, err)
		return ""
	}

	// FIXME: Stupid go does not allow writing fraction seconds without a leading dot.
	fileName := time.Now().Format(fmt.Sprintf("%s-debug-2006-01-02-15-04-05.log", prefix))
	filePath := filepath.Join(logDir, fileName)

	debugMu.Lock()
	defer debugMu.Unlock()
	err := os.WriteFile(filePath, debugBuffer.Bytes(), 0600)
	if err != nil {
		_, _ = tui.ColorWarningMsg.Fprint(os.Stderr, "\nWarn: Failed to write error debug log.\n")
		return ""
	}
	_, _ = fmt.Fprintf(os.Stderr, "\nVerbose debug logs has been written to %s.\n", tui.ColorKeyword.Sprint(filePath))
	debugBuffer.Reset()
	return filePath
}
