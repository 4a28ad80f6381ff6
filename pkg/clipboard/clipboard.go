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

package clipboard

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	perrs "github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Sink is a clipboard-like store holding a single text value
type Sink interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the clipboard of the running desktop session
type System struct{}

// WriteAll implements Sink
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ReadAll implements Sink
func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Supported reports whether a system clipboard utility was found
func Supported() bool {
	return !clipboard.Unsupported
}

// pollInterval is how often the sink is read while holding a value
var pollInterval = 200 * time.Millisecond

// Outcome tells how Hold finished
type Outcome int

// outcomes of Hold
const (
	// Expired means the ttl elapsed and the sink was cleared
	Expired Outcome = iota
	// Replaced means something else was copied, the sink was left untouched
	Replaced
	// Interrupted means ctx was done and the sink was cleared
	Interrupted
)

// Hold puts text on sink and keeps it there for ttl. The sink is cleared when
// ttl elapses or ctx is done, unless its content was replaced meanwhile.
func Hold(ctx context.Context, sink Sink, text string, ttl time.Duration) (Outcome, error) {
	if err := sink.WriteAll(text); err != nil {
		return Expired, perrs.Annotate(err, "copy to clipboard")
	}

	timer := time.NewTimer(ttl)
	defer timer.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Interrupted, wipe(sink, text)
		case <-timer.C:
			return Expired, wipe(sink, text)
		case <-ticker.C:
			current, err := sink.ReadAll()
			if err != nil {
				zap.L().Debug("Read clipboard failed", zap.Error(err))
				continue
			}
			if current != text {
				return Replaced, nil
			}
		}
	}
}

// wipe empties sink if it still holds text
func wipe(sink Sink, text string) error {
	current, err := sink.ReadAll()
	if err == nil && current != text {
		return nil
	}
	return perrs.Annotate(sink.WriteAll(""), "clear clipboard")
}
