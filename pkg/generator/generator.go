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

package generator

import (
	"io"

	"github.com/pingcap/pwgen/pkg/alphabet"
	"github.com/pingcap/pwgen/pkg/constraint"
	"github.com/pingcap/pwgen/pkg/crypto/rand"
	"github.com/pingcap/pwgen/pkg/utils"
	"go.uber.org/zap"
)

// DefaultMaxRetry is the retry budget used when none is configured
const DefaultMaxRetry = 100

// Options controls the generation loop
type Options struct {
	MaxRetry int `toml:"max_retry" default:"100"`
	// SecondsInClipboard is only consumed by the delivery layer
	SecondsInClipboard int `toml:"seconds_in_clipboard" default:"10"`
}

// Option customizes a Generator
type Option func(g *Generator)

// WithReader replaces the secure random source, r must be safe to read
// from the calling goroutine
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		g.reader = r
	}
}

// Generator draws candidates from an alphabet until one satisfies its spec.
// A Generator is not safe for concurrent use, create one per goroutine.
type Generator struct {
	opts     Options
	spec     *constraint.Spec
	alphabet *alphabet.Alphabet
	reader   io.Reader

	password string
	valid    bool
	attempts int
}

// New validates opts and fields and returns a Generator over ab. A zero
// MaxRetry means DefaultMaxRetry.
func New(opts Options, fields constraint.Fields, ab *alphabet.Alphabet, options ...Option) (*Generator, error) {
	if opts.MaxRetry < 0 {
		return nil, utils.ErrConfig.New("max_retry must not be negative, got %d", opts.MaxRetry)
	}
	if opts.MaxRetry == 0 {
		opts.MaxRetry = DefaultMaxRetry
	}
	if opts.SecondsInClipboard < 0 {
		return nil, utils.ErrConfig.New("seconds_in_clipboard must not be negative, got %d", opts.SecondsInClipboard)
	}
	if ab == nil || ab.Len() == 0 {
		return nil, utils.ErrConfig.New("alphabet is empty")
	}
	spec, err := constraint.New(fields)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		opts:     opts,
		spec:     spec,
		alphabet: ab,
		reader:   rand.Reader,
	}
	for _, o := range options {
		o(g)
	}
	return g, nil
}

// Generate runs up to MaxRetry attempts and returns the first candidate that
// passes every rule. When the budget is exhausted the last candidate is
// returned with valid == false. The error is only set when the random
// source fails.
func (g *Generator) Generate() (password string, valid bool, err error) {
	g.password, g.valid, g.attempts = "", false, 0

	length := g.spec.TargetLength()
	buf := make([]byte, length)
	for attempt := 1; attempt <= g.opts.MaxRetry; attempt++ {
		if err := g.draw(buf); err != nil {
			return "", false, err
		}
		candidate := string(buf)
		report := constraint.Check(candidate, g.spec)
		g.password, g.attempts = candidate, attempt

		if report.Valid() {
			g.valid = true
			zap.L().Debug("Candidate accepted",
				zap.Int("attempt", attempt),
				zap.Int("length", length))
			return g.password, true, nil
		}
		zap.L().Debug("Candidate rejected",
			zap.Int("attempt", attempt),
			zap.Strings("failed", report.Failed()))
	}

	zap.L().Debug("Retry budget exhausted",
		zap.Int("max_retry", g.opts.MaxRetry),
		zap.Int("alphabet_size", g.alphabet.Len()))
	return g.password, false, nil
}

// draw fills buf with independent uniform samples from the alphabet
func (g *Generator) draw(buf []byte) error {
	n := g.alphabet.Len()
	for i := range buf {
		idx, err := rand.IntnFrom(g.reader, n)
		if err != nil {
			return err
		}
		buf[i] = g.alphabet.Symbol(idx)
	}
	return nil
}

// Password is the last candidate produced by Generate
func (g *Generator) Password() string {
	return g.password
}

// Valid reports whether the last Generate call found a valid candidate
func (g *Generator) Valid() bool {
	return g.valid
}

// Attempts is the number of candidates drawn by the last Generate call
func (g *Generator) Attempts() int {
	return g.attempts
}

// Spec returns the constraints the generator enforces
func (g *Generator) Spec() *constraint.Spec {
	return g.spec
}

// Options returns the generator options
func (g *Generator) Options() Options {
	return g.opts
}
