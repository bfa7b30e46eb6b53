// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// newTestProcessor - Processor used across the parse tests.
func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	p, err := New(
		Option('i', "include", 1),
		Option('v', "verbose", 0),
		Option('a', "", 0),
		Option('b', "", 1),
		Option('x', "", 1),
		Option('f', "file", 1),
		Option('p', "pair", 2),
		Option(NoShort, "long-flag", 0),
		Option('g', "grouped", 0, Group("extra")),
		Option('o', "once", 0, MaxOccurrences(1)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return p
}

type result struct {
	Parsed     []ParsedOption
	Illegal    []IllegalOption
	NonOptions []NonOption
	StopIndex  int
	StopReason StopReason
}

func resultOf(p *Processor) result {
	idx, reason := p.Stop()
	return result{
		Parsed:     p.Parsed(),
		Illegal:    p.Illegal(),
		NonOptions: p.NonOptions(),
		StopIndex:  idx,
		StopReason: reason,
	}
}
