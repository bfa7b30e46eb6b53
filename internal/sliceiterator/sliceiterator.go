// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - forward only cursor over a slice of tokens that can undo its last reads.
package sliceiterator

import "errors"

// ErrorExhausted - there are no more tokens to pop.
var ErrorExhausted = errors.New("no tokens remaining")

// ErrorAtOriginalFillLevel - undo called without a pop to undo.
var ErrorAtOriginalFillLevel = errors.New("nothing to undo")

// Iterator - cursor data.
// The data slice is never resliced, only the remaining count moves.
type Iterator struct {
	data      []string
	original  int
	remaining int
}

// New - builds an Iterator that starts reading at offset.
// Offsets outside of the slice are clamped.
func New(s []string, offset int) *Iterator {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s) {
		offset = len(s)
	}
	n := len(s) - offset
	return &Iterator{data: s, original: n, remaining: n}
}

// PopFront - returns the next token and its index in the original slice.
func (a *Iterator) PopFront() (string, int, error) {
	if a.remaining == 0 {
		return "", 0, ErrorExhausted
	}
	idx := len(a.data) - a.remaining
	a.remaining--
	return a.data[idx], idx, nil
}

// Undo - makes the last popped token available again.
func (a *Iterator) Undo() error {
	if a.remaining >= a.original {
		return ErrorAtOriginalFillLevel
	}
	a.remaining++
	return nil
}

// Remaining - number of tokens that can still be popped.
func (a *Iterator) Remaining() int {
	return a.remaining
}

// OriginalCount - number of tokens available when the Iterator was created.
func (a *Iterator) OriginalCount() int {
	return a.original
}

// IsEmpty - tells if there are no more tokens.
func (a *Iterator) IsEmpty() bool {
	return a.remaining == 0
}

// LastIndex - index in the original slice of the last popped token.
// Before any pop it is the index right before the starting offset.
func (a *Iterator) LastIndex() int {
	return len(a.data) - a.remaining - 1
}
