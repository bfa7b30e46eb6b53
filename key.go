// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

type keyKind int

const (
	keyShort keyKind = iota
	keyLong
)

// Key - identifies an option in queries by either its short or its long key.
// Both keys of an option resolve to the same results.
type Key struct {
	kind  keyKind
	short rune
	long  string
}

// Short - Key for a short option.
func Short(r rune) Key {
	return Key{kind: keyShort, short: r}
}

// Long - Key for a long option.
func Long(name string) Key {
	return Key{kind: keyLong, long: name}
}

func (k Key) String() string {
	if k.kind == keyShort {
		return "-" + string(k.short)
	}
	return "--" + k.long
}

// resolve - Returns the catalog slot for the key.
func (p *Processor) resolve(k Key) (int, bool) {
	switch k.kind {
	case keyShort:
		return p.catalog.LookupShort(k.short)
	case keyLong:
		return p.catalog.LookupLong(k.long)
	}
	return 0, false
}
