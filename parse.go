// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/optscan/internal/sliceiterator"
)

// Parse - Scans the tokens and records the results, replacing the results of
// any previous call.
//
// It returns true when no illegal options were recorded.
// The scan can finish before the end of the tokens, when `--` is found or
// after a fatal illegal option, check Stop and Unprocessed for the tokens
// that were not classified.
func (p *Processor) Parse(tokens []string, fns ...ParseFn) bool {
	c := parseConfig{}
	for _, fn := range fns {
		fn(&c)
	}
	p.reset(tokens, c)
	Logger.Printf("parse %v, offset %d, groups %v", tokens, c.offset, c.groups)

	iterator := sliceiterator.New(tokens, c.offset)
	p.stopReason = p.scan(iterator)
	p.stopIndex = iterator.LastIndex()
	Logger.Printf("stop %s at %d", p.stopReason, p.stopIndex)
	return len(p.illegal) == 0
}

func (p *Processor) scan(iterator *sliceiterator.Iterator) StopReason {
	for {
		token, idx, err := iterator.PopFront()
		if err != nil {
			return StopExhausted
		}
		switch {
		case token == "--":
			return StopTerminator
		case strings.HasPrefix(token, "--"):
			if !p.longOption(iterator, token[2:], idx) {
				return StopHalted
			}
		case token == "-":
			p.addNonOption(token, idx)
		case strings.HasPrefix(token, "-"):
			if !p.shortOptions(iterator, token[1:], idx) {
				return StopHalted
			}
		default:
			p.addNonOption(token, idx)
		}
	}
}

// admitted - Tells if the option at slot can be used with the groups of this parse.
func (p *Processor) admitted(slot int) bool {
	group := p.catalog.Spec(slot).Group
	return group == "" || p.allowed[group]
}

// longOption - handles the text after `--`.
// Returns false when the scan has to stop.
func (p *Processor) longOption(iterator *sliceiterator.Iterator, s string, idx int) bool {
	eq := strings.IndexByte(s, '=')
	if eq == 0 {
		p.addIllegal("--=", idx, EqualFirstChar)
		return true
	}
	if eq > 0 {
		name, value := "--"+s[:eq], s[eq+1:]
		slot, ok := p.catalog.LookupLong(s[:eq])
		if !ok || !p.admitted(slot) {
			p.addIllegal(name, idx, OptionNotSpecified)
			return true
		}
		if p.catalog.Spec(slot).Arity != 1 {
			p.addIllegal(name, idx, EqualOptionNotSingleParam)
			return true
		}
		if value == "" {
			p.addIllegal(name, idx, EqualOptionEmptyParameter)
		}
		p.record(name, slot, idx, false, SingleParam(value))
		return true
	}

	slot, ok := p.catalog.LookupLong(s)
	if !ok || !p.admitted(slot) {
		p.addIllegal("--"+s, idx, OptionNotSpecified)
		return true
	}
	return p.consumeParams(iterator, "--"+s, slot, idx)
}

// shortOptions - handles the text after `-`, one character at a time.
// Returns false when the scan has to stop.
func (p *Processor) shortOptions(iterator *sliceiterator.Iterator, s string, idx int) bool {
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		name := "-" + s[i:i+size]
		last := i+size == len(s)
		// Invalid bytes never match a key, not even utf8.RuneError.
		if c == utf8.RuneError && size == 1 {
			p.addIllegal(name, idx, OptionNotSpecified)
			i += size
			continue
		}
		slot, ok := p.catalog.LookupShort(c)
		if !ok || !p.admitted(slot) {
			p.addIllegal(name, idx, OptionNotSpecified)
			i += size
			continue
		}
		if last {
			return p.consumeParams(iterator, name, slot, idx)
		}
		switch arity := p.catalog.Spec(slot).Arity; {
		case arity == 0:
			p.record(name, slot, idx, false, NoParam())
		case arity == 1:
			p.record(name, slot, idx, true, SingleParam(s[i+size:]))
			return true
		default:
			p.addIllegal(name, idx, AdjoiningOptionNotSingleParam)
			return false
		}
		i += size
	}
	return true
}

// consumeParams - records the option taking its parameters from the following tokens.
// Returns false when there are not enough tokens left.
func (p *Processor) consumeParams(iterator *sliceiterator.Iterator, name string, slot, idx int) bool {
	arity := p.catalog.Spec(slot).Arity
	if arity > iterator.Remaining() {
		p.addIllegal(name, idx, OptionNotEnoughParams)
		return false
	}
	var param Param
	switch arity {
	case 0:
		param = NoParam()
	case 1:
		value, _, _ := iterator.PopFront()
		param = SingleParam(value)
	default:
		list := make([]string, 0, arity)
		for i := 0; i < arity; i++ {
			value, _, _ := iterator.PopFront()
			list = append(list, value)
		}
		param = ListParam(list)
	}
	p.record(name, slot, idx, false, param)
	return true
}
