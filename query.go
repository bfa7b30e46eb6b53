// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"fmt"

	"github.com/DavidGamba/optscan/text"
)

// Count - Returns the number of times the option was recorded.
// Unknown keys return 0.
func (p *Processor) Count(k Key) int {
	slot, ok := p.resolve(k)
	if !ok {
		return 0
	}
	return p.counts[slot]
}

// Called - Indicates if the option was recorded at least once.
func (p *Processor) Called(k Key) bool {
	return p.Count(k) > 0
}

// Occurrences - Returns the recorded occurrences of the option in token order.
func (p *Processor) Occurrences(k Key) []ParsedOption {
	out := []ParsedOption{}
	slot, ok := p.resolve(k)
	if !ok {
		return out
	}
	for _, o := range p.parsed {
		if o.Slot == slot {
			out = append(out, o)
		}
	}
	return out
}

func (p *Processor) occurrence(k Key, n int) (ParsedOption, error) {
	if _, ok := p.resolve(k); !ok {
		return ParsedOption{}, fmt.Errorf(text.ErrorKeyNotFound+"%w", k, ErrorNotFound)
	}
	list := p.Occurrences(k)
	if n < 0 || n >= len(list) {
		return ParsedOption{}, fmt.Errorf(text.ErrorOccurrenceNotFound+"%w", k, n, len(list), ErrorNotFound)
	}
	return list[n], nil
}

// Value - Returns the single parameter of the nth occurrence of the option.
func (p *Processor) Value(k Key, n int) (string, error) {
	o, err := p.occurrence(k, n)
	if err != nil {
		return "", err
	}
	switch o.Param.Kind() {
	case ParamSingle:
		v, _ := o.Param.Single()
		return v, nil
	case ParamNone, ParamList:
		return "", fmt.Errorf(text.ErrorParamKind+"%w", k, n, o.Param.Kind(), ErrorParamKind)
	}
	return "", fmt.Errorf(text.ErrorParamKind+"%w", k, n, o.Param.Kind(), ErrorParamKind)
}

// Values - Returns the parameters of the nth occurrence of the option as a list.
func (p *Processor) Values(k Key, n int) ([]string, error) {
	o, err := p.occurrence(k, n)
	if err != nil {
		return nil, err
	}
	return o.Param.List(), nil
}

// Parsed - Returns all the recorded occurrences in token order.
func (p *Processor) Parsed() []ParsedOption {
	return append([]ParsedOption{}, p.parsed...)
}

// Illegal - Returns the illegal options in the order they were found.
func (p *Processor) Illegal() []IllegalOption {
	return append([]IllegalOption{}, p.illegal...)
}

// NonOptions - Returns the positional tokens in the order they were found.
func (p *Processor) NonOptions() []NonOption {
	return append([]NonOption{}, p.nonOptions...)
}

// Groups - Returns the groups admitted in the last parse.
func (p *Processor) Groups() []string {
	return append([]string{}, p.groups...)
}

// Stop - Returns the index of the last token processed and why the scan stopped.
// Before any token is processed the index is the one right before the offset.
func (p *Processor) Stop() (int, StopReason) {
	return p.stopIndex, p.stopReason
}

// Unprocessed - Returns the tokens after the last processed one.
// After a `--` terminator these are the tokens following it.
func (p *Processor) Unprocessed() []string {
	if p.stopIndex+1 >= len(p.tokens) {
		return []string{}
	}
	return append([]string{}, p.tokens[p.stopIndex+1:]...)
}
