// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

// ParamKind - Indicates the shape of a parsed option parameter.
type ParamKind int

// Parameter kinds
const (
	ParamNone ParamKind = iota
	ParamSingle
	ParamList
)

func (k ParamKind) String() string {
	switch k {
	case ParamNone:
		return "no"
	case ParamSingle:
		return "a single"
	case ParamList:
		return "a list"
	}
	return "unknown"
}

// Param - parameter of a parsed option: nothing, one string or a list of strings.
type Param struct {
	kind   ParamKind
	values []string
}

// NoParam - parameter of an option with arity 0.
func NoParam() Param {
	return Param{kind: ParamNone}
}

// SingleParam - parameter of an option with arity 1.
func SingleParam(s string) Param {
	return Param{kind: ParamSingle, values: []string{s}}
}

// ListParam - parameters of an option with arity greater than 1.
func ListParam(list []string) Param {
	return Param{kind: ParamList, values: append([]string{}, list...)}
}

// Kind - Returns the parameter kind.
func (p Param) Kind() ParamKind {
	return p.kind
}

// Single - Returns the value of a single parameter.
func (p Param) Single() (string, bool) {
	if p.kind != ParamSingle {
		return "", false
	}
	return p.values[0], true
}

// List - Returns the parameter as a list.
// No parameter is an empty list and a single parameter is a list of one.
func (p Param) List() []string {
	switch p.kind {
	case ParamNone:
		return []string{}
	case ParamSingle, ParamList:
		return append([]string{}, p.values...)
	}
	return []string{}
}

// ParsedOption - one recorded occurrence of an option.
type ParsedOption struct {
	Index     int  // Token index of the option
	Adjoining bool // Parameter taken from the rest of the same token
	Slot      int  // Declaration position in the catalog
	Param     Param
}

// NonOption - a positional token.
type NonOption struct {
	Text  string
	Index int
}

// StopReason - Indicates why the scan finished.
type StopReason int

// Stop reasons
const (
	StopExhausted  StopReason = iota // All tokens were processed
	StopTerminator                   // `--` was found
	StopHalted                       // A fatal illegal option was recorded
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopTerminator:
		return "terminator"
	case StopHalted:
		return "halted"
	}
	return "unknown"
}

// record - appends an occurrence unless the option already reached its max.
func (p *Processor) record(name string, slot, idx int, adjoining bool, param Param) {
	spec := p.catalog.Spec(slot)
	if p.counts[slot] >= spec.MaxOccurrences {
		p.addIllegal(name, idx, OptionTooManyOccurrences)
		return
	}
	Logger.Printf("option %s at %d, param %s: %v", name, idx, param.Kind(), param.values)
	p.counts[slot]++
	p.parsed = append(p.parsed, ParsedOption{
		Index:     idx,
		Adjoining: adjoining,
		Slot:      slot,
		Param:     param,
	})
}

func (p *Processor) addIllegal(name string, idx int, kind ErrorKind) {
	Logger.Printf("illegal option %s at %d: %s", name, idx, kind)
	p.illegal = append(p.illegal, IllegalOption{Name: name, Index: idx, Kind: kind})
}

func (p *Processor) addNonOption(s string, idx int) {
	Logger.Printf("non option %q at %d", s, idx)
	p.nonOptions = append(p.nonOptions, NonOption{Text: s, Index: idx})
}
