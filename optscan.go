// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optscan - classifies a slice of command line tokens against a catalog
of declared options.

Every token ends up as a parsed option (with its parameters), an illegal
option or a non option (positional argument).
Parsing continues past most errors so a single pass reports all the problems
found in the input.

Usage

	p, err := optscan.New(
		optscan.Option('i', "include", 1),
		optscan.Option('v', "verbose", 0),
		optscan.Option('D', "define", 2, optscan.Group("advanced")),
	)
	if err != nil {
		// Duplicate keys or invalid declarations
	}

	ok := p.Parse(os.Args[1:], optscan.Groups("advanced"))
	if !ok {
		fmt.Fprintln(os.Stderr, p.Err())
	}

	for n := 0; n < p.Count(optscan.Short('i')); n++ {
		file, _ := p.Value(optscan.Long("include"), n)
		// ...
	}

Token classification

* `--` stops the scan, the tokens after it are available through Unprocessed.

* `--name`, `--name=value` long options.

* `-` is a non option, conventionally standard input.

* `-abc` bundled short options, `-fvalue` short option with an adjoining parameter.

* Anything else is a non option.

Options declared with MaxOccurrences are limited: occurrences over the limit
are reported as OptionTooManyOccurrences illegal options and not recorded.
Options without a limit can be given any number of times.

Declarations are copied by New, changing them afterwards has no effect.

Each Parse call resets the results of the previous one.
A Processor is not safe for concurrent use.
*/
package optscan

import (
	"fmt"
	"io"
	"log"

	"github.com/DavidGamba/optscan/internal/option"
	"github.com/DavidGamba/optscan/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// OptionSpec - option declaration.
type OptionSpec = option.Spec

// NoShort - use as the short key of options that only have a long form.
const NoShort = option.NoShort

// ModifyFn - Function signature for functions that modify an option declaration.
type ModifyFn func(*OptionSpec)

// Option - Declares an option with a short key, a long key and the number of
// parameters it consumes.
// Use NoShort or an empty long key to leave one of the keys unset.
func Option(short rune, long string, arity int, fns ...ModifyFn) *OptionSpec {
	s := option.New(short, long, arity)
	for _, fn := range fns {
		fn(s)
	}
	return s
}

// MaxOccurrences - Limits the number of times the option can be given.
// Extra occurrences make Parse report OptionTooManyOccurrences.
func MaxOccurrences(n int) ModifyFn {
	return func(s *OptionSpec) {
		s.SetMaxOccurrences(n)
	}
}

// Group - Sets the admissibility group.
// Grouped options are only recognized when the group is passed to Parse.
func Group(name string) ModifyFn {
	return func(s *OptionSpec) {
		s.SetGroup(name)
	}
}

// Processor - holds the catalog and the results of the last parse.
type Processor struct {
	catalog *option.Catalog

	tokens  []string
	groups  []string
	allowed map[string]bool

	parsed     []ParsedOption
	illegal    []IllegalOption
	nonOptions []NonOption
	counts     []int // occurrences per catalog slot

	stopIndex  int
	stopReason StopReason
}

// New - Builds a Processor from the given declarations.
// It fails if a declaration is invalid or if a short or long key is repeated.
func New(specs ...*OptionSpec) (*Processor, error) {
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf(text.ErrorDeclaration+"%w", i, err)
		}
	}
	c, err := option.NewCatalog(specs)
	if err != nil {
		return nil, err
	}
	p := &Processor{
		catalog:   c,
		counts:    make([]int, c.Len()),
		stopIndex: -1,
	}
	return p, nil
}

// ParseFn - Function signature for functions that modify a Parse call.
type ParseFn func(*parseConfig)

type parseConfig struct {
	offset int
	groups []string
}

// Offset - Starts the scan at the given token index.
// Indexes reported in the results are still relative to the full slice.
func Offset(n int) ParseFn {
	return func(c *parseConfig) {
		c.offset = n
	}
}

// Groups - Admits the options declared with any of the given groups.
func Groups(names ...string) ParseFn {
	return func(c *parseConfig) {
		c.groups = append(c.groups, names...)
	}
}

func (p *Processor) reset(tokens []string, c parseConfig) {
	p.tokens = tokens
	p.groups = c.groups
	p.allowed = make(map[string]bool, len(c.groups))
	for _, g := range c.groups {
		p.allowed[g] = true
	}
	p.parsed = nil
	p.illegal = nil
	p.nonOptions = nil
	p.counts = make([]int, p.catalog.Len())
	p.stopIndex = -1
	p.stopReason = StopExhausted
}

// Spec - Returns the declaration of a parsed option.
func (p *Processor) Spec(o ParsedOption) *OptionSpec {
	return p.catalog.Spec(o.Slot)
}
