// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option declaration and catalog.
package option

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/DavidGamba/optscan/text"
)

// NoShort - sentinel for an option without a short key.
const NoShort rune = 0

// Unlimited - default max occurrences.
const Unlimited = math.MaxInt32

// Declaration errors
var (
	ErrorMissingKey      = errors.New("")
	ErrorInvalidMax      = errors.New("")
	ErrorNegativeArity   = errors.New("")
	ErrorInvalidKey      = errors.New("")
	ErrorDuplicateOption = errors.New("")
	ErrorNilSpec         = errors.New("")
)

// Spec - option declaration.
// The catalog keeps its own copy, changes made after building it are not seen by the parser.
type Spec struct {
	Short          rune   // Single character key, NoShort when not set
	Long           string // Long key, empty when not set
	Arity          int    // Number of following tokens consumed as parameters
	MaxOccurrences int    // Max number of times the option can be given
	Group          string // Admissibility group, empty means always admitted

	HelpSynopsis string
}

// New - Returns a new option declaration.
// Use Validate to check the declaration before using it.
func New(short rune, long string, arity int) *Spec {
	s := &Spec{
		Short:          short,
		Long:           long,
		Arity:          arity,
		MaxOccurrences: Unlimited,
	}
	s.Synopsis()
	return s
}

// SetMaxOccurrences - Sets the max number of occurrences.
func (s *Spec) SetMaxOccurrences(n int) *Spec {
	s.MaxOccurrences = n
	return s
}

// SetGroup - Sets the admissibility group.
func (s *Spec) SetGroup(group string) *Spec {
	s.Group = group
	return s
}

// Name - Returns the name used to refer to the option in messages.
// The long form is preferred.
func (s *Spec) Name() string {
	if s.Long != "" {
		return "--" + s.Long
	}
	if s.Short != NoShort {
		return "-" + string(s.Short)
	}
	return ""
}

// Synopsis - Sets HelpSynopsis from the keys and arity, for example `-i|--include <arg>`.
func (s *Spec) Synopsis() {
	keys := []string{}
	if s.Short != NoShort {
		keys = append(keys, "-"+string(s.Short))
	}
	if s.Long != "" {
		keys = append(keys, "--"+s.Long)
	}
	s.HelpSynopsis = strings.Join(keys, "|")
	for i := 0; i < s.Arity; i++ {
		s.HelpSynopsis += " <arg>"
	}
}

// Validate - checks that the declaration fields make sense.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf(text.ErrorNilSpec+"%w", ErrorNilSpec)
	}
	if s.Short == NoShort && s.Long == "" {
		return fmt.Errorf(text.ErrorMissingKey+"%w", ErrorMissingKey)
	}
	// A short key of '-' would read as a long option and '=' can't be told apart from an embedded value.
	if s.Short == '-' || s.Short == '=' {
		return fmt.Errorf(text.ErrorInvalidShort+"%w", s.Short, ErrorInvalidKey)
	}
	if strings.HasPrefix(s.Long, "-") || strings.Contains(s.Long, "=") {
		return fmt.Errorf(text.ErrorInvalidLong+"%w", s.Long, ErrorInvalidKey)
	}
	if s.MaxOccurrences < 1 {
		return fmt.Errorf(text.ErrorInvalidMax+"%w", s.Name(), s.MaxOccurrences, ErrorInvalidMax)
	}
	if s.Arity < 0 {
		return fmt.Errorf(text.ErrorNegativeArity+"%w", s.Name(), s.Arity, ErrorNegativeArity)
	}
	return nil
}
