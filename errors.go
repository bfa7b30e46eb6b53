// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/optscan/internal/option"
	"github.com/DavidGamba/optscan/text"
)

// ErrorParsing - Indicates that there was an error with cli args parsing
var ErrorParsing = errors.New("")

// ErrorNotFound - Generic not found error
var ErrorNotFound = errors.New("not found")

// ErrorParamKind - The occurrence parameter doesn't have the requested shape.
var ErrorParamKind = errors.New("wrong parameter kind")

// ErrorDuplicateOption - A short or long key was declared more than once.
var ErrorDuplicateOption = option.ErrorDuplicateOption

// ErrorKind - Indicates why an option was reported as illegal.
type ErrorKind int

// Error kinds
const (
	OptionNotSpecified ErrorKind = iota
	EqualOptionNotSingleParam
	EqualFirstChar
	EqualOptionEmptyParameter
	OptionTooManyOccurrences

	// Fatal kinds, the scan stops after recording them.
	OptionNotEnoughParams
	AdjoiningOptionNotSingleParam
)

func (k ErrorKind) String() string {
	switch k {
	case OptionNotSpecified:
		return "OptionNotSpecified"
	case EqualOptionNotSingleParam:
		return "EqualOptionNotSingleParam"
	case EqualFirstChar:
		return "EqualFirstChar"
	case EqualOptionEmptyParameter:
		return "EqualOptionEmptyParameter"
	case OptionTooManyOccurrences:
		return "OptionTooManyOccurrences"
	case OptionNotEnoughParams:
		return "OptionNotEnoughParams"
	case AdjoiningOptionNotSingleParam:
		return "AdjoiningOptionNotSingleParam"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Fatal - Tells if the kind halts the scan.
func (k ErrorKind) Fatal() bool {
	return k == OptionNotEnoughParams || k == AdjoiningOptionNotSingleParam
}

// IllegalOption - an option that couldn't be recorded.
type IllegalOption struct {
	Name  string // Option as written, for example "-x" or "--name"
	Index int    // Token index
	Kind  ErrorKind
}

func (o IllegalOption) Error() string {
	var format string
	switch o.Kind {
	case OptionNotSpecified:
		format = text.ErrorOptionNotSpecified
	case EqualOptionNotSingleParam:
		format = text.ErrorEqualOptionNotSingleParam
	case EqualFirstChar:
		format = text.ErrorEqualFirstChar
	case EqualOptionEmptyParameter:
		format = text.ErrorEqualOptionEmptyParameter
	case OptionTooManyOccurrences:
		format = text.ErrorOptionTooManyOccurrences
	case OptionNotEnoughParams:
		format = text.ErrorOptionNotEnoughParams
	case AdjoiningOptionNotSingleParam:
		format = text.ErrorAdjoiningOptionNotSingleParam
	default:
		format = text.ErrorUnknownKind
	}
	return fmt.Sprintf(format, o.Name, o.Index)
}

// Err - Returns nil when the last parse recorded no illegal options.
// Otherwise it returns all of them joined, wrapping ErrorParsing.
func (p *Processor) Err() error {
	if len(p.illegal) == 0 {
		return nil
	}
	errs := make([]error, 0, len(p.illegal))
	for _, o := range p.illegal {
		errs = append(errs, o)
	}
	return fmt.Errorf("%w%w", ErrorParsing, errors.Join(errs...))
}
