// This file is part of optscan.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorOptionNotSpecified - an option that is not in the catalog or whose group was not admitted.
var ErrorOptionNotSpecified = "option '%s' not specified (token %d)"

// ErrorEqualOptionNotSingleParam - `--name=value` used on an option that doesn't take exactly one parameter.
var ErrorEqualOptionNotSingleParam = "option '%s' doesn't take a single parameter, can't use '=' (token %d)"

// ErrorEqualFirstChar - `--=value`.
var ErrorEqualFirstChar = "option '%s' is missing a name before '=' (token %d)"

// ErrorEqualOptionEmptyParameter - `--name=`.
var ErrorEqualOptionEmptyParameter = "option '%s' has an empty parameter after '=' (token %d)"

// ErrorOptionNotEnoughParams - not enough tokens left to satisfy the option arity.
var ErrorOptionNotEnoughParams = "option '%s' is missing parameters (token %d)"

// ErrorAdjoiningOptionNotSingleParam - multi parameter option bundled before other characters.
var ErrorAdjoiningOptionNotSingleParam = "option '%s' takes more than one parameter and can't be bundled (token %d)"

// ErrorOptionTooManyOccurrences - option used more times than declared.
var ErrorOptionTooManyOccurrences = "option '%s' used more times than allowed (token %d)"

// ErrorUnknownKind - fallback message for an unknown error kind.
var ErrorUnknownKind = "option '%s' is illegal (token %d)"

// ErrorDuplicateShort - duplicate short keys during catalog construction.
var ErrorDuplicateShort = "duplicate short option(s): %s"

// ErrorDuplicateLong - duplicate long keys during catalog construction.
var ErrorDuplicateLong = "duplicate long option(s): %s"

// ErrorMissingKey - declaration without short or long key.
var ErrorMissingKey = "option needs a short or a long key"

// ErrorNilSpec - nil declaration.
var ErrorNilSpec = "option declaration is nil"

// ErrorInvalidMax - declaration with max occurrences below 1.
var ErrorInvalidMax = "option '%s' max occurrences should be >= 1, got %d"

// ErrorNegativeArity - declaration with a negative arity.
var ErrorNegativeArity = "option '%s' arity should be >= 0, got %d"

// ErrorInvalidShort - short key that can't be parsed back from a token.
var ErrorInvalidShort = "option short key '%c' is not allowed"

// ErrorInvalidLong - long key that can't be parsed back from a token.
var ErrorInvalidLong = "option long key '%s' is not allowed"

// ErrorDeclaration - wraps a declaration error with its position.
var ErrorDeclaration = "declaration %d: "

// ErrorKeyNotFound - query for a key that isn't in the catalog.
var ErrorKeyNotFound = "option '%s' is not in the catalog: "

// ErrorOccurrenceNotFound - query for an occurrence that wasn't parsed.
var ErrorOccurrenceNotFound = "option '%s' occurrence %d not found, parsed %d: "

// ErrorParamKind - query with a parameter kind that doesn't match.
var ErrorParamKind = "option '%s' occurrence %d has %s parameter: "

// ErrorUnknownFormat - catalog file with an unknown format.
var ErrorUnknownFormat = "unknown catalog format '%s': "

// ErrorCatalogEntry - catalog file entry that can't be converted.
var ErrorCatalogEntry = "catalog entry %d: "
