// This file is part of optscan.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package catalogfile - loads option declarations from YAML or TOML files.
//
// YAML:
//
//	options:
//	  - short: i
//	    long: include
//	    arity: 1
//	  - long: define
//	    arity: 2
//	    group: advanced
//	    max_occurrences: 3
//
// TOML:
//
//	[[options]]
//	short = "i"
//	long = "include"
//	arity = 1
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/DavidGamba/optscan"
	"github.com/DavidGamba/optscan/text"
	"gopkg.in/yaml.v3"
)

// ErrorUnknownFormat - the file extension doesn't map to a known format.
var ErrorUnknownFormat = errors.New("")

// ErrorInvalidEntry - an entry can't be converted into a declaration.
var ErrorInvalidEntry = errors.New("")

// Format - catalog file format.
type Format int

// Formats
const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "unknown"
}

// Entry - one option declaration as written in the file.
type Entry struct {
	Short          string `yaml:"short" toml:"short"`
	Long           string `yaml:"long" toml:"long"`
	Arity          int    `yaml:"arity" toml:"arity"`
	MaxOccurrences int    `yaml:"max_occurrences" toml:"max_occurrences"` // 0 means unlimited
	Group          string `yaml:"group" toml:"group"`
}

// File - catalog file contents.
type File struct {
	Options []Entry `yaml:"options" toml:"options"`
}

// FormatFromPath - Returns the format matching the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf(text.ErrorUnknownFormat+"%w", ext, ErrorUnknownFormat)
}

// Load - Reads the declarations from the file at path.
func Load(path string) ([]*optscan.OptionSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh, format)
}

// Decode - Reads the declarations from r.
// Unknown fields are rejected.
func Decode(r io.Reader, format Format) ([]*optscan.OptionSpec, error) {
	var f File
	switch format {
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		err := d.Decode(&f)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml catalog: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml catalog: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode toml catalog: unknown keys %v%w", undecoded, ErrorInvalidEntry)
		}
	default:
		return nil, fmt.Errorf(text.ErrorUnknownFormat+"%w", format, ErrorUnknownFormat)
	}

	specs := make([]*optscan.OptionSpec, 0, len(f.Options))
	for i, e := range f.Options {
		s, err := e.Spec()
		if err != nil {
			return nil, fmt.Errorf(text.ErrorCatalogEntry+"%w", i, err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Spec - Converts the entry into a declaration.
// The declaration itself is validated when the catalog is built.
func (e Entry) Spec() (*optscan.OptionSpec, error) {
	short := optscan.NoShort
	switch utf8.RuneCountInString(e.Short) {
	case 0:
	case 1:
		short, _ = utf8.DecodeRuneInString(e.Short)
	default:
		return nil, fmt.Errorf("short key '%s' should be a single character%w", e.Short, ErrorInvalidEntry)
	}
	fns := []optscan.ModifyFn{}
	if e.MaxOccurrences != 0 {
		fns = append(fns, optscan.MaxOccurrences(e.MaxOccurrences))
	}
	if e.Group != "" {
		fns = append(fns, optscan.Group(e.Group))
	}
	return optscan.Option(short, e.Long, e.Arity, fns...), nil
}
