// This file is part of optscan.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package catalogfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DavidGamba/optscan"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const yamlCatalog = `
options:
  - short: i
    long: include
    arity: 1
  - short: v
  - long: define
    arity: 2
    group: advanced
    max_occurrences: 3
`

const tomlCatalog = `
[[options]]
short = "i"
long = "include"
arity = 1

[[options]]
short = "v"

[[options]]
long = "define"
arity = 2
group = "advanced"
max_occurrences = 3
`

func expectedSpecs() []*optscan.OptionSpec {
	return []*optscan.OptionSpec{
		optscan.Option('i', "include", 1),
		optscan.Option('v', "", 0),
		optscan.Option(optscan.NoShort, "define", 2, optscan.MaxOccurrences(3), optscan.Group("advanced")),
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"yaml", yamlCatalog, YAML},
		{"toml", tomlCatalog, TOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(expectedSpecs(), specs); diff != "" {
				t.Errorf("specs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		err    error
	}{
		{"long short", "options:\n  - short: ab\n", YAML, ErrorInvalidEntry},
		{"toml unknown key", "[[options]]\nshort = \"a\"\nextra = 1\n", TOML, ErrorInvalidEntry},
		{"unknown format", "", Format(9), ErrorUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.err) {
				t.Errorf("wrong error: %v", err)
			}
		})
	}

	_, err := Decode(strings.NewReader("options:\n  - shrt: a\n"), YAML)
	if err == nil {
		t.Errorf("unknown yaml field should fail")
	}
	specs, err := Decode(strings.NewReader(""), YAML)
	if err != nil || len(specs) != 0 {
		t.Errorf("empty yaml should be an empty catalog: %v, %v", specs, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yml")
	tomlPath := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(yamlPath, []byte(yamlCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte(tomlCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{yamlPath, tomlPath} {
		specs, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		p, err := optscan.New(specs...)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		p.Parse([]string{"-vi", "a.c", "--define", "k", "v"}, optscan.Groups("advanced"))
		if diff := cmp.Diff([]optscan.IllegalOption{}, p.Illegal(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("illegal mismatch (-want +got):\n%s", diff)
		}
	}

	_, err := Load(filepath.Join(dir, "catalog.json"))
	if !errors.Is(err, ErrorUnknownFormat) {
		t.Errorf("wrong error: %v", err)
	}
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("wrong error: %v", err)
	}
}
