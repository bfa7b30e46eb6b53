// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueries(t *testing.T) {
	logTestOutput := setupTestLogging(t)
	defer logTestOutput()
	p := newTestProcessor(t)
	ok := p.Parse([]string{"-i", "file1.c", "--include", "file2.c", "-v", "--pair", "k", "v", "in.txt"}, Groups("extra", "debug"))
	if !ok {
		t.Fatalf("unexpected illegal options: %v", p.Illegal())
	}

	t.Run("count", func(t *testing.T) {
		counts := []struct {
			key   Key
			count int
		}{
			{Short('i'), 2},
			{Long("include"), 2},
			{Short('v'), 1},
			{Long("verbose"), 1},
			{Long("pair"), 1},
			{Short('a'), 0},
			{Short('z'), 0},
			{Long("nope"), 0},
		}
		for _, c := range counts {
			if p.Count(c.key) != c.count {
				t.Errorf("Count(%s) = %d, want %d", c.key, p.Count(c.key), c.count)
			}
			if p.Called(c.key) != (c.count > 0) {
				t.Errorf("Called(%s) = %v", c.key, p.Called(c.key))
			}
		}
	})

	t.Run("value", func(t *testing.T) {
		v, err := p.Value(Short('i'), 0)
		checkError(t, err, nil)
		if v != "file1.c" {
			t.Errorf("wrong value: %s", v)
		}
		v, err = p.Value(Long("include"), 1)
		checkError(t, err, nil)
		if v != "file2.c" {
			t.Errorf("wrong value: %s", v)
		}
		_, err = p.Value(Short('i'), 2)
		checkError(t, err, ErrorNotFound)
		_, err = p.Value(Short('i'), -1)
		checkError(t, err, ErrorNotFound)
		_, err = p.Value(Short('z'), 0)
		checkError(t, err, ErrorNotFound)
		_, err = p.Value(Short('a'), 0)
		checkError(t, err, ErrorNotFound)
		_, err = p.Value(Short('v'), 0)
		checkError(t, err, ErrorParamKind)
		_, err = p.Value(Long("pair"), 0)
		checkError(t, err, ErrorParamKind)
	})

	t.Run("values", func(t *testing.T) {
		list, err := p.Values(Short('p'), 0)
		checkError(t, err, nil)
		if diff := cmp.Diff([]string{"k", "v"}, list); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		list, err = p.Values(Long("include"), 1)
		checkError(t, err, nil)
		if diff := cmp.Diff([]string{"file2.c"}, list); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		list, err = p.Values(Short('v'), 0)
		checkError(t, err, nil)
		if diff := cmp.Diff([]string{}, list); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		_, err = p.Values(Long("verbose"), 1)
		checkError(t, err, ErrorNotFound)
	})

	t.Run("occurrences", func(t *testing.T) {
		list := p.Occurrences(Long("include"))
		if len(list) != 2 || list[0].Index != 0 || list[1].Index != 2 {
			t.Errorf("wrong occurrences: %v", list)
		}
		if p.Spec(list[0]).Long != "include" {
			t.Errorf("wrong spec: %v", p.Spec(list[0]))
		}
		if len(p.Occurrences(Short('z'))) != 0 {
			t.Errorf("unknown key with occurrences")
		}
	})

	t.Run("lists", func(t *testing.T) {
		if diff := cmp.Diff([]NonOption{{"in.txt", 8}}, p.NonOptions()); diff != "" {
			t.Errorf("non options mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]IllegalOption{}, p.Illegal()); diff != "" {
			t.Errorf("illegal mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"extra", "debug"}, p.Groups()); diff != "" {
			t.Errorf("groups mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParam(t *testing.T) {
	tests := []struct {
		name   string
		param  Param
		kind   ParamKind
		single string
		ok     bool
		list   []string
	}{
		{"none", NoParam(), ParamNone, "", false, []string{}},
		{"single", SingleParam("a"), ParamSingle, "a", true, []string{"a"}},
		{"empty single", SingleParam(""), ParamSingle, "", true, []string{""}},
		{"list", ListParam([]string{"a", "b"}), ParamList, "", false, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.param.Kind() != tt.kind {
				t.Errorf("wrong kind: %s", tt.param.Kind())
			}
			s, ok := tt.param.Single()
			if s != tt.single || ok != tt.ok {
				t.Errorf("Single() = (%q, %v)", s, ok)
			}
			if diff := cmp.Diff(tt.list, tt.param.List()); diff != "" {
				t.Errorf("list mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// List returns a copy.
	p := ListParam([]string{"a"})
	p.List()[0] = "x"
	if v := p.List()[0]; v != "a" {
		t.Errorf("list was modified: %s", v)
	}
}

func TestKeyString(t *testing.T) {
	if Short('x').String() != "-x" || Long("name").String() != "--name" {
		t.Errorf("wrong key strings: %s %s", Short('x'), Long("name"))
	}
}
