// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DavidGamba/optscan/text"
)

// Catalog - indexes declarations by short and long key.
// Lookups return the slot of the declaration in the original slice.
type Catalog struct {
	specs []*Spec
	short map[rune]int
	long  map[string]int
}

// NewCatalog - Validates the declarations and builds the index.
// All duplicate keys are reported in a single error.
// The declarations are copied.
func NewCatalog(specs []*Spec) (*Catalog, error) {
	c := &Catalog{
		specs: make([]*Spec, 0, len(specs)),
		short: make(map[rune]int, len(specs)),
		long:  make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		cp := *s
		cp.Synopsis()
		c.specs = append(c.specs, &cp)
	}

	dupShort := map[rune]bool{}
	dupLong := map[string]bool{}
	for i, s := range c.specs {
		if s.Short != NoShort {
			if _, ok := c.short[s.Short]; ok {
				dupShort[s.Short] = true
			} else {
				c.short[s.Short] = i
			}
		}
		if s.Long != "" {
			if _, ok := c.long[s.Long]; ok {
				dupLong[s.Long] = true
			} else {
				c.long[s.Long] = i
			}
		}
	}
	if len(dupShort) == 0 && len(dupLong) == 0 {
		return c, nil
	}

	msgs := []string{}
	if len(dupShort) > 0 {
		keys := []string{}
		for r := range dupShort {
			keys = append(keys, "-"+string(r))
		}
		sort.Strings(keys)
		msgs = append(msgs, fmt.Sprintf(text.ErrorDuplicateShort, strings.Join(keys, ", ")))
	}
	if len(dupLong) > 0 {
		keys := []string{}
		for k := range dupLong {
			keys = append(keys, "--"+k)
		}
		sort.Strings(keys)
		msgs = append(msgs, fmt.Sprintf(text.ErrorDuplicateLong, strings.Join(keys, ", ")))
	}
	return nil, fmt.Errorf("%s%w", strings.Join(msgs, "; "), ErrorDuplicateOption)
}

// LookupShort - Returns the slot for the short key.
func (c *Catalog) LookupShort(r rune) (int, bool) {
	i, ok := c.short[r]
	return i, ok
}

// LookupLong - Returns the slot for the long key.
func (c *Catalog) LookupLong(name string) (int, bool) {
	i, ok := c.long[name]
	return i, ok
}

// Spec - Returns the declaration at the given slot.
func (c *Catalog) Spec(slot int) *Spec {
	return c.specs[slot]
}

// Len - Number of declarations.
func (c *Catalog) Len() int {
	return len(c.specs)
}
