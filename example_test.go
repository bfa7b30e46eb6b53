// This file is part of optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optscan_test

import (
	"fmt"

	"github.com/DavidGamba/optscan"
)

func Example() {
	p, err := optscan.New(
		optscan.Option('i', "include", 1),
		optscan.Option('v', "verbose", 0),
		optscan.Option('D', "define", 2, optscan.Group("advanced")),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	ok := p.Parse([]string{"-vi", "inc/", "main.c", "--include=lib/", "-D", "k", "v", "--", "-x"})
	fmt.Println(ok)
	for _, o := range p.Illegal() {
		fmt.Printf("%s %s\n", o.Kind, o.Name)
	}
	for n := 0; n < p.Count(optscan.Short('i')); n++ {
		v, _ := p.Value(optscan.Long("include"), n)
		fmt.Println("include", v)
	}
	for _, a := range p.NonOptions() {
		fmt.Println("arg", a.Text)
	}
	fmt.Println(p.Unprocessed())

	// Output:
	// false
	// OptionNotSpecified -D
	// include inc/
	// include lib/
	// arg main.c
	// arg k
	// arg v
	// [-x]
}

func ExampleProcessor_Parse_groups() {
	p, _ := optscan.New(
		optscan.Option('D', "define", 2, optscan.Group("advanced")),
	)
	p.Parse([]string{"-D", "k", "v"}, optscan.Groups("advanced"))
	list, _ := p.Values(optscan.Short('D'), 0)
	fmt.Println(list)

	// Output:
	// [k v]
}
