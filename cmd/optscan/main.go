// This file is part of optscan.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// optscan - classifies the tokens given after `--` against an option catalog file.
//
//	optscan --catalog options.yaml --group advanced -- -vi main.c --define k v
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-getoptions"
	"github.com/DavidGamba/optscan"
	"github.com/DavidGamba/optscan/catalogfile"
)

var Logger = log.New(os.Stderr, "", log.LstdFlags)

// Stdout - report destination.
var Stdout io.Writer = os.Stdout

// ErrorIllegalOptions - the scanned tokens contain illegal options.
var ErrorIllegalOptions = errors.New("illegal options found")

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	ctx, cancel, done := getoptions.InterruptContext()
	defer func() { cancel(); <-done }()

	opt := getoptions.New()
	opt.Self("optscan", "Classifies command line tokens against an option catalog.")
	opt.Bool("debug", false, opt.Description("Show parser debug output."))
	opt.Bool("quiet", false, opt.Description("Only set the exit status."))
	opt.Bool("no-color", false, opt.Description("Disable colored output."))
	opt.String("catalog", "", opt.Required(), opt.ArgName("file"), opt.Description("YAML or TOML option catalog."))
	opt.StringSlice("group", 1, 1, opt.ArgName("name"), opt.Description("Admitted option group, can be repeated."))
	opt.Int("offset", 0, opt.Description("Index of the first token to scan."))
	opt.SetCommandFn(Run)
	opt.HelpCommand("help", opt.Alias("?"))
	remaining, err := opt.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		fmt.Fprint(os.Stderr, "\n"+opt.Help())
		return 1
	}
	if opt.Called("debug") {
		optscan.Logger.SetOutput(os.Stderr)
	}
	if opt.Called("quiet") {
		Logger.SetOutput(io.Discard)
	}

	err = opt.Dispatch(ctx, remaining)
	if err != nil {
		if errors.Is(err, getoptions.ErrorHelpCalled) {
			return 1
		}
		Logger.Printf("ERROR: %s\n", err)
		return 1
	}
	return 0
}

// Run - scans args with the catalog given on the command line and prints the report.
func Run(ctx context.Context, opt *getoptions.GetOpt, args []string) error {
	catalog := opt.Value("catalog").(string)
	groups := opt.Value("group").([]string)
	offset := opt.Value("offset").(int)

	specs, err := catalogfile.Load(catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	p, err := optscan.New(specs...)
	if err != nil {
		return fmt.Errorf("failed to build catalog '%s': %w", catalog, err)
	}
	Logger.Printf("scanning %d tokens with %d options", len(args), len(specs))

	ok := p.Parse(args, optscan.Offset(offset), optscan.Groups(groups...))
	if !opt.Called("quiet") {
		r := newReport(p, !opt.Called("no-color"))
		fmt.Fprint(Stdout, r.String())
	}
	if !ok {
		return ErrorIllegalOptions
	}
	return nil
}
