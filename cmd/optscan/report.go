// This file is part of optscan.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/optscan"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	illegalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	argStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	infoStyle    = lipgloss.NewStyle().Faint(true)
)

type report struct {
	p     *optscan.Processor
	color bool
}

func newReport(p *optscan.Processor, color bool) *report {
	return &report{p: p, color: color}
}

func (r *report) style(s lipgloss.Style, str string) string {
	if !r.color {
		return str
	}
	return s.Render(str)
}

func (r *report) String() string {
	var b strings.Builder

	b.WriteString(r.style(headerStyle, "options:") + "\n")
	for _, o := range r.p.Parsed() {
		line := fmt.Sprintf("%3d %s", o.Index, r.p.Spec(o).HelpSynopsis)
		switch o.Param.Kind() {
		case optscan.ParamNone:
		case optscan.ParamSingle:
			v, _ := o.Param.Single()
			line += fmt.Sprintf(" = %q", v)
		case optscan.ParamList:
			line += fmt.Sprintf(" = %q", o.Param.List())
		}
		if o.Adjoining {
			line += " (adjoining)"
		}
		b.WriteString("  " + r.style(optionStyle, line) + "\n")
	}

	b.WriteString(r.style(headerStyle, "illegal:") + "\n")
	for _, o := range r.p.Illegal() {
		line := fmt.Sprintf("%3d %s: %s", o.Index, o.Kind, o.Error())
		b.WriteString("  " + r.style(illegalStyle, line) + "\n")
	}

	b.WriteString(r.style(headerStyle, "arguments:") + "\n")
	for _, a := range r.p.NonOptions() {
		b.WriteString("  " + r.style(argStyle, fmt.Sprintf("%3d %q", a.Index, a.Text)) + "\n")
	}

	idx, reason := r.p.Stop()
	b.WriteString(r.style(infoStyle, fmt.Sprintf("stopped: %s at %d", reason, idx)) + "\n")
	if unprocessed := r.p.Unprocessed(); len(unprocessed) > 0 {
		b.WriteString(r.style(infoStyle, fmt.Sprintf("unprocessed: %q", unprocessed)) + "\n")
	}
	return b.String()
}
