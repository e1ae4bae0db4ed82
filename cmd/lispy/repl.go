//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of lispy.
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyreader"
)

const banner = "Lispy Version 0.0.1\nPress Ctrl-c or type :q to exit\n"

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// repl drives the interactive read loop over a persistent environment.
type repl struct {
	env    *lispyeval.Environment
	in     io.Reader
	out    io.Writer
	prompt string
	banner bool
}

// run reads lines until termination and returns the process exit code.
func (r *repl) run() int {
	if r.banner {
		fmt.Fprintln(r.out, bannerStyle.Render(banner))
	}
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, promptStyle.Render(r.prompt))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == ":q" {
			return 0
		}

		result, ok := r.evalLine(line)
		if !ok {
			continue
		}
		if term, isTerminate := lispyeval.GetTerminate(result); isTerminate {
			return term.Code
		}
		if errObj, isErr := lispy.GetErr(result); isErr {
			fmt.Fprintln(r.out, errorStyle.Render(errObj.String()))
			r.suggest(errObj)
			continue
		}
		_, _ = lispy.Print(r.out, result)
		fmt.Fprintln(r.out)
	}
}

// evalLine parses one input line and evaluates it as a single expression:
// the whole line forms one S-expression, so `+ 1 2 3` needs no parentheses.
func (r *repl) evalLine(line string) (lispy.Object, bool) {
	rd := lispyreader.MakeReader(strings.NewReader(line), lispyreader.WithName("<repl>"))
	forms, err := rd.ReadAll()
	if err != nil {
		fmt.Fprintln(r.out, errorStyle.Render("Error: "+err.Error()))
		return nil, false
	}
	if len(forms) == 0 {
		return nil, false
	}
	return lispyeval.Eval(r.env, lispy.MakeSExpr(forms...)), true
}

const unboundPrefix = "Unbound symbol '"

// suggest prints "did you mean" candidates for an unbound symbol, fuzzy
// matched over everything currently bound. When no bound name contains the
// typed name, the bound names contained in the typed name are offered.
func (r *repl) suggest(errObj *lispy.Err) {
	msg := errObj.Message
	if !strings.HasPrefix(msg, unboundPrefix) {
		return
	}
	name := strings.TrimSuffix(msg[len(unboundPrefix):], "'")
	symbols := r.env.Symbols()
	var candidates []string
	for _, m := range fuzzy.Find(name, symbols) {
		candidates = append(candidates, m.Str)
	}
	if len(candidates) == 0 {
		for _, sym := range symbols {
			if len(fuzzy.Find(sym, []string{name})) > 0 {
				candidates = append(candidates, sym)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	fmt.Fprintln(r.out, hintStyle.Render("Did you mean: "+strings.Join(candidates, ", ")+"?"))
}
