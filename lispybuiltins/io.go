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

package lispybuiltins

// Contains the builtins that talk to the host: loading source files,
// printing, raising errors and terminating the read loop.

import (
	"io"
	"os"
	"strings"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyreader"
)

// Error creates an error value with the given message.
var Error = Builtin{
	Name: "error",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("error", args, 1); err != nil {
			return err
		}
		msg, err := assertString("error", args, 0)
		if err != nil {
			return err
		}
		return lispy.MakeErr("%s", msg.GetValue())
	},
}

// Exit requests termination of the read loop, with an optional exit code.
var Exit = Builtin{
	Name: "exit",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		switch args.Length() {
		case 0:
			return lispyeval.MakeTerminate(0)
		case 1:
			code, err := assertNumber("exit", args, 0)
			if err != nil {
				return err
			}
			return lispyeval.MakeTerminate(int(code.GetValue()))
		}
		return errArity("exit", args.Length(), 1)
	},
}

// makeLoad creates the load builtin: read a source file and evaluate each
// top-level expression in sequence. Error results are written to w, the
// evaluation continues with the next expression.
func makeLoad(w io.Writer) *Builtin {
	return &Builtin{
		Name: "load",
		Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
			if err := assertArity("load", args, 1); err != nil {
				return err
			}
			path, err := assertString("load", args, 0)
			if err != nil {
				return err
			}
			return Load(env, w, path.GetValue())
		},
	}
}

// Load reads, parses and evaluates the source file at the given path.
// Evaluation errors are printed to w and skipped; a terminate signal stops
// the file and propagates to the caller.
func Load(env *lispyeval.Environment, w io.Writer, path string) lispy.Object {
	data, err := os.ReadFile(path)
	if err != nil {
		return lispy.MakeErr("Could not load Library %q: %v", path, err)
	}
	rd := lispyreader.MakeReader(strings.NewReader(string(data)), lispyreader.WithName(path))
	forms, err := rd.ReadAll()
	if err != nil {
		return lispy.MakeErr("Could not parse Library %q: %v", path, err)
	}
	for _, form := range forms {
		result := lispyeval.Eval(env, form)
		if _, isTerminate := lispyeval.GetTerminate(result); isTerminate {
			return result
		}
		if lispy.IsErr(result) {
			_, _ = lispy.Print(w, result)
			_, _ = io.WriteString(w, "\n")
		}
	}
	return lispy.MakeSExpr()
}

// makePrint creates the print builtin: each value separated by a space,
// followed by a newline.
func makePrint(w io.Writer) *Builtin {
	return &Builtin{
		Name: "print",
		Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
			first := true
			for obj := range args.Values() {
				if !first {
					_, _ = io.WriteString(w, " ")
				}
				first = false
				_, _ = lispy.Print(w, obj)
			}
			_, _ = io.WriteString(w, "\n")
			return lispy.MakeSExpr()
		},
	}
}

// makePrintEnv creates the print-env builtin: all bindings of the root
// environment, one line each.
func makePrintEnv(w io.Writer) *Builtin {
	return &Builtin{
		Name: "print-env",
		Fn: func(env *lispyeval.Environment, _ *lispy.SExpr) lispy.Object {
			_, _ = env.Root().PrintBindings(w)
			return lispy.MakeSExpr()
		},
	}
}
