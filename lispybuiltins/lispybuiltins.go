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

// Package lispybuiltins provides the builtin operator set of the Lispy
// language.
package lispybuiltins

import (
	"io"
	"os"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// Builtin associates a bound name with a handler function.
type Builtin struct {
	Name string
	Fn   lispyeval.BuiltinFn
}

// BindBuiltins binds the given builtins in the environment.
func BindBuiltins(env *lispyeval.Environment, bs ...*Builtin) {
	for _, b := range bs {
		env.Put(lispy.MakeSymbol(b.Name), lispyeval.MakeBuiltin(b.Name, b.Fn))
	}
}

// BindAll binds the whole operator set plus the boolean constants in the
// given environment. The writer receives the output of print, print-env and
// the error reporting of load; nil selects standard output.
func BindAll(env *lispyeval.Environment, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	BindBuiltins(env,
		&Add, &Sub, &Mul, &Div,
		&List, &Head, &Tail, &Join, &EvalQ,
		&Def, &Put, &Lambda, &Fun,
		&Gt, &Lt, &Ge, &Le, &Eq, &Ne, &If,
		&And, &Or, &Not, &Bool,
		&Error, &Exit,
	)
	BindBuiltins(env, makeLoad(w), makePrint(w), makePrintEnv(w))
	env.Put(lispy.MakeSymbol("true"), lispy.MakeBoolean(true))
	env.Put(lispy.MakeSymbol("false"), lispy.MakeBoolean(false))
}

// --- assertion helpers, the diagnostics every builtin reports with.

func errArity(name string, got, want int) *lispy.Err {
	return lispy.MakeErr(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		name, got, want)
}

func errType(name string, index int, got lispy.Object, want string) *lispy.Err {
	return lispy.MakeErr(
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		name, index, lispy.TypeName(got), want)
}

func errEmpty(name string) *lispy.Err {
	return lispy.MakeErr("Function '%s' passed {}!", name)
}

func assertArity(name string, args *lispy.SExpr, want int) *lispy.Err {
	if got := args.Length(); got != want {
		return errArity(name, got, want)
	}
	return nil
}

func assertQExpr(name string, args *lispy.SExpr, index int) (*lispy.QExpr, *lispy.Err) {
	obj := args.At(index)
	q, isQExpr := lispy.GetQExpr(obj)
	if !isQExpr {
		return nil, errType(name, index+1, obj, "Q-Expression")
	}
	return q, nil
}

func assertNumber(name string, args *lispy.SExpr, index int) (lispy.Number, *lispy.Err) {
	obj := args.At(index)
	n, isNumber := lispy.GetNumber(obj)
	if !isNumber {
		return 0, errType(name, index+1, obj, "Number")
	}
	return n, nil
}

func assertString(name string, args *lispy.SExpr, index int) (lispy.String, *lispy.Err) {
	obj := args.At(index)
	s, isString := lispy.GetString(obj)
	if !isString {
		return lispy.String{}, errType(name, index+1, obj, "String")
	}
	return s, nil
}

func assertTruth(name string, args *lispy.SExpr, index int) (bool, *lispy.Err) {
	obj := args.At(index)
	truth, ok := lispy.GetTruth(obj)
	if !ok {
		return false, errType(name, index+1, obj, "Number")
	}
	return truth, nil
}
