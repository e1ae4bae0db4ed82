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

// Contains all builtins that bind values to symbols.

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// Def binds symbols in the root environment.
var Def = Builtin{
	Name: "def",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		return bindVars(env, args, "def")
	},
}

// Put binds symbols in the current environment.
var Put = Builtin{
	Name: "=",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		return bindVars(env, args, "=")
	},
}

// bindVars binds each symbol of the first argument to the corresponding
// remaining value. "def" targets the root environment, "=" the current one.
func bindVars(env *lispyeval.Environment, args *lispy.SExpr, name string) lispy.Object {
	if args.Length() == 0 {
		return errArity(name, 0, 1)
	}
	syms, err := assertQExpr(name, args, 0)
	if err != nil {
		return err
	}
	for obj := range syms.Values() {
		if _, isSymbol := lispy.GetSymbol(obj); !isSymbol {
			return lispy.MakeErr(
				"Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				name, lispy.TypeName(obj), "Symbol")
		}
	}
	if syms.Length() != args.Length()-1 {
		return lispy.MakeErr(
			"Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
			name, args.Length()-1, syms.Length())
	}

	for i := 0; i < syms.Length(); i++ {
		sym, _ := lispy.GetSymbol(syms.At(i))
		val := args.At(i + 1)
		if name == "def" {
			env.Define(sym, val)
		} else {
			env.Put(sym, val)
		}
	}
	return lispy.MakeSExpr()
}

// Fun defines a named lambda in the root environment:
// (fun {name formals...} {body}) is (def {name} (\ {formals...} {body})).
var Fun = Builtin{
	Name: "fun",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("fun", args, 2); err != nil {
			return err
		}
		sig, err := assertQExpr("fun", args, 0)
		if err != nil {
			return err
		}
		body, err := assertQExpr("fun", args, 1)
		if err != nil {
			return err
		}
		if sig.Length() == 0 {
			return errEmpty("fun")
		}
		name, isSymbol := lispy.GetSymbol(sig.At(0))
		if !isSymbol {
			return lispy.MakeErr(
				"Function 'fun' cannot define non-symbol. Got %s, Expected %s.",
				lispy.TypeName(sig.At(0)), "Symbol")
		}
		sig.Pop(0)
		fn, errObj := makeLambda(env, sig, body)
		if errObj != nil {
			return errObj
		}
		env.Define(name, fn)
		return lispy.MakeSExpr()
	},
}
