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

package lispyeval

import "t73f.de/r/lispy"

// Eval reduces a value to a value. Symbols resolve in the environment,
// S-expressions are applied, everything else evaluates to itself.
func Eval(env *Environment, obj lispy.Object) lispy.Object {
	switch o := obj.(type) {
	case lispy.Symbol:
		if val, found := env.Get(o); found {
			return val
		}
		return lispy.MakeErr("Unbound symbol '%s'", o.Name())
	case *lispy.SExpr:
		return evalSExpr(env, o)
	}
	return obj
}

// isControl reports whether the object aborts the evaluation of the
// containing expression.
func isControl(obj lispy.Object) bool {
	switch obj.(type) {
	case *lispy.Err, *Terminate:
		return true
	}
	return false
}

// evalSExpr evaluates the children strictly left-to-right and applies the
// head to the tail.
func evalSExpr(env *Environment, sexpr *lispy.SExpr) lispy.Object {
	for i := 0; i < sexpr.Length(); i++ {
		val := Eval(env, sexpr.At(i))
		if isControl(val) {
			return val
		}
		sexpr.SetAt(i, val)
	}

	if sexpr.Length() == 0 {
		return sexpr
	}
	if sexpr.Length() == 1 {
		return sexpr.Pop(0)
	}

	head := sexpr.Pop(0)
	fn, isFunction := GetFunction(head)
	if !isFunction {
		return lispy.MakeErr(
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			lispy.TypeName(head), "Function")
	}
	return Call(env, fn, sexpr)
}

// Call binds the arguments to the function's formals. Builtins receive the
// calling environment and the argument list directly. A lambda that received
// all its arguments is evaluated with its environment chained to the call
// site; one that received fewer is returned as a partially applied value.
//
// The caller owns both fn and args; both are consumed.
func Call(env *Environment, fn *Function, args *lispy.SExpr) lispy.Object {
	if fn.IsBuiltin() {
		return fn.builtin(env, args)
	}

	given, total := args.Length(), fn.formals.Length()
	for args.Length() > 0 {
		if fn.formals.Length() == 0 {
			return lispy.MakeErr(
				"Function passed too many arguments. Got %d, Expected %d.",
				given, total)
		}

		sym, isSymbol := lispy.GetSymbol(fn.formals.Pop(0))
		if !isSymbol {
			return lispy.MakeErr("Function formal is not a %s.", "Symbol")
		}

		if sym == lispy.SymbolAmpersand {
			// The single formal after '&' takes all remaining actuals.
			if fn.formals.Length() != 1 {
				return lispy.MakeErr(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest, isSymbol2 := lispy.GetSymbol(fn.formals.Pop(0))
			if !isSymbol2 {
				return lispy.MakeErr(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			fn.env.Put(rest, args.AsQExpr())
			break
		}

		fn.env.Put(sym, args.Pop(0))
	}

	// A trailing '&' with no supplied actuals binds the empty list.
	if fn.formals.Length() > 0 &&
		fn.formals.At(0).IsEqual(lispy.SymbolAmpersand) {
		if fn.formals.Length() != 2 {
			return lispy.MakeErr(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		fn.formals.Pop(0)
		rest, isSymbol := lispy.GetSymbol(fn.formals.Pop(0))
		if !isSymbol {
			return lispy.MakeErr(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		fn.env.Put(rest, lispy.MakeQExpr())
	}

	if fn.formals.Length() == 0 {
		fn.env.SetParent(env)
		body := fn.body.Clone().(*lispy.QExpr)
		return evalSExpr(fn.env, body.AsSExpr())
	}
	return fn
}
