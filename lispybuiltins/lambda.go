//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of lispy.
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

package lispybuiltins

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/zero/set"
)

// Lambda constructs a function value from a formals list and a body.
var Lambda = Builtin{
	Name: "\\",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("\\", args, 2); err != nil {
			return err
		}
		formals, err := assertQExpr("\\", args, 0)
		if err != nil {
			return err
		}
		body, err := assertQExpr("\\", args, 1)
		if err != nil {
			return err
		}
		fn, errObj := makeLambda(env, formals, body)
		if errObj != nil {
			return errObj
		}
		return fn
	},
}

// makeLambda validates the formals and builds the lambda value. The variadic
// marker may appear at most once and must be followed by exactly one symbol.
func makeLambda(env *lispyeval.Environment, formals, body *lispy.QExpr) (*lispyeval.Function, *lispy.Err) {
	names := make([]string, 0, formals.Length())
	for i := 0; i < formals.Length(); i++ {
		sym, isSymbol := lispy.GetSymbol(formals.At(i))
		if !isSymbol {
			return nil, lispy.MakeErr(
				"Cannot define non-symbol. Got %s, Expected %s.",
				lispy.TypeName(formals.At(i)), "Symbol")
		}
		if sym == lispy.SymbolAmpersand {
			if i != formals.Length()-2 {
				return nil, lispy.MakeErr(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			continue
		}
		names = append(names, sym.Name())
	}
	if set.New(names...).Length() != len(names) {
		return nil, lispy.MakeErr("Function format invalid. Duplicate symbol in formals.")
	}
	return lispyeval.MakeLambda(env, formals, body), nil
}
