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

// Contains the ordering, equality and conditional builtins.

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// Gt returns 1 if the first number is greater than the second, else 0.
var Gt = Builtin{Name: ">", Fn: makeOrdOp(">")}

// Lt returns 1 if the first number is less than the second, else 0.
var Lt = Builtin{Name: "<", Fn: makeOrdOp("<")}

// Ge returns 1 if the first number is at least the second, else 0.
var Ge = Builtin{Name: ">=", Fn: makeOrdOp(">=")}

// Le returns 1 if the first number is at most the second, else 0.
var Le = Builtin{Name: "<=", Fn: makeOrdOp("<=")}

func makeOrdOp(name string) lispyeval.BuiltinFn {
	return func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity(name, args, 2); err != nil {
			return err
		}
		left, err := assertNumber(name, args, 0)
		if err != nil {
			return err
		}
		right, err := assertNumber(name, args, 1)
		if err != nil {
			return err
		}
		var result bool
		switch name {
		case ">":
			result = left > right
		case "<":
			result = left < right
		case ">=":
			result = left >= right
		case "<=":
			result = left <= right
		}
		if result {
			return lispy.MakeNumber(1)
		}
		return lispy.MakeNumber(0)
	}
}

// Eq returns 1 if both arguments are structurally equal, else 0. Values of
// different variants compare unequal.
var Eq = Builtin{
	Name: "==",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("==", args, 2); err != nil {
			return err
		}
		if args.At(0).IsEqual(args.At(1)) {
			return lispy.MakeNumber(1)
		}
		return lispy.MakeNumber(0)
	},
}

// Ne returns the complement of Eq.
var Ne = Builtin{
	Name: "!=",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("!=", args, 2); err != nil {
			return err
		}
		if args.At(0).IsEqual(args.At(1)) {
			return lispy.MakeNumber(0)
		}
		return lispy.MakeNumber(1)
	},
}

// If evaluates its second argument when the condition is true, otherwise its
// third. Both branches are Q-expressions.
var If = Builtin{
	Name: "if",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("if", args, 3); err != nil {
			return err
		}
		truth, err := assertTruth("if", args, 0)
		if err != nil {
			return err
		}
		if _, err = assertQExpr("if", args, 1); err != nil {
			return err
		}
		if _, err = assertQExpr("if", args, 2); err != nil {
			return err
		}

		branch := args.At(1)
		if !truth {
			branch = args.At(2)
		}
		q, _ := lispy.GetQExpr(branch)
		return lispyeval.Eval(env, q.AsSExpr())
	},
}
