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

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// Add computes the sum of its numeric arguments.
var Add = Builtin{Name: "+", Fn: makeNumberOp("+")}

// Sub subtracts left-to-right; with a single argument it negates.
var Sub = Builtin{Name: "-", Fn: makeNumberOp("-")}

// Mul computes the product of its numeric arguments.
var Mul = Builtin{Name: "*", Fn: makeNumberOp("*")}

// Div divides left-to-right, truncating toward zero.
var Div = Builtin{Name: "/", Fn: makeNumberOp("/")}

func makeNumberOp(name string) lispyeval.BuiltinFn {
	return func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		return numberOp(name, args)
	}
}

func numberOp(name string, args *lispy.SExpr) lispy.Object {
	for i := 0; i < args.Length(); i++ {
		if _, err := assertNumber(name, args, i); err != nil {
			return err
		}
	}
	if args.Length() == 0 {
		return errArity(name, 0, 1)
	}

	acc, _ := lispy.GetNumber(args.Pop(0))
	if name == "-" && args.Length() == 0 {
		return -acc
	}

	for args.Length() > 0 {
		operand, _ := lispy.GetNumber(args.Pop(0))
		switch name {
		case "+":
			acc += operand
		case "-":
			acc -= operand
		case "*":
			acc *= operand
		case "/":
			if operand == 0 {
				return lispy.MakeErr("Division by Zero.")
			}
			acc /= operand
		}
	}
	return acc
}
