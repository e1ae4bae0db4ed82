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

// Contains the boolean builtins. And/Or decide at the first decisive
// operand.

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// And returns true if no argument is false.
var And = Builtin{
	Name: "and",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if args.Length() == 0 {
			return errArity("and", 0, 1)
		}
		for i := 0; i < args.Length(); i++ {
			truth, err := assertTruth("and", args, i)
			if err != nil {
				return err
			}
			if !truth {
				return lispy.MakeBoolean(false)
			}
		}
		return lispy.MakeBoolean(true)
	},
}

// Or returns true if any argument is true.
var Or = Builtin{
	Name: "or",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if args.Length() == 0 {
			return errArity("or", 0, 1)
		}
		for i := 0; i < args.Length(); i++ {
			truth, err := assertTruth("or", args, i)
			if err != nil {
				return err
			}
			if truth {
				return lispy.MakeBoolean(true)
			}
		}
		return lispy.MakeBoolean(false)
	},
}

// Not negates the truth value of its argument.
var Not = Builtin{
	Name: "not",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("not", args, 1); err != nil {
			return err
		}
		truth, err := assertTruth("not", args, 0)
		if err != nil {
			return err
		}
		return lispy.MakeBoolean(!truth)
	},
}

// Bool converts a number to its truth value; booleans pass through.
var Bool = Builtin{
	Name: "bool",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("bool", args, 1); err != nil {
			return err
		}
		truth, err := assertTruth("bool", args, 0)
		if err != nil {
			return err
		}
		return lispy.MakeBoolean(truth)
	},
}
