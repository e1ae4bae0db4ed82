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

// Contains all builtins that work on Q-expressions.

import (
	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// List wraps its evaluated arguments into a Q-expression.
var List = Builtin{
	Name: "list",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		return args.AsQExpr()
	},
}

// Head returns a Q-expression containing only the first element of its
// argument. The list-preserving form: (head {1 2 3}) is {1}.
var Head = Builtin{
	Name: "head",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("head", args, 1); err != nil {
			return err
		}
		q, err := assertQExpr("head", args, 0)
		if err != nil {
			return err
		}
		if q.Length() == 0 {
			return errEmpty("head")
		}
		return lispy.MakeQExpr(q.Pop(0))
	},
}

// Tail returns its argument without the first element.
var Tail = Builtin{
	Name: "tail",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("tail", args, 1); err != nil {
			return err
		}
		q, err := assertQExpr("tail", args, 0)
		if err != nil {
			return err
		}
		if q.Length() == 0 {
			return errEmpty("tail")
		}
		q.Pop(0)
		return q
	},
}

// Join concatenates its Q-expression arguments left-to-right.
var Join = Builtin{
	Name: "join",
	Fn: func(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		for i := 0; i < args.Length(); i++ {
			if _, err := assertQExpr("join", args, i); err != nil {
				return err
			}
		}
		if args.Length() == 0 {
			return lispy.MakeQExpr()
		}
		result, _ := lispy.GetQExpr(args.Pop(0))
		for args.Length() > 0 {
			next, _ := lispy.GetQExpr(args.Pop(0))
			result.Extend(next)
		}
		return result
	},
}

// EvalQ re-tags a Q-expression as an S-expression and evaluates it.
var EvalQ = Builtin{
	Name: "eval",
	Fn: func(env *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
		if err := assertArity("eval", args, 1); err != nil {
			return err
		}
		q, err := assertQExpr("eval", args, 0)
		if err != nil {
			return err
		}
		return lispyeval.Eval(env, q.AsSExpr())
	},
}
