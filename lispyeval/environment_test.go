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

package lispyeval_test

import (
	"slices"
	"testing"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

func TestEnvironmentGetPut(t *testing.T) {
	t.Parallel()

	root := lispyeval.MakeRootEnvironment()
	child := lispyeval.MakeChildEnvironment(root)

	symX := lispy.MakeSymbol("x")
	root.Put(symX, lispy.MakeNumber(1))
	if obj, found := child.Get(symX); !found || !obj.IsEqual(lispy.MakeNumber(1)) {
		t.Error("lookup must walk the parent chain")
	}

	child.Put(symX, lispy.MakeNumber(2))
	if obj, _ := child.Get(symX); !obj.IsEqual(lispy.MakeNumber(2)) {
		t.Error("a local binding shadows the parent")
	}
	if obj, _ := root.Get(symX); !obj.IsEqual(lispy.MakeNumber(1)) {
		t.Error("a local binding must not touch the parent")
	}

	if _, found := child.Get(lispy.MakeSymbol("y")); found {
		t.Error("an unbound symbol must not be found")
	}
}

func TestEnvironmentDefine(t *testing.T) {
	t.Parallel()

	root := lispyeval.MakeRootEnvironment()
	mid := lispyeval.MakeChildEnvironment(root)
	leaf := lispyeval.MakeChildEnvironment(mid)

	leaf.Define(lispy.MakeSymbol("g"), lispy.MakeNumber(7))
	if obj, found := root.Get(lispy.MakeSymbol("g")); !found || !obj.IsEqual(lispy.MakeNumber(7)) {
		t.Error("define must bind in the root environment")
	}
}

func TestEnvironmentCloneOnRead(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	symQ := lispy.MakeSymbol("q")
	env.Put(symQ, lispy.MakeQExpr(lispy.MakeNumber(1)))

	obj, _ := env.Get(symQ)
	q := obj.(*lispy.QExpr)
	q.Append(lispy.MakeNumber(2))

	again, _ := env.Get(symQ)
	if !again.IsEqual(lispy.MakeQExpr(lispy.MakeNumber(1))) {
		t.Error("mutating a read-out value must not change the stored one")
	}
}

func TestEnvironmentCloneOnWrite(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	symQ := lispy.MakeSymbol("q")
	q := lispy.MakeQExpr(lispy.MakeNumber(1))
	env.Put(symQ, q)
	q.Append(lispy.MakeNumber(2))

	obj, _ := env.Get(symQ)
	if !obj.IsEqual(lispy.MakeQExpr(lispy.MakeNumber(1))) {
		t.Error("mutating the written value must not change the stored one")
	}
}

func TestEnvironmentClone(t *testing.T) {
	t.Parallel()

	root := lispyeval.MakeRootEnvironment()
	env := lispyeval.MakeChildEnvironment(root)
	symX := lispy.MakeSymbol("x")
	env.Put(symX, lispy.MakeNumber(1))

	cpy := env.Clone()
	cpy.Put(symX, lispy.MakeNumber(2))
	if obj, _ := env.Get(symX); !obj.IsEqual(lispy.MakeNumber(1)) {
		t.Error("a cloned environment must not share its table")
	}
	if cpy.Parent() != root {
		t.Error("a cloned environment shares its parent")
	}
}

func TestEnvironmentSymbols(t *testing.T) {
	t.Parallel()

	root := lispyeval.MakeRootEnvironment()
	root.Put(lispy.MakeSymbol("b"), lispy.MakeNumber(1))
	env := lispyeval.MakeChildEnvironment(root)
	env.Put(lispy.MakeSymbol("a"), lispy.MakeNumber(2))
	env.Put(lispy.MakeSymbol("b"), lispy.MakeNumber(3))

	if got := env.Symbols(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], but got %v", got)
	}
}
