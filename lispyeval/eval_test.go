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
	"testing"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// plusFn sums its numeric arguments, enough builtin for the caller tests.
func plusFn(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Object {
	acc := int64(0)
	for obj := range args.Values() {
		n, ok := lispy.GetNumber(obj)
		if !ok {
			return lispy.MakeErr("not a number: %v", obj)
		}
		acc += n.GetValue()
	}
	return lispy.MakeNumber(acc)
}

func makePlusEnv() *lispyeval.Environment {
	env := lispyeval.MakeRootEnvironment()
	env.Put(lispy.MakeSymbol("+"), lispyeval.MakeBuiltin("+", plusFn))
	return env
}

func TestEvalSelfEvaluating(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	objs := []lispy.Object{
		lispy.MakeNumber(5),
		lispy.MakeString("hi"),
		lispy.MakeBoolean(true),
		lispy.MakeQExpr(lispy.MakeSymbol("x")),
	}
	for _, obj := range objs {
		if got := lispyeval.Eval(env, obj); !got.IsEqual(obj) {
			t.Errorf("%v must evaluate to itself, but got %v", obj, got)
		}
	}
}

func TestEvalSymbol(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	env.Put(lispy.MakeSymbol("x"), lispy.MakeNumber(10))
	if got := lispyeval.Eval(env, lispy.MakeSymbol("x")); !got.IsEqual(lispy.MakeNumber(10)) {
		t.Errorf("expected 10, but got %v", got)
	}

	got := lispyeval.Eval(env, lispy.MakeSymbol("y"))
	errObj, isErr := lispy.GetErr(got)
	if !isErr {
		t.Fatalf("expected an error, but got %v", got)
	}
	if exp := "Unbound symbol 'y'"; errObj.Message != exp {
		t.Errorf("expected %q, but got %q", exp, errObj.Message)
	}
}

func TestEvalSExprRules(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()

	if got := lispyeval.Eval(env, lispy.MakeSExpr()); got.String() != "()" {
		t.Errorf("the empty S-expression is the unit value, but got %v", got)
	}
	if got := lispyeval.Eval(env, lispy.MakeSExpr(lispy.MakeNumber(3))); !got.IsEqual(lispy.MakeNumber(3)) {
		t.Errorf("a single child is unwrapped, but got %v", got)
	}

	expr := lispy.MakeSExpr(lispy.MakeSymbol("+"), lispy.MakeNumber(1), lispy.MakeNumber(2))
	if got := lispyeval.Eval(env, expr); !got.IsEqual(lispy.MakeNumber(3)) {
		t.Errorf("expected 3, but got %v", got)
	}

	bad := lispy.MakeSExpr(lispy.MakeNumber(1), lispy.MakeNumber(2))
	got := lispyeval.Eval(env, bad)
	errObj, isErr := lispy.GetErr(got)
	if !isErr {
		t.Fatalf("expected an error, but got %v", got)
	}
	exp := "S-Expression starts with incorrect type. Got Number, Expected Function."
	if errObj.Message != exp {
		t.Errorf("expected %q, but got %q", exp, errObj.Message)
	}
}

func TestEvalErrorShortCircuit(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()
	expr := lispy.MakeSExpr(
		lispy.MakeSymbol("+"),
		lispy.MakeSymbol("nope"),
		lispy.MakeSymbol("alsonope"),
	)
	got := lispyeval.Eval(env, expr)
	errObj, isErr := lispy.GetErr(got)
	if !isErr {
		t.Fatalf("expected an error, but got %v", got)
	}
	if exp := "Unbound symbol 'nope'"; errObj.Message != exp {
		t.Errorf("the first error must win, expected %q, but got %q", exp, errObj.Message)
	}
}

func makeLambdaValue(env *lispyeval.Environment, formals ...string) *lispyeval.Function {
	fs := lispy.MakeQExpr()
	for _, f := range formals {
		fs.Append(lispy.MakeSymbol(f))
	}
	body := lispy.MakeQExpr(lispy.MakeSymbol("+"), lispy.MakeSymbol("x"), lispy.MakeSymbol("y"))
	return lispyeval.MakeLambda(env, fs, body)
}

func TestCallFullApplication(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()
	fn := makeLambdaValue(env, "x", "y")
	args := lispy.MakeSExpr(lispy.MakeNumber(3), lispy.MakeNumber(4))
	if got := lispyeval.Call(env, fn, args); !got.IsEqual(lispy.MakeNumber(7)) {
		t.Errorf("expected 7, but got %v", got)
	}
}

func TestCallPartialApplication(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()
	fn := makeLambdaValue(env, "x", "y")
	partial := lispyeval.Call(env, fn, lispy.MakeSExpr(lispy.MakeNumber(3)))
	pfn, isFunction := lispyeval.GetFunction(partial)
	if !isFunction {
		t.Fatalf("expected a function, but got %v", partial)
	}
	if got := pfn.Formals().Length(); got != 1 {
		t.Fatalf("one formal must remain, but got %d", got)
	}
	if got := lispyeval.Call(env, pfn, lispy.MakeSExpr(lispy.MakeNumber(4))); !got.IsEqual(lispy.MakeNumber(7)) {
		t.Errorf("expected 7, but got %v", got)
	}
}

func TestCallTooManyArgs(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()
	fn := makeLambdaValue(env, "x", "y")
	args := lispy.MakeSExpr(lispy.MakeNumber(1), lispy.MakeNumber(2), lispy.MakeNumber(3))
	got := lispyeval.Call(env, fn, args)
	errObj, isErr := lispy.GetErr(got)
	if !isErr {
		t.Fatalf("expected an error, but got %v", got)
	}
	exp := "Function passed too many arguments. Got 3, Expected 2."
	if errObj.Message != exp {
		t.Errorf("expected %q, but got %q", exp, errObj.Message)
	}
}

func TestCallVariadic(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	// (\ {x & rest} {rest}) returns the collected remaining actuals.
	formals := lispy.MakeQExpr(
		lispy.MakeSymbol("x"), lispy.MakeSymbol("&"), lispy.MakeSymbol("rest"))
	body := lispy.MakeQExpr(lispy.MakeSymbol("rest"))
	fn := lispyeval.MakeLambda(env, formals, body)

	args := lispy.MakeSExpr(lispy.MakeNumber(1), lispy.MakeNumber(2), lispy.MakeNumber(3))
	got := lispyeval.Call(env, fn, args)
	exp := lispy.MakeQExpr(lispy.MakeNumber(2), lispy.MakeNumber(3))
	if !got.IsEqual(exp) {
		t.Errorf("expected {2 3}, but got %v", got)
	}

	fn2 := lispyeval.MakeLambda(env,
		lispy.MakeQExpr(lispy.MakeSymbol("x"), lispy.MakeSymbol("&"), lispy.MakeSymbol("rest")),
		lispy.MakeQExpr(lispy.MakeSymbol("rest")))
	got = lispyeval.Call(env, fn2, lispy.MakeSExpr(lispy.MakeNumber(1)))
	if !got.IsEqual(lispy.MakeQExpr()) {
		t.Errorf("a missing variadic tail binds the empty list, but got %v", got)
	}
}

func TestCallCapturesDefiningScope(t *testing.T) {
	t.Parallel()

	env := makePlusEnv()
	outer := lispyeval.MakeChildEnvironment(env)
	outer.Put(lispy.MakeSymbol("x"), lispy.MakeNumber(3))

	// Lambda made inside outer: its body sees the captured x even though the
	// call site knows nothing about it.
	fn := lispyeval.MakeLambda(outer,
		lispy.MakeQExpr(lispy.MakeSymbol("y")),
		lispy.MakeQExpr(lispy.MakeSymbol("+"), lispy.MakeSymbol("x"), lispy.MakeSymbol("y")))

	// Call consumes the function value, so apply clones, the way the
	// evaluator hands out cloned bindings.
	cl := fn.Clone().(*lispyeval.Function)
	if got := lispyeval.Call(env, cl, lispy.MakeSExpr(lispy.MakeNumber(4))); !got.IsEqual(lispy.MakeNumber(7)) {
		t.Errorf("expected 7, but got %v", got)
	}

	// Rebinding x afterwards must not change the captured value.
	outer.Put(lispy.MakeSymbol("x"), lispy.MakeNumber(100))
	cl = fn.Clone().(*lispyeval.Function)
	if got := lispyeval.Call(env, cl, lispy.MakeSExpr(lispy.MakeNumber(4))); !got.IsEqual(lispy.MakeNumber(7)) {
		t.Errorf("the capture is by value, expected 7, but got %v", got)
	}
}

func TestFunctionIsEqual(t *testing.T) {
	t.Parallel()

	b1 := lispyeval.MakeBuiltin("head", plusFn)
	b2 := lispyeval.MakeBuiltin("head", plusFn)
	b3 := lispyeval.MakeBuiltin("tail", plusFn)
	if !b1.IsEqual(b2) {
		t.Error("builtins compare by handle label")
	}
	if b1.IsEqual(b3) {
		t.Error("different builtins compare unequal")
	}

	env := lispyeval.MakeRootEnvironment()
	l1 := makeLambdaValue(env, "x", "y")
	l2 := makeLambdaValue(env, "x", "y")
	l3 := makeLambdaValue(env, "a", "b")
	if !l1.IsEqual(l2) {
		t.Error("lambdas compare by formals and body")
	}
	if l1.IsEqual(l3) {
		t.Error("different formals compare unequal")
	}
	if b1.IsEqual(l1) {
		t.Error("a builtin never equals a lambda")
	}
}

func TestFunctionPrint(t *testing.T) {
	t.Parallel()

	b := lispyeval.MakeBuiltin("head", plusFn)
	if got := b.String(); got != "#<builtin:head>" {
		t.Errorf("expected #<builtin:head>, but got %q", got)
	}

	env := lispyeval.MakeRootEnvironment()
	fn := lispyeval.MakeLambda(env,
		lispy.MakeQExpr(lispy.MakeSymbol("x")),
		lispy.MakeQExpr(lispy.MakeSymbol("x")))
	if got := fn.String(); got != "(\\ {x} {x})" {
		t.Errorf("expected (\\ {x} {x}), but got %q", got)
	}
}

func TestTerminatePropagates(t *testing.T) {
	t.Parallel()

	env := lispyeval.MakeRootEnvironment()
	env.Put(lispy.MakeSymbol("quit"), lispyeval.MakeBuiltin("quit",
		func(*lispyeval.Environment, *lispy.SExpr) lispy.Object {
			return lispyeval.MakeTerminate(2)
		}))
	expr := lispy.MakeSExpr(
		lispy.MakeSExpr(lispy.MakeSymbol("quit"), lispy.MakeNumber(0)),
		lispy.MakeNumber(1),
	)
	got := lispyeval.Eval(env, expr)
	term, isTerminate := lispyeval.GetTerminate(got)
	if !isTerminate {
		t.Fatalf("expected a terminate signal, but got %v", got)
	}
	if term.Code != 2 {
		t.Errorf("expected exit code 2, but got %d", term.Code)
	}
}
