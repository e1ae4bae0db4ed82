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

import (
	"io"
	"strings"

	"t73f.de/r/lispy"
)

// BuiltinFn is the type for the handler of a predefined function. It receives
// the calling environment and the already-evaluated arguments.
type BuiltinFn func(*Environment, *lispy.SExpr) lispy.Object

// Function is a callable value: either a builtin with a handler, or a lambda
// carrying formals, body and its captured environment.
type Function struct {
	name    string
	builtin BuiltinFn
	env     *Environment
	formals *lispy.QExpr
	body    *lispy.QExpr
}

// MakeBuiltin creates a builtin function value. The name is the stable label
// under which the builtin is bound.
func MakeBuiltin(name string, fn BuiltinFn) *Function {
	return &Function{name: name, builtin: fn}
}

// MakeLambda creates a lambda value with the given formals and body. The
// non-root portion of the defining environment chain is captured by value:
// the nearest binding of each name wins. Root bindings are not captured, they
// resolve at apply time through the reassigned parent.
func MakeLambda(defEnv *Environment, formals, body *lispy.QExpr) *Function {
	captured := MakeRootEnvironment()
	for e := defEnv; e != nil && !e.IsRoot(); e = e.parent {
		for name, obj := range e.vars {
			if _, found := captured.vars[name]; !found {
				captured.vars[name] = obj.Clone()
			}
		}
	}
	return &Function{env: captured, formals: formals, body: body}
}

// IsBuiltin returns true if the function is a builtin.
func (f *Function) IsBuiltin() bool { return f.builtin != nil }

// Name returns the label the builtin was bound under, or "" for lambdas.
func (f *Function) Name() string { return f.name }

// Formals returns the formals list of a lambda, or nil for builtins.
func (f *Function) Formals() *lispy.QExpr { return f.formals }

// Body returns the body of a lambda, or nil for builtins.
func (f *Function) Body() *lispy.QExpr { return f.body }

// Env returns the captured environment of a lambda, or nil for builtins.
func (f *Function) Env() *Environment { return f.env }

// IsNil checks if the concrete object is nil.
func (f *Function) IsNil() bool { return f == nil }

// IsAtom always returns true because a function is not decomposable.
func (f *Function) IsAtom() bool { return true }

// IsEqual compares two functions. Builtins compare by their handle label,
// lambdas by formals and body; captured environments are not compared.
func (f *Function) IsEqual(other lispy.Object) bool {
	if f == other {
		return true
	}
	if f == nil {
		return lispy.IsNil(other)
	}
	otherF, ok := other.(*Function)
	if !ok || otherF == nil {
		return false
	}
	if f.IsBuiltin() || otherF.IsBuiltin() {
		return f.IsBuiltin() && otherF.IsBuiltin() && f.name == otherF.name
	}
	return f.formals.IsEqual(otherF.formals) && f.body.IsEqual(otherF.body)
}

// Clone returns a copy of the function. For a lambda, formals, body and the
// captured environment are cloned.
func (f *Function) Clone() lispy.Object {
	if f == nil || f.IsBuiltin() {
		return f
	}
	return &Function{
		env:     f.env.Clone(),
		formals: f.formals.Clone().(*lispy.QExpr),
		body:    f.body.Clone().(*lispy.QExpr),
	}
}

// TypeName returns the variant name.
func (*Function) TypeName() string { return "Function" }

// String returns the string representation.
func (f *Function) String() string {
	var sb strings.Builder
	if _, err := f.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Print writes the string representation to the given Writer. Builtins print
// as a stable label, lambdas print as a lambda expression.
func (f *Function) Print(w io.Writer) (int, error) {
	if f.IsBuiltin() {
		return lispy.WriteStrings(w, "#<builtin:", f.name, ">")
	}
	length, err := io.WriteString(w, "(\\ ")
	if err != nil {
		return length, err
	}
	l, err := f.formals.Print(w)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, " ")
	length += l
	if err != nil {
		return length, err
	}
	l, err = f.body.Print(w)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, ")")
	return length + l, err
}

// GetFunction returns the object as a function, if possible.
func GetFunction(obj lispy.Object) (*Function, bool) {
	if lispy.IsNil(obj) {
		return nil, false
	}
	f, ok := obj.(*Function)
	return f, ok
}
