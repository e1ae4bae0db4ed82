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

// Package lispyeval evaluates Lispy values within environments.
package lispyeval

import (
	"io"
	"slices"

	"t73f.de/r/lispy"
)

// Environment maintains a mapping between symbol names and values, with an
// optional parent environment. Lookup walks the parent chain. Values are
// cloned on read and on write, so an environment never shares structure with
// its users.
type Environment struct {
	parent *Environment
	vars   map[string]lispy.Object
}

// MakeRootEnvironment creates a new environment without a parent.
func MakeRootEnvironment() *Environment {
	return &Environment{vars: make(map[string]lispy.Object, 64)}
}

// MakeChildEnvironment creates a new environment with the given parent.
func MakeChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]lispy.Object, 4)}
}

// Parent returns the parent environment, or nil for the root.
func (env *Environment) Parent() *Environment {
	if env == nil {
		return nil
	}
	return env.parent
}

// SetParent replaces the parent environment. The caller reassigns the parent
// of a function's environment at full application.
func (env *Environment) SetParent(parent *Environment) { env.parent = parent }

// IsRoot returns true for an environment without a parent.
func (env *Environment) IsRoot() bool { return env == nil || env.parent == nil }

// Root returns the last ancestor of the environment chain.
func (env *Environment) Root() *Environment {
	e := env
	for e.parent != nil {
		e = e.parent
	}
	return e
}

// Get looks up the symbol along the parent chain. It returns a deep clone of
// the bound value.
func (env *Environment) Get(sym lispy.Symbol) (lispy.Object, bool) {
	name := sym.Name()
	for e := env; e != nil; e = e.parent {
		if obj, found := e.vars[name]; found {
			return obj.Clone(), true
		}
	}
	return nil, false
}

// Put creates or replaces a binding in this environment. A deep clone of the
// value is stored.
func (env *Environment) Put(sym lispy.Symbol, obj lispy.Object) {
	env.vars[sym.Name()] = obj.Clone()
}

// Define creates or replaces a binding in the root environment.
func (env *Environment) Define(sym lispy.Symbol, obj lispy.Object) {
	env.Root().Put(sym, obj)
}

// Clone returns a copy of the environment. The bound values are cloned, the
// parent reference is shared.
func (env *Environment) Clone() *Environment {
	if env == nil {
		return nil
	}
	vars := make(map[string]lispy.Object, len(env.vars))
	for name, obj := range env.vars {
		vars[name] = obj.Clone()
	}
	return &Environment{parent: env.parent, vars: vars}
}

// Symbols returns the names bound along the whole chain, sorted and without
// duplicates.
func (env *Environment) Symbols() []string {
	seen := make(map[string]struct{})
	var result []string
	for e := env; e != nil; e = e.parent {
		for name := range e.vars {
			if _, found := seen[name]; !found {
				seen[name] = struct{}{}
				result = append(result, name)
			}
		}
	}
	slices.Sort(result)
	return result
}

// LocalSymbols returns the names bound in this environment only, sorted.
func (env *Environment) LocalSymbols() []string {
	result := make([]string, 0, len(env.vars))
	for name := range env.vars {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

// PrintBindings writes all local bindings, one "name value" line each, in
// sorted name order.
func (env *Environment) PrintBindings(w io.Writer) (int, error) {
	length := 0
	for _, name := range env.LocalSymbols() {
		l, err := lispy.WriteStrings(w, name, " ")
		length += l
		if err != nil {
			return length, err
		}
		l, err = lispy.Print(w, env.vars[name])
		length += l
		if err != nil {
			return length, err
		}
		l, err = io.WriteString(w, "\n")
		length += l
		if err != nil {
			return length, err
		}
	}
	return length, nil
}
