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

// Package lispy provides the runtime values of the Lispy language.
package lispy

import (
	"fmt"
	"io"
)

// Object is the generic value every Lispy runtime object must fulfill.
type Object interface {
	fmt.Stringer

	// IsNil checks if the concrete object is nil.
	IsNil() bool

	// IsAtom returns true iff the object is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for deep, structural equality.
	IsEqual(Object) bool

	// Clone returns a deep copy of the object. Values never share children
	// with their clones.
	Clone() Object

	// TypeName returns the name of the object's variant, as used in
	// diagnostics.
	TypeName() string
}

// IsNil returns true, if the given object is the nil object.
func IsNil(obj Object) bool { return obj == nil || obj.IsNil() }

// TypeName returns the variant name of the object, guarding against nil.
func TypeName(obj Object) string {
	if obj == nil {
		return "Unknown"
	}
	return obj.TypeName()
}

// Printable is an object that has a specific representation, which may be
// different to String().
type Printable interface {
	// Print emits the string representation on the given Writer.
	Print(io.Writer) (int, error)
}

// Print writes the string representation to an io.Writer.
func Print(w io.Writer, obj Object) (int, error) {
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// WriteStrings writes the given strings to the writer, returning the
// accumulated length.
func WriteStrings(w io.Writer, strs ...string) (int, error) {
	length := 0
	for _, s := range strs {
		l, err := io.WriteString(w, s)
		length += l
		if err != nil {
			return length, err
		}
	}
	return length, nil
}
