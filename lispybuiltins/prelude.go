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
	_ "embed"
	"fmt"
	"strings"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyreader"
)

//go:embed prelude.lspy
var prelude string

// LoadPrelude reads and evaluates the standard prelude in the given
// environment. BindAll must have been called before.
func LoadPrelude(env *lispyeval.Environment) error {
	rd := lispyreader.MakeReader(strings.NewReader(prelude), lispyreader.WithName("<prelude>"))
	forms, err := rd.ReadAll()
	if err != nil {
		return err
	}
	for _, form := range forms {
		result := lispyeval.Eval(env, form)
		if errObj, isErr := lispy.GetErr(result); isErr {
			return fmt.Errorf("prelude: %s", errObj.Message)
		}
	}
	return nil
}
