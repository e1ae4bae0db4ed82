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

// Command lispy provides an interpreter for the Lispy language.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"t73f.de/r/lispy"
	"t73f.de/r/lispy/lispybuiltins"
	"t73f.de/r/lispy/lispyeval"
)

type cli struct {
	Config   string   `help:"Path to the configuration file." type:"path"`
	NoBanner bool     `help:"Do not print the banner."`
	Files    []string `arg:"" optional:"" help:"Source files to load instead of starting the REPL." type:"existingfile"`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("lispy"),
		kong.Description("An interpreter for the Lispy language."),
		kong.UsageOnError(),
	)
	os.Exit(run(&args))
}

func run(args *cli) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	configPath := args.Config
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("cannot read configuration", "path", configPath, "err", err)
		return 1
	}

	env := lispyeval.MakeRootEnvironment()
	lispybuiltins.BindAll(env, os.Stdout)
	if err = lispybuiltins.LoadPrelude(env); err != nil {
		logger.Error("cannot load prelude", "err", err)
		return 1
	}

	for _, path := range cfg.Preload {
		if code, done := loadFile(env, logger, path); done {
			return code
		}
	}
	for _, path := range args.Files {
		if code, done := loadFile(env, logger, path); done {
			return code
		}
	}
	if len(args.Files) > 0 {
		return 0
	}

	r := repl{
		env:    env,
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: cfg.Prompt,
		banner: !args.NoBanner && cfg.showBanner(),
	}
	return r.run()
}

// loadFile runs one source file. It reports a non-zero exit code when the
// file could not be loaded, and a done result when evaluation must stop.
func loadFile(env *lispyeval.Environment, logger *slog.Logger, path string) (int, bool) {
	result := lispybuiltins.Load(env, os.Stdout, path)
	if term, isTerminate := lispyeval.GetTerminate(result); isTerminate {
		return term.Code, true
	}
	if errObj, isErr := lispy.GetErr(result); isErr {
		logger.Error("cannot load file", "path", path, "err", errObj.Message)
		return 1, true
	}
	return 0, false
}
