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

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing file must yield the defaults: %v", err)
	}
	if cfg.Prompt != defaultPrompt {
		t.Errorf("expected the default prompt, but got %q", cfg.Prompt)
	}
	if !cfg.showBanner() {
		t.Error("the banner defaults to on")
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "prompt: \"lx> \"\nbanner: false\npreload:\n  - lib.lspy\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "lx> " {
		t.Errorf("expected the configured prompt, but got %q", cfg.Prompt)
	}
	if cfg.showBanner() {
		t.Error("the banner must be off")
	}
	if len(cfg.Preload) != 1 || cfg.Preload[0] != "lib.lspy" {
		t.Errorf("unexpected preload list: %v", cfg.Preload)
	}
}

func TestLoadConfigBroken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("expected an error for a broken file")
	}
}
