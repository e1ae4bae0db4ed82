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
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// config holds the optional REPL settings read from the configuration file.
type config struct {
	Prompt  string   `yaml:"prompt"`
	Banner  *bool    `yaml:"banner"`
	Preload []string `yaml:"preload"`
}

const defaultPrompt = "lispy> "

// defaultConfigPath returns the per-user configuration file path.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lispy", "config.yaml")
}

// loadConfig reads the configuration file. A missing file yields the
// defaults without error.
func loadConfig(path string) (config, error) {
	cfg := config{Prompt: defaultPrompt}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg, nil
}

// showBanner returns true if the banner should be printed.
func (cfg *config) showBanner() bool { return cfg.Banner == nil || *cfg.Banner }
