// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lazyprop/little-lisp/lisp"
)

const (
	configName  = ".little-lisp.yml"
	historyName = ".little-lisp_history"
)

// config holds the settings that may come from the configuration file.
// Explicit flags override them.
type config struct {
	Prompt   string   `yaml:"prompt"`
	MaxDepth int      `yaml:"max_depth"`
	History  string   `yaml:"history"`
	Preload  []string `yaml:"preload"`
}

func defaultConfig(home string) config {
	cfg := config{
		Prompt:   "> ",
		MaxDepth: lisp.DefaultMaxDepth,
	}
	if home != "" {
		cfg.History = filepath.Join(home, historyName)
	}
	return cfg
}

// loadConfig returns the defaults overlaid with the YAML file at path. A
// missing file is an error only if required is set. Relative preload paths
// are taken relative to the file's directory, and a leading ~/ in paths
// refers to home.
func loadConfig(path string, required bool, home string) (config, error) {
	cfg := defaultConfig(home)
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkDepth(cfg.MaxDepth); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.History = expandHome(cfg.History, home)
	dir := filepath.Dir(path)
	for i, p := range cfg.Preload {
		p = expandHome(p, home)
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		cfg.Preload[i] = p
	}
	return cfg, nil
}

// checkDepth verifies that a call depth limit is one the interpreter can honor.
func checkDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("max_depth must not be negative, have %d", depth)
	}
	if depth > lisp.MaxDepthLimit {
		return fmt.Errorf("max_depth must not exceed %d, have %d", lisp.MaxDepthLimit, depth)
	}
	return nil
}

// expandHome replaces a leading ~/ with the home directory.
func expandHome(path, home string) string {
	if home != "" && strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
