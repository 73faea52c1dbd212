// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lazyprop/little-lisp/lisp"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()
	path := writeFile(t, dir, "lisp.yml", `
prompt: "lisp> "
max_depth: 500
history: ~/hist
preload:
  - lib.lisp
  - /abs/other.lisp
  - ~/home.lisp
`)
	cfg, err := loadConfig(path, true, home)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		Prompt:   "lisp> ",
		MaxDepth: 500,
		History:  filepath.Join(home, "hist"),
		Preload: []string{
			filepath.Join(dir, "lib.lisp"),
			"/abs/other.lisp",
			filepath.Join(home, "home.lisp"),
		},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("loadConfig = %+v, expected %+v", cfg, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	want := defaultConfig(home)
	if want.MaxDepth != lisp.DefaultMaxDepth || want.History != filepath.Join(home, historyName) {
		t.Errorf("bad defaults %+v", want)
	}
	cfg, err := loadConfig(filepath.Join(home, "missing.yml"), false, home)
	if err != nil || !reflect.DeepEqual(cfg, want) {
		t.Errorf("missing optional file: %+v, %v", cfg, err)
	}
	cfg, err = loadConfig(writeFile(t, home, "empty.yml", ""), true, home)
	if err != nil || !reflect.DeepEqual(cfg, want) {
		t.Errorf("empty file: %+v, %v", cfg, err)
	}
	// Settings absent from the file keep their defaults.
	cfg, err = loadConfig(writeFile(t, home, "part.yml", "prompt: \"$ \"\n"), true, home)
	if err != nil || cfg.Prompt != "$ " || cfg.MaxDepth != lisp.DefaultMaxDepth {
		t.Errorf("partial file: %+v, %v", cfg, err)
	}
}

var badConfigTests = []struct {
	name string
	text string
	err  string
}{
	{"unknown.yml", "colour: red\n", "field colour not found"},
	{"negative.yml", "max_depth: -1\n", "max_depth must not be negative"},
	{"type.yml", "max_depth: deep\n", "cannot unmarshal"},
	{"deep.yml", "max_depth: 100000000\n", "max_depth must not exceed 100000"},
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadConfig(filepath.Join(dir, "missing.yml"), true, ""); err == nil {
		t.Error("missing required file: no error")
	}
	for _, test := range badConfigTests {
		_, err := loadConfig(writeFile(t, dir, test.name, test.text), true, "")
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("%s: error %v, expected %q", test.name, err, test.err)
		}
	}
}

func TestExpandHome(t *testing.T) {
	if got := expandHome("~/x", "/home/u"); got != "/home/u/x" {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("~/x", ""); got != "~/x" {
		t.Errorf("expandHome without home = %q", got)
	}
	if got := expandHome("a/~/x", "/home/u"); got != "a/~/x" {
		t.Errorf("expandHome = %q", got)
	}
}

func TestCheckDepth(t *testing.T) {
	for _, depth := range []int{0, 1, lisp.MaxDepthLimit} {
		if err := checkDepth(depth); err != nil {
			t.Errorf("checkDepth(%d): %v", depth, err)
		}
	}
	for _, depth := range []int{-1, lisp.MaxDepthLimit + 1, 1e8} {
		if err := checkDepth(depth); err == nil {
			t.Errorf("checkDepth(%d): no error", depth)
		}
	}
}
