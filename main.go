// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Little-lisp is an interpreter for a small S-expression language with
// integers, booleans, pairs and user-defined procedures.
//
// The special forms are fixed. Their names may be defined like any other,
// but a call always reaches the special form:
//
//	(+ a b ...) (* a b ...) (- a b)
//	(< a b) (> a b) (<= a b) (>= a b) (eq? a b)
//	(cons a b) (car p) (cdr p)
//	(define name expr) (define (name param ...) body ...)
//	(if test then else) (cond (test result) ... (else result))
//
// The root scope also binds true, false, null and the procedures first,
// second, not, zero?, abs, min and max.
//
// Files named on the command line, and any listed under preload in the
// configuration file ($HOME/.little-lisp.yml), are evaluated before the
// interactive loop starts. Functions are lexically scoped closures. There is
// no tail call elimination; calls nested more deeply than -depth fail with a
// stack overflow error and the session carries on.
package main // import "github.com/lazyprop/little-lisp"

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lazyprop/little-lisp/lisp"
)

var (
	doPrompt   = flag.Bool("doprompt", true, "show interactive prompt and edit lines")
	prompt     = flag.String("prompt", "> ", "interactive prompt")
	stackDepth = flag.Int("depth", lisp.DefaultMaxDepth, "maximum call depth")
	history    = flag.String("history", "", "history file (default $HOME/"+historyName+")")
	configFile = flag.String("config", "", "configuration file (default $HOME/"+configName+")")
	evalExpr   = flag.String("e", "", "evaluate the expressions and exit")
	verbose    = flag.Bool("v", false, "log configuration and loading")
)

var failed bool // Some expression did not evaluate.

func main() {
	log.SetFlags(0)
	log.SetPrefix("little-lisp: ")
	flag.Usage = usage
	flag.Parse()
	cfg := configure()
	context := lisp.NewContext(cfg.MaxDepth)
	for _, file := range append(cfg.Preload, flag.Args()...) {
		load(context, file)
	}
	switch {
	case *evalExpr != "":
		input(context, strings.NewReader(*evalExpr))
	case *doPrompt:
		atPrompt(func() { repl(context, cfg) })
	default:
		input(context, bufio.NewReader(os.Stdin))
	}
	if failed {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: little-lisp [flags] [file ...]\n")
	flag.PrintDefaults()
}

// configure reads the configuration file and applies the flags that were
// set explicitly on top of it.
func configure() config {
	home, err := os.UserHomeDir()
	if err != nil && *verbose {
		log.Print(err)
	}
	path, required := *configFile, *configFile != ""
	if !required && home != "" {
		path = filepath.Join(home, configName)
	}
	cfg, err := loadConfig(path, required, home)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = *prompt
		case "depth":
			cfg.MaxDepth = *stackDepth
		case "history":
			cfg.History = *history
		}
	})
	if err := checkDepth(cfg.MaxDepth); err != nil {
		log.Fatalf("-depth: %v", err)
	}
	if *verbose {
		log.Printf("config %s: prompt=%q depth=%d history=%s preload=%v", path, cfg.Prompt, cfg.MaxDepth, cfg.History, cfg.Preload)
	}
	return cfg
}

// load reads the named source file and evaluates it within the context.
func load(context *lisp.Context, file string) {
	if *verbose {
		log.Printf("loading %s", file)
	}
	fd, err := os.Open(file)
	if err != nil {
		log.Fatal(err)
	}
	defer fd.Close()
	input(context, bufio.NewReader(fd))
}

// input evaluates expressions from r to EOF, printing each result.
func input(context *lisp.Context, r io.Reader) {
	err := context.Load(r, func(res lisp.Result) bool {
		report(res)
		return true
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		failed = true
	}
}

// report prints the value of a top-level expression, or its error and
// stack trace. Null and functions print nothing.
func report(res lisp.Result) {
	if res.Err != nil {
		fmt.Fprintln(os.Stderr, res.Err)
		fmt.Fprint(os.Stderr, lisp.StackTrace(res.Err))
		failed = true
		return
	}
	if s := lisp.Format(res.Value); s != "" {
		fmt.Println(s)
	}
}

// atPrompt runs fn, keeping the exit status recorded so far: errors typed
// at the prompt do not affect it, failures in loaded files still do.
func atPrompt(fn func()) {
	loadFailed := failed
	defer func() { failed = loadFailed }()
	fn()
}

// repl runs the interactive loop until EOF. Errors are reported and do
// not end the session.
func repl(context *lisp.Context, cfg config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.History)
			if err != nil {
				log.Print(err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		text, err := readExpr(ln, cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Print(err)
			}
			fmt.Println()
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(strings.Join(strings.Fields(text), " "))
		results, err := context.EvalString(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, res := range results {
			report(res)
		}
	}
}

// readExpr reads lines until the parentheses balance, prompting for
// continuation lines with blanks the width of the prompt.
func readExpr(ln *liner.State, prompt string) (string, error) {
	var b strings.Builder
	p := prompt
	for {
		line, err := ln.Prompt(p)
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
		if lisp.Balance(b.String()) <= 0 {
			return b.String(), nil
		}
		p = strings.Repeat(" ", len(prompt))
	}
}
