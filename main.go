/*
File    : mini-script/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Mini Script interpreter. It
provides two modes of operation:
 1. REPL Mode (default, no arguments): interactive Read-Eval-Print Loop.
 2. File Mode: execute a single Mini Script source file given on the
    command line.

Grounded on the teacher's main/main.go (banner/version/prompt constants,
--help handling, colored stderr output); the teacher's "server" subcommand
and AST-printing debug path are dropped since spec §6.2 names no such
modes — see DESIGN.md.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/mini-script/eval"
	"github.com/akashmaji946/mini-script/parser"
	"github.com/akashmaji946/mini-script/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	PROMPT  = "mini-script >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
 __  __ _       _   ____            _       _
|  \/  (_)_ __ (_) / ___|  ___ _ __(_)_ __ | |_
| |\/| | | '_ \| | \___ \ / __| '__| | '_ \| __|
| |  | | | | | | |  ___) | (__| |  | | |_) | |_
|_|  |_|_|_| |_|_| |____/ \___|_|  |_| .__/ \__|
                                     |_|
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// usageExitCode is the conventional exit status for CLI misuse (more than
// one script argument), distinguishing it from exit code 1 (the program ran
// but failed) and exit code 0 (success / --help). An unrecognized flag is
// not detected: it is taken as a script path.
const usageExitCode = 64

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, PROMPT)
		repler.Start(os.Stdout)
		return
	}

	if args[0] == "--help" || args[0] == "-h" {
		showHelp()
		os.Exit(0)
	}

	if len(args) > 1 {
		redColor.Fprintf(os.Stderr, "usage: mini-script [script-file]\n")
		os.Exit(usageExitCode)
	}

	runFile(args[0])
}

func showHelp() {
	cyanColor.Println("Mini Script - an embedded scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mini-script                 Start interactive REPL mode")
	yellowColor.Println("  mini-script <path-to-file>  Execute a Mini Script file (.ms)")
	yellowColor.Println("  mini-script --help          Display this help message")
}

// runFile reads and executes a Mini Script source file, exiting 0 on
// success and 1 on any parse or runtime error (spec §6.2).
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	p, err := parser.NewParser(string(source), fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	evaluator := eval.New(os.Stdout)
	if err := evaluator.Run(stmts, fileName); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
