// evalbench: an interactive evaluation workbench for the terminal — editor
// and output panes, a pluggable evaluator binding, light/dark/system theme.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"evalbench/internal/config"
	"evalbench/internal/evaluator"
	"evalbench/internal/tui"
	"evalbench/internal/tui/state"
	"evalbench/internal/tui/theme"
)

const Version = "0.1.0"

// evalTimeout bounds a single evaluation in the CLI paths. The TUI relies
// on the evaluator returning; runaway scripts are the user's to interrupt.
const evalTimeout = 30 * time.Second

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			usage()
			return
		case "version", "-v", "--version":
			fmt.Println("evalbench", Version)
			return
		case "repl":
			cmdREPL(args[1:])
			return
		case "eval":
			cmdEval(args[1:])
			return
		}
	}
	cmdUI(args)
}

func usage() {
	fmt.Print(`evalbench — interactive evaluation workbench

Usage:
  evalbench [flags]        open the workbench TUI (default)
  evalbench repl           line-by-line REPL on stdin
  evalbench eval -e SRC    evaluate one expression and exit
  evalbench version        print version

Workbench flags:
  -theme light|dark|system   override the saved theme preference
  -no-color                  disable color output (NO_COLOR also honored)

Workbench keys:
  ctrl+r  run the current input
  tab     switch editor/output pane (narrow terminals)
  ctrl+t  cycle theme    ctrl+g  info    ctrl+y  copy result
`)
}

func cmdUI(args []string) {
	fs := flag.NewFlagSet("ui", flag.ExitOnError)
	themeFlag := fs.String("theme", "", "theme preference: light, dark or system")
	noColor := fs.Bool("no-color", false, "disable color output")
	_ = fs.Parse(args)

	store := theme.NewStore(themePersister(), nil)
	if *themeFlag != "" {
		pref, err := theme.ParsePreference(*themeFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "evalbench:", err)
			os.Exit(2)
		}
		store.SetPreference(pref)
	}

	if err := tui.Run(tui.Options{Theme: store, NoColor: *noColor, Version: Version}); err != nil {
		fmt.Fprintln(os.Stderr, "evalbench:", err)
		os.Exit(1)
	}
}

func themePersister() theme.Persister {
	path, err := config.DefaultPath()
	if err != nil {
		// No settings dir: run with in-memory preference only.
		return nil
	}
	return theme.FilePersister{Path: path}
}

func cmdREPL(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	_ = fs.Parse(args)

	binding := resolveOrDie()

	name := "there"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	fmt.Printf("Hello %s! This is the evalbench REPL.\n", name)
	fmt.Println("Feel free to type expressions; ctrl+d to leave.")
	fmt.Print(">> ")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) != "" {
			fmt.Println(evalLine(binding, line))
		}
		fmt.Print(">> ")
	}
	fmt.Println()
}

func evalLine(binding evaluator.Capability, source string) string {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	out, err := binding.Evaluate(ctx, source)
	if err != nil {
		return state.FailureMarker
	}
	return out
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	src := fs.String("e", "", "source text to evaluate")
	_ = fs.Parse(args)

	source := *src
	if source == "" && fs.NArg() > 0 {
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "evalbench:", err)
			os.Exit(2)
		}
		source = string(data)
	}
	if source == "" {
		fmt.Fprintln(os.Stderr, "evalbench: nothing to evaluate (use -e or a file argument)")
		os.Exit(2)
	}

	binding := resolveOrDie()
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	out, err := binding.Evaluate(ctx, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, state.FailureMarker)
		os.Exit(1)
	}
	fmt.Println(out)
}

func resolveOrDie() evaluator.Capability {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	binding := evaluator.Resolve(ctx)
	if binding.Readiness() != evaluator.Ready {
		fmt.Fprintln(os.Stderr, "evalbench: evaluator unavailable")
		os.Exit(1)
	}
	return binding
}
