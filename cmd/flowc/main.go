// Command flowc is the front-end driver: lex, parse and check one source
// file, reporting success or the first violation encountered. Its
// recover/os.Exit shape and colored pass/fail output follow the teacher's
// cmd/funxy main and the akashmaji946-go-mix CLI's fatih/color usage.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mcastorina/flowc/internal/cache"
	"github.com/mcastorina/flowc/internal/checker"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/parser"
	"github.com/mcastorina/flowc/internal/session"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	verboseColor = color.New(color.FgCyan)
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	args, verbose := parseArgs(os.Args[1:])
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Expected one filename argument")
		os.Exit(1)
	}
	path := args[0]

	sess := session.New()
	if verbose {
		verboseColor.Fprintf(os.Stderr, "[session %s] checking %s\n", sess, path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		failureColor.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	store, digest := openCacheIfAvailable(path, string(source), verbose)
	if store != nil {
		defer store.Close()
		if passed, errText, lookupErr := store.Lookup(path, digest); lookupErr == nil {
			if verbose {
				verboseColor.Fprintln(os.Stderr, "[cache] hit")
			}
			reportResult(passed, errText, sess, verbose)
			return
		} else if verbose {
			verboseColor.Fprintln(os.Stderr, "[cache] miss")
		}
	}

	err = diagnostics.Tag(runFrontend(string(source)), sess.ID)
	if store != nil {
		errText := ""
		if err != nil {
			errText = err.Error()
		}
		store.Store(path, digest, err == nil, errText)
	}

	errText := ""
	if err != nil {
		errText = err.Error()
	}
	reportResult(err == nil, errText, sess, verbose)
}

func runFrontend(source string) error {
	file, err := parser.ParseFile(source)
	if err != nil {
		return err
	}
	return checker.CheckAll(file)
}

func reportResult(passed bool, errText string, sess session.Session, verbose bool) {
	if !passed {
		if verbose {
			failureColor.Fprintf(os.Stderr, "[session %s] %s\n", sess, errText)
		} else {
			failureColor.Fprintln(os.Stderr, errText)
		}
		os.Exit(1)
	}
	successColor.Println("[+] All checks passed")
}

// openCacheIfAvailable opens the on-disk build-result cache next to the
// source file. Any failure to open it (e.g. a read-only directory)
// silently disables caching rather than failing the compile — caching is
// an optimization, never a correctness requirement.
func openCacheIfAvailable(path, source string, verbose bool) (*cache.Cache, string) {
	digest := cache.Digest(source)
	c, err := cache.Open(path + ".flowc-cache")
	if err != nil {
		if verbose {
			verboseColor.Fprintf(os.Stderr, "[cache] disabled: %s\n", err)
		}
		return nil, digest
	}
	return c, digest
}

// parseArgs splits -v/--verbose from the positional arguments.
func parseArgs(raw []string) (positional []string, verbose bool) {
	for _, arg := range raw {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		default:
			positional = append(positional, arg)
		}
	}
	return positional, verbose
}
