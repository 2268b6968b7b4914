// Command fieldcheck validates JSON documents against YAML rule schemas,
// either once from the command line or as an HTTP service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const service = "fieldcheck"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], stdin, stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "fieldcheck - declarative field validation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fieldcheck check -schema rules.yaml -name person [-file doc.json] [-all]")
	fmt.Fprintln(w, "  fieldcheck serve [-schema rules.yaml] [-addr :8080]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "check reads the document from stdin when -file is omitted and exits")
	fmt.Fprintln(w, "with status 1 when it is invalid. Settings come from FIELDCHECK_*")
	fmt.Fprintln(w, "environment variables; see the config package.")
}
