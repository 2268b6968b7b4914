package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/schemafile"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaFile := fs.String("schema", "", "schema document (defaults to FIELDCHECK_SCHEMA_FILE)")
	name := fs.String("name", "", "schema to validate against")
	file := fs.String("file", "", "JSON document (reads stdin when empty)")
	all := fs.Bool("all", false, "print every field error, not only the first")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log := logger.New(append(cfg.LoggerOptions(service), logger.WithOutput(stderr))...)

	if *schemaFile == "" {
		*schemaFile = cfg.SchemaFile
	}
	if *schemaFile == "" || *name == "" {
		fmt.Fprintln(stderr, "Error: -schema and -name are required")
		return 2
	}

	set, err := schemafile.LoadFile(*schemaFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	schema, ok := set.Schema(*name)
	if !ok {
		fmt.Fprintf(stderr, "Error: schema %q is not declared in %s\n", *name, *schemaFile)
		return 2
	}

	var input []byte
	if *file != "" {
		input, err = os.ReadFile(*file)
	} else {
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 2
	}

	var doc map[string]any
	if err := json.Unmarshal(input, &doc); err != nil || doc == nil {
		fmt.Fprintln(stderr, "Error: input must be a JSON object")
		return 2
	}

	v := validator.New(schema, validator.WithLogger(log))
	errs := v.Errors(doc)
	log.Debug("document checked", logger.Schema(*name), logger.Path(*schemaFile), logger.Valid(errs.IsEmpty()))

	if errs.IsEmpty() {
		fmt.Fprintln(stdout, "valid")
		return 0
	}
	if !*all {
		errs = errs[:1]
	}
	for _, e := range errs {
		fmt.Fprintf(stdout, "%s: %s\n", e.Field, e.Message)
	}
	return 1
}
