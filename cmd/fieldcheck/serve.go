package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrymomot/fieldcheck/internal/api"
	"github.com/dmitrymomot/fieldcheck/internal/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/schemafile"
)

func runServe(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaFile := fs.String("schema", "", "schema document (defaults to FIELDCHECK_SCHEMA_FILE)")
	addr := fs.String("addr", "", "listen address (defaults to FIELDCHECK_HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if *schemaFile != "" {
		cfg.SchemaFile = *schemaFile
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	log := logger.New(append(cfg.LoggerOptions(service),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(logger.RequestIDExtractor()),
	)...)
	logger.SetAsDefault(log)

	if cfg.SchemaFile == "" {
		log.Error("no schema document configured")
		return 2
	}
	set, err := schemafile.LoadFile(cfg.SchemaFile)
	if err != nil {
		log.Error("failed to load schemas", logger.Path(cfg.SchemaFile), logger.Error(err))
		return 2
	}
	log.Info("schemas loaded", logger.Path(cfg.SchemaFile), logger.Count(len(set.Names())))

	handler := api.New(set, api.WithLogger(log)).Router()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, handler); err != nil {
		log.Error("server failed", logger.Error(err))
		return 1
	}
	return 0
}
