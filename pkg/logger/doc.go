// Package logger builds the *slog.Logger used across fieldcheck.
//
// New takes functional options and returns a logger whose handler is
// wrapped by LogHandlerDecorator. The decorator runs registered
// ContextExtractor callbacks on every record, so request scoped values such
// as the chi request id end up in the output without being passed around.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "fieldcheck"),
//	    logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "schema loaded", logger.Schema("person"), logger.Path(file))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil input, which slog drops.
package logger
