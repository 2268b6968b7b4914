// Package config loads fieldcheck settings from the environment.
//
// Variables carry the FIELDCHECK_ prefix and are parsed with
// github.com/caarlos0/env/v11. A .env file in the working directory is read
// first when present (github.com/joho/godotenv); values already set in the
// process environment win.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Recognised variables:
//
//	FIELDCHECK_ENV                    development | staging | production
//	FIELDCHECK_LOG_LEVEL              debug | info | warn | error (default from ENV)
//	FIELDCHECK_LOG_FORMAT             text | json (default from ENV)
//	FIELDCHECK_SCHEMA_FILE            schema document served by default
//	FIELDCHECK_HTTP_ADDR              listen address
//	FIELDCHECK_HTTP_READ_TIMEOUT      request read timeout
//	FIELDCHECK_HTTP_WRITE_TIMEOUT     response write timeout
//	FIELDCHECK_HTTP_IDLE_TIMEOUT      keep-alive idle timeout
//	FIELDCHECK_HTTP_SHUTDOWN_TIMEOUT  graceful shutdown budget
package config
