// Package api exposes loaded schemas over HTTP.
//
//	GET  /health                   liveness, or readiness when checks are given
//	GET  /schemas                  schema names in declaration order
//	GET  /schemas/{name}           error property names of one schema
//	POST /schemas/{name}/validate  validate a JSON object
//
// A validation answer always has status 200; "valid" tells the outcome.
package api
