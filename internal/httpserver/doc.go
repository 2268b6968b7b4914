// Package httpserver runs the fieldcheck API with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// the listener fails. Shutdown may also be called from another goroutine.
package httpserver
