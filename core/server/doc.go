// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key guarding every route
// and the request body limit, which bounds manifest uploads.
//
// # Usage
//
// This package is embedded by core/config and read by the start command when
// the Fiber app is created.
package server
