// Package server holds the configuration section for the HTTP server.
//
// It defines the listening port, the API key protecting the endpoints, and the
// request body size cap applied to spreadsheet uploads. The actual Fiber app is
// assembled in cmd/start.go; this package only carries its settings so the
// config loader can bind them from the environment.
package server
