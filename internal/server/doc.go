// Package server runs the HTTP transport of the user registry.
//
// It binds the listener, waits for termination signals and shuts the server
// down gracefully within the configured timeout.
package server
