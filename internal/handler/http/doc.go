// Package http implements the REST transport of the user registry.
//
// It wires the chi routes for health, users and version, the JSON handlers
// and the middleware chain (trace id, access log, metrics, gzip) in front of
// the service layer.
package http
