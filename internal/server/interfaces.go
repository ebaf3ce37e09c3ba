package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns a non-nil error only when serving failed.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
