package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until shutdown is requested; Shutdown stops accepting
// requests and waits for in-flight ones to finish.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
