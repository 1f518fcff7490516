// Package server wires and runs the application's HTTP transport and
// background workers.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown of the transport and the retention
// sweeper.
package server
