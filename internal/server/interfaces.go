// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until SIGINT, SIGTERM or SIGQUIT arrives or a listener
// fails; [Shutdown] stops accepting requests and drains in-flight ones.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
