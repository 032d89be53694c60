// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the wallet API.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, rate limiting and response compression
// are handled in this package before requests are delegated to the service
// layer. Every error response is a JSON {"message": "..."} body whose status
// comes from the ordered table in errors_mapper.go.
package http
