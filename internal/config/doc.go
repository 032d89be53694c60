// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the wallet server.
//
// Configuration is assembled from multiple sources in the following priority
// order (a non-zero field from an earlier source is never overridden):
//  1. Environment variables, after an optional dotenv file is loaded
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
