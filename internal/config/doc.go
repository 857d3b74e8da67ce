// Package config provides configuration loading, merging, and validation
// facilities for the authentication backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The returned configuration
// is loaded once at process start and treated as immutable afterwards; every
// component receives the values it needs explicitly at construction time.
package config
