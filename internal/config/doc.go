// Package config provides configuration loading, merging, and validation
// facilities for the note store server and the coffee-notes client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file and environment variables
//  4. Command-line flags (stdlib flags for the server, cobra flags passed as
//     [ClientOverrides] for the client)
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
