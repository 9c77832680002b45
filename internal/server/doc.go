// Package server runs the note store HTTP server: startup, and graceful
// shutdown bounded by the configured timeout once the run context ends.
package server
