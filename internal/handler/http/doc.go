// Package http implements the HTTP/JSON transport of the note store.
//
// It wires the /api/notes routes, the version and metrics endpoints, and the
// middleware chain (trace IDs, access logging, metrics, gzip) in front of the
// service layer. Service errors are translated to status codes and
// {"error": "..."} bodies.
package http
