// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, raw file downloads, error mapping, logging, recovery,
// Prometheus metrics, body size limits and request ID propagation.
package pkgrouter
