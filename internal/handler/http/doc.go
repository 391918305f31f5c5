// Package http implements the HTTP transport layer of the gateway.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, rate limiting, tracing and request
// logging are all handled at this layer, in that order, before requests
// are forwarded to the service layer.
package http
