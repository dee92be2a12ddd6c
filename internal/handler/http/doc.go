// Package http implements the HTTP transport layer of the auth server.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API. Request tracing, access logging, session cookies, per-IP rate limiting
// and bearer-token authentication are handled here before requests are
// delegated to the service layer.
package http
