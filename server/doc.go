// Package server is the response-rendering boundary. Handlers return data
// or errors; this package turns them into the REST and GraphQL envelopes.
// Clients always receive one of the two envelope shapes, never a stack trace.
package server
