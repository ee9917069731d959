// Package logger wraps zerolog with component tagging and map-based fields.
// It is the ambient logging layer for the subsystem: the database driver,
// the transaction coordinator and the HTTP middleware all log through it.
package logger
