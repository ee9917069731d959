// Package errors provides the typed error taxonomy for webcore services.
// Every error carries a Kind — a stable wire name, an HTTP status, and a
// default message — plus an optional details payload. Custom kinds plug in
// through the Kind interface and are accepted anywhere a built-in kind is.
package errors
