// Package envelope renders taxonomy errors into the REST and GraphQL wire
// formats. Rendering is pure and deterministic: the same error instance
// always produces the same envelope, and empty details render as {} rather
// than null.
package envelope
