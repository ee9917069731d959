// Package policy evaluates guard functions before a handler runs.
//
// A Policy inspects the request context and its configuration and either
// allows the action or denies it. Denials are always expressed as taxonomy
// errors: a policy that returns false yields a generic PolicyError, one that
// returns a taxonomy error denies with that exact error.
//
// This package has zero external dependencies beyond the taxonomy, so it can
// be used in any pipeline without pulling in HTTP or logging libraries.
package policy
