// Package txn provides all-or-nothing scoping for sequences of data
// mutations. A Coordinator opens a Scope backed by a Driver transaction,
// runs the caller's body, and commits on clean return or rolls back when an
// error escapes. Nested RunScoped calls join the enclosing scope: one
// underlying transaction, one commit/rollback unit.
//
// The Coordinator is an explicit value — there is no package-level ambient
// transaction. The current scope travels only through the context handed to
// the scope body.
package txn
