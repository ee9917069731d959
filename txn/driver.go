package txn

import "context"

// Operation is a single mutation forwarded to the data engine. Drivers
// define concrete operation types; the coordinator only needs a name for
// scope records and logging.
type Operation interface {
	Name() string
}

// Driver is the data-access collaborator that supplies resource
// transactions. Begin may block on the engine and must honor ctx.
type Driver interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single resource transaction. Exec, Commit and Rollback may block
// on the engine; the engine owns isolation, this package owns atomicity.
type Tx interface {
	Exec(ctx context.Context, op Operation) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
