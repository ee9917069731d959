package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillsenselab/webcore/txn"
)

// Op is a GORM mutation usable with a transaction scope. Label names the
// mutation in scope records and logs.
type Op struct {
	Label string
	Apply func(tx *gorm.DB) error
}

// Name implements txn.Operation.
func (o Op) Name() string { return o.Label }

// Driver adapts the database to the coordinator's txn.Driver contract.
type Driver struct {
	db *DB
}

// NewDriver creates a txn.Driver backed by the database.
func NewDriver(db *DB) *Driver {
	return &Driver{db: db}
}

var _ txn.Driver = (*Driver)(nil)

// Begin opens a GORM transaction.
func (d *Driver) Begin(ctx context.Context) (txn.Tx, error) {
	tx := d.db.GormDB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &gormTx{tx: tx}, nil
}

// gormTx forwards scope operations to a GORM transaction.
type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) Exec(ctx context.Context, op txn.Operation) error {
	gop, ok := op.(Op)
	if !ok {
		return fmt.Errorf("database: unsupported operation type %T", op)
	}
	if err := gop.Apply(t.tx.WithContext(ctx)); err != nil {
		return FromDatabase(err, "")
	}
	return nil
}

func (t *gormTx) Commit(_ context.Context) error {
	return t.tx.Commit().Error
}

func (t *gormTx) Rollback(_ context.Context) error {
	return t.tx.Rollback().Error
}
