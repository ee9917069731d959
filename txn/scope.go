package txn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Scope. Committed and RolledBack are
// terminal.
type State int

const (
	// StateOpen means the scope accepts operations.
	StateOpen State = iota
	// StateCommitted means the scope completed and its writes persist.
	StateCommitted
	// StateRolledBack means the scope's writes were undone.
	StateRolledBack
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateCommitted:
		return "committed"
	default:
		return "rolled_back"
	}
}

// ErrScopeClosed is returned when a scope in a terminal state is used.
var ErrScopeClosed = errors.New("txn: scope is closed")

// ErrRollbackOnly is returned by RunScoped when a nested body failed but the
// outer body swallowed the error and returned nil.
var ErrRollbackOnly = errors.New("txn: scope is marked rollback-only")

// Record describes one operation executed within a scope, in order.
type Record struct {
	Seq       int
	Operation string
	At        time.Time
}

// Scope is the handle passed to a RunScoped body. It forwards operations to
// the underlying resource transaction and records them in order.
//
// A Scope is confined to the call tree that created it. It must not be
// shared across goroutines or retained after RunScoped returns.
type Scope struct {
	id           string
	tx           Tx
	state        State
	records      []Record
	rollbackOnly bool
}

func newScope(tx Tx) *Scope {
	return &Scope{id: uuid.New().String(), tx: tx, state: StateOpen}
}

// ID returns the opaque scope identifier.
func (s *Scope) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Scope) State() State { return s.state }

// Operations returns the recorded operations in execution order. The
// returned slice is a copy.
func (s *Scope) Operations() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Exec forwards op to the underlying transaction and appends it to the
// scope's operation records. It fails without forwarding when the scope is
// no longer open or the context is already canceled.
func (s *Scope) Exec(ctx context.Context, op Operation) error {
	if s.state != StateOpen {
		return ErrScopeClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("txn: execute %s: %w", op.Name(), err)
	}
	if err := s.tx.Exec(ctx, op); err != nil {
		return err
	}
	s.records = append(s.records, Record{
		Seq:       len(s.records),
		Operation: op.Name(),
		At:        time.Now(),
	})
	return nil
}

// Commit explicitly commits the scope's operations and moves it to
// Committed. Usually unnecessary: a body that returns nil commits
// implicitly. A scope whose commit fails moves to RolledBack.
func (s *Scope) Commit(ctx context.Context) error {
	if s.state != StateOpen {
		return ErrScopeClosed
	}
	if err := s.tx.Commit(ctx); err != nil {
		s.state = StateRolledBack
		return fmt.Errorf("txn: commit: %w", err)
	}
	s.state = StateCommitted
	return nil
}

// Rollback explicitly undoes every operation executed in the scope and moves
// it to RolledBack. The body may still return nil afterwards; RunScoped then
// returns nil without committing. A rollback failure is escalated as a
// *RollbackFailureError.
func (s *Scope) Rollback(ctx context.Context) error {
	if s.state != StateOpen {
		return ErrScopeClosed
	}
	s.state = StateRolledBack
	if err := s.tx.Rollback(context.WithoutCancel(ctx)); err != nil {
		return &RollbackFailureError{Cause: err}
	}
	return nil
}

// RollbackFailureError reports that undoing a scope's operations itself
// failed. Original is the error that triggered the rollback, if any.
type RollbackFailureError struct {
	// Original is the error that caused the rollback.
	Original error
	// Cause is the rollback failure reported by the driver.
	Cause error
}

// Error returns the string representation of the error.
func (e *RollbackFailureError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("txn: rollback failed: %v (original error: %v)", e.Cause, e.Original)
	}
	return fmt.Sprintf("txn: rollback failed: %v", e.Cause)
}

// Unwrap returns the rollback failure cause.
func (e *RollbackFailureError) Unwrap() error { return e.Cause }
